package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("   "))
	assert.Equal(t, "BIBLIOTHEQUE_2024", valueOrDash("BIBLIOTHEQUE_2024"))
}
