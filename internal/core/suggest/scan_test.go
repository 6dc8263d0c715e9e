package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prixlens/prixlens/internal/core"
)

func TestParseSuggestionsWellFormedArray(t *testing.T) {
	body := `[{"designation":"Béton B25","prix":"120.50","unite":"m3","score":"0.92","match_type":"exact"},` +
		`{"designation":"Sable","unite":"t","prix":"45","score":"0.70","match_type":"fuzzy"}]`

	records, err := ParseSuggestions(body)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, core.Suggestion{
		Designation: "Béton B25",
		Prix:        "120.50",
		Unite:       "m3",
		Score:       "0.92",
		MatchType:   "exact",
	}, records[0])

	// Key order inside the source object has no effect on field identity.
	require.Equal(t, core.Suggestion{
		Designation: "Sable",
		Prix:        "45",
		Unite:       "t",
		Score:       "0.70",
		MatchType:   "fuzzy",
	}, records[1])
}

func TestParseSuggestionsPreservesSourceOrder(t *testing.T) {
	var sb strings.Builder
	names := []string{"Gravier 5/15", "Ciment CPJ 45", "Acier HA Fe500", "Chaux hydraulique"}
	for _, name := range names {
		sb.WriteString(`{"designation":"` + name + `","prix":"10","unite":"u","score":"1","match_type":"exact"},`)
	}

	records, err := ParseSuggestions(sb.String())
	require.NoError(t, err)
	require.Len(t, records, len(names))
	for i, name := range names {
		require.Equal(t, name, records[i].Designation)
	}
}

func TestParseSuggestionsMissingFieldsYieldEmptyStrings(t *testing.T) {
	records, err := ParseSuggestions(`{"designation":"Moellon","prix":"80"}`)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.Equal(t, "Moellon", records[0].Designation)
	require.Equal(t, "80", records[0].Prix)
	require.Empty(t, records[0].Unite)
	require.Empty(t, records[0].Score)
	require.Empty(t, records[0].MatchType)
}

func TestParseSuggestionsNoObjects(t *testing.T) {
	for _, body := range []string{"", "[]", "null", "  \n ", `"just a string"`} {
		records, err := ParseSuggestions(body)
		require.NoError(t, err, "body %q", body)
		require.Empty(t, records, "body %q", body)
		require.NotNil(t, records, "body %q", body)
	}
}

func TestParseSuggestionsDropsUnterminatedTrailingObject(t *testing.T) {
	body := `[{"designation":"Sable","prix":"45","unite":"t","score":"0.7","match_type":"fuzzy"},` +
		`{"designation":"Gravier","prix":"60"`

	records, err := ParseSuggestions(body)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Sable", records[0].Designation)
}

func TestParseSuggestionsBareNumericTokens(t *testing.T) {
	// score as a bare number, with and without a trailing comma in the slice.
	records, err := ParseSuggestions(`{"designation":"Béton","score":0.92,"match_type":"exact"}{"designation":"Sable","score":45}`)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "0.92", records[0].Score)
	require.Equal(t, "45", records[1].Score)
}

func TestParseSuggestionsIgnoresArrayNoise(t *testing.T) {
	body := "\n[\n  {\"designation\":\"Enduit\",\"prix\":\"32\",\"unite\":\"m2\",\"score\":\"0.5\",\"match_type\":\"partiel\"}\n ,\n]\n"

	records, err := ParseSuggestions(body)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Enduit", records[0].Designation)
	require.Equal(t, "m2", records[0].Unite)
}

func TestParseSuggestionsWhitespaceAfterColon(t *testing.T) {
	records, err := ParseSuggestions(`{"designation":   "Tuile canal", "prix":	"95"}`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Tuile canal", records[0].Designation)
	require.Equal(t, "95", records[0].Prix)
}

func TestParseSuggestionsMalformedInputDegrades(t *testing.T) {
	// Garbage around a scannable object still yields that object.
	records, err := ParseSuggestions(`<<<oops{"designation":"Plâtre","prix":"12"}trailing junk`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Plâtre", records[0].Designation)
}

func TestExtractValueQuotedStopsAtNextQuote(t *testing.T) {
	// Escaped quotes are not understood: the value truncates at the first
	// closing quote. Documented behavior carried over from the original
	// scanner; tests pin it so a change is deliberate.
	value := extractValue(`{"designation":"dalle \"pleine\""}`, "designation")
	require.Equal(t, `dalle \`, value)
}

func TestExtractValueAbsentKey(t *testing.T) {
	require.Empty(t, extractValue(`{"prix":"45"}`, "designation"))
}

func TestExtractValueBareTokenAtSliceEnd(t *testing.T) {
	require.Equal(t, "45", extractValue(`{"prix": 45 }`, "prix"))
	require.Equal(t, "45", extractValue(`{"prix":45,"unite":"t"}`, "prix"))
}
