package cmd

import (
	"net/http"

	"github.com/prixlens/prixlens/internal/config"
	"github.com/prixlens/prixlens/internal/core/store"
	"github.com/prixlens/prixlens/internal/core/suggest"
	"github.com/prixlens/prixlens/internal/observability"
)

// buildService wires the suggestion pipeline from configuration. db may be
// nil; the service then runs without a search journal.
func buildService(cfg *config.Config, db *store.Store) *suggest.Service {
	timeout := cfg.Service.Timeout
	client := &suggest.Client{
		BaseURL: cfg.Service.BaseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}

	service := &suggest.Service{
		Client: client,
		Logger: observability.CLILogger,
	}
	if db != nil {
		service.History = db
	}

	return service
}
