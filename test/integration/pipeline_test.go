package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prixlens/prixlens/internal/core"
	"github.com/prixlens/prixlens/internal/core/suggest"
)

// newFakeUpstream stands in for the Flask suggestion backend: the `/search`
// body mirrors its quirks (UTF-8 accents, bare numeric scores, records with
// missing fields), while `/csv_files` and `/status` return regular JSON.
func newFakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()

	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query().Get("q")
		library := req.URL.Query().Get("library")

		if library == "" {
			http.Error(w, `{"error":"Le paramètre 'library' est requis."}`, http.StatusBadRequest)
			return
		}
		if library != "BIBLIOTHEQUE_2024" {
			http.Error(w, `{"error":"bibliothèque introuvable"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		switch q {
		case "béton armé":
			fmt.Fprint(w, `[`+
				`{"designation":"Béton armé dosé à 350kg/m3","prix":"185.00","unite":"m3","score":0.95,"match_type":"Tous les mots-clés (D2)"},`+
				`{"designation":"Béton de propreté","prix":"120.50","unite":"m3","score":0.61,"match_type":"Mots-clés partiels (D1)"},`+
				`{"designation":"Treillis soudé","unite":"m2","score":0.40,"match_type":"Synonymes (D3)"}`+
				`]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	})

	r.Get("/csv_files", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		fmt.Fprint(w, `{"files":["BIBLIOTHEQUE_2024","REGIONAL_SUD"],"count":2}`)
	})

	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		fmt.Fprint(w, `{"status":"online","current_library":"BIBLIOTHEQUE_2024_Moyen","available_libraries":["BIBLIOTHEQUE_2024","REGIONAL_SUD"],"cached_libraries":["BIBLIOTHEQUE_2024_Moyen"],"dictionary_entries":412}`)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func newPipeline(t *testing.T) *suggest.Service {
	t.Helper()

	upstream := newFakeUpstream(t)
	return &suggest.Service{
		Client: &suggest.Client{BaseURL: upstream.URL, HTTPClient: upstream.Client()},
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	service := newPipeline(t)

	records, found := service.GetSuggestions(context.Background(), core.Params{
		Query:     "béton armé",
		Library:   "BIBLIOTHEQUE_2024",
		PriceType: "Moyen",
	})
	require.True(t, found)
	require.Len(t, records, 3)

	assert.Equal(t, "Béton armé dosé à 350kg/m3", records[0].Designation)
	assert.Equal(t, "185.00", records[0].Prix)
	assert.Equal(t, "0.95", records[0].Score)
	assert.Equal(t, "Tous les mots-clés (D2)", records[0].MatchType)

	// Record with a missing prix field still comes through, field empty.
	assert.Equal(t, "Treillis soudé", records[2].Designation)
	assert.Empty(t, records[2].Prix)
	assert.Equal(t, "m2", records[2].Unite)
}

func TestPipelineUnknownLibraryIsAbsent(t *testing.T) {
	service := newPipeline(t)

	records, found := service.GetSuggestions(context.Background(), core.Params{
		Query:     "béton armé",
		Library:   "INCONNUE",
		PriceType: "Moyen",
	})
	assert.False(t, found)
	assert.Nil(t, records)
}

func TestPipelineEmptyLibraryDoesNotCrash(t *testing.T) {
	service := newPipeline(t)

	// The fake upstream answers 400; the pipeline collapses it to absent.
	records, found := service.GetSuggestions(context.Background(), core.Params{
		Query:     "béton armé",
		PriceType: "Moyen",
	})
	assert.False(t, found)
	assert.Nil(t, records)
}

func TestPipelineNoMatchesIsAbsent(t *testing.T) {
	service := newPipeline(t)

	records, found := service.GetSuggestions(context.Background(), core.Params{
		Query:     "licorne",
		Library:   "BIBLIOTHEQUE_2024",
		PriceType: "Moyen",
	})
	assert.False(t, found)
	assert.Nil(t, records)
}

func TestPipelineLibrariesAndStatus(t *testing.T) {
	service := newPipeline(t)

	list, err := service.Libraries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BIBLIOTHEQUE_2024", "REGIONAL_SUD"}, list.Files)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "online", status.Status)
	assert.Equal(t, 412, status.DictionaryEntries)
}
