package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prixlens/prixlens/internal/core"
)

func TestSearchURLEncodingRoundTrip(t *testing.T) {
	client := &Client{BaseURL: "http://example.test:5000"}

	params := core.Params{
		Query:     "béton armé 350kg/m3 & treillis",
		Library:   "BIBLIOTHÈQUE GÉNÉRALE 2024",
		PriceType: "Moyen",
	}

	target, err := client.SearchURL(params)
	require.NoError(t, err)

	parsed, err := url.Parse(target)
	require.NoError(t, err)
	require.Equal(t, "/search", parsed.Path)

	// Decoding must reproduce the original values exactly.
	query := parsed.Query()
	require.Equal(t, params.Query, query.Get("q"))
	require.Equal(t, params.Library, query.Get("library"))
	require.Equal(t, params.PriceType, query.Get("price_type"))
}

func TestSearchURLEmptyLibrary(t *testing.T) {
	client := &Client{BaseURL: "http://example.test"}

	// An empty library is a caller error, but URL construction must not
	// fail; the parameter is simply encoded empty.
	target, err := client.SearchURL(core.Params{Query: "sable", PriceType: "Moyen"})
	require.NoError(t, err)

	parsed, err := url.Parse(target)
	require.NoError(t, err)
	require.True(t, parsed.Query().Has("library"))
	require.Empty(t, parsed.Query().Get("library"))
}

func TestFetchDecodesUTF8Body(t *testing.T) {
	body := `[{"designation":"Béton B25 dosé à 350kg/m3","prix":"120.50","unite":"m3","score":"0.92","match_type":"exact"}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "béton dosé", r.URL.Query().Get("q"))
		// Deliberately claim a legacy charset; the client must decode the
		// bytes as UTF-8 regardless.
		w.Header().Set("Content-Type", "application/json; charset=iso-8859-1")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	text, err := client.Fetch(context.Background(), core.Params{
		Query:     "béton dosé",
		Library:   "general",
		PriceType: "Moyen",
	})
	require.NoError(t, err)
	require.Equal(t, body, text)
}

func TestFetchNon200ReturnsFetchError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadRequest} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}
		_, err := client.Fetch(context.Background(), core.Params{Query: "sable", Library: "general", PriceType: "Moyen"})

		fe, ok := AsFetchError(err)
		require.True(t, ok, "status %d", status)
		require.Equal(t, status, fe.StatusCode)
		require.NoError(t, fe.Unwrap())

		server.Close()
	}
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse the connection

	client := &Client{BaseURL: server.URL}
	_, err := client.Fetch(context.Background(), core.Params{Query: "sable", Library: "general", PriceType: "Moyen"})

	fe, ok := AsFetchError(err)
	require.True(t, ok)
	require.Zero(t, fe.StatusCode)
	require.Error(t, fe.Unwrap())
}

func TestFetchLibrariesAndStatusPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL + "/", HTTPClient: server.Client()}

	_, err := client.FetchLibraries(context.Background())
	require.NoError(t, err)
	_, err = client.FetchStatus(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"/csv_files", "/status"}, paths)
}
