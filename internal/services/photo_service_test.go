package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"familytravel/pkg/config"
)

func newTestPhotoClient(t *testing.T, handler http.HandlerFunc) *GooglePlacesPhotoClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		PlacesBaseURL: srv.URL,
		MapsAPIKey:    "test-key",
		GeoTimeout:    2 * time.Second,
		CacheTTL:      time.Minute,
	}
	return NewGooglePlacesPhotoClient(cfg, zap.NewNop())
}

func TestFindPhotoBuildsPhotoURL(t *testing.T) {
	client := newTestPhotoClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/textsearch/json", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "Sagrada Familia, Barcelona", r.URL.Query().Get("query"))
		w.Write([]byte(`{"status": "OK", "results": [{"name": "Sagrada Familia", "photos": [{"photo_reference": "ref123"}]}]}`))
	})

	photoURL, err := client.FindPhoto(context.Background(), "Sagrada Familia, Barcelona")

	require.NoError(t, err)
	require.Contains(t, photoURL, "/photo?")
	require.Contains(t, photoURL, "photo_reference=ref123")
	require.Contains(t, photoURL, "maxwidth=400")
}

func TestFindPhotoReturnsEmptyOnZeroResults(t *testing.T) {
	client := newTestPhotoClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	photoURL, err := client.FindPhoto(context.Background(), "Nowhere")

	require.NoError(t, err)
	require.Empty(t, photoURL)
}

func TestFindPhotoSkipsResultsWithoutPhotos(t *testing.T) {
	client := newTestPhotoClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": [{"name": "No photos here", "photos": []}, {"name": "Has one", "photos": [{"photo_reference": "ref456"}]}]}`))
	})

	photoURL, err := client.FindPhoto(context.Background(), "somewhere")

	require.NoError(t, err)
	require.Contains(t, photoURL, "ref456")
}

func TestFindPhotoErrorsOnAPIErrorStatus(t *testing.T) {
	client := newTestPhotoClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	_, err := client.FindPhoto(context.Background(), "anything")

	require.Error(t, err)
	require.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestFindPhotoCachesLookups(t *testing.T) {
	calls := 0
	client := newTestPhotoClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(`{"status": "OK", "results": [{"name": "X", "photos": [{"photo_reference": "r"}]}]}`))
	})

	for i := 0; i < 3; i++ {
		_, err := client.FindPhoto(context.Background(), "repeat query")
		require.NoError(t, err)
	}

	require.Equal(t, 1, calls)
}
