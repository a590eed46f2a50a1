package tabular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/phones.csv", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		_, _ = w.Write([]byte("Brand\nApple\n"))
	})
	mux.HandleFunc("/broken.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Run("ok", func(t *testing.T) {
		text, err := NewHTTPSource(srv.Client(), srv.URL+"/phones.csv").Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Brand\nApple\n", text)
	})

	t.Run("non-success status", func(t *testing.T) {
		_, err := NewHTTPSource(srv.Client(), srv.URL+"/broken.csv").Read(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, "HTTP 503")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewHTTPSource(srv.Client(), srv.URL+"/phones.csv").Read(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "phones.csv")
	require.NoError(t, os.WriteFile(path, []byte("Brand\nGoogle\n"), 0o600))

	text, err := NewFileSource(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Brand\nGoogle\n", text)

	_, err = NewFileSource(filepath.Join(dir, "missing.csv")).Read(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &httpSource{}, NewSource("https://example.com/data/phones.csv", nil))
	assert.IsType(t, &httpSource{}, NewSource("HTTP://example.com/phones.csv", nil))
	assert.Equal(t, &fileSource{path: "/srv/phones.csv"}, NewSource("file:///srv/phones.csv", nil))
	assert.Equal(t, &fileSource{path: "data/phones.csv"}, NewSource("data/phones.csv", nil))
}
