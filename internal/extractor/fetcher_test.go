package extractor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promoapi/internal/model"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and sends user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		doc, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(doc.Body))
		assert.Equal(t, http.StatusOK, doc.StatusCode)
		assert.Equal(t, "text/html", doc.ContentType)
		assert.Equal(t, DefaultUserAgent, gotUA)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		_, err := NewHTTPFetcher(WithUserAgent("promo-test/1.0")).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "promo-test/1.0", gotUA)
	})

	t.Run("limits body size", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
		}))
		defer server.Close()

		doc, err := NewHTTPFetcher(WithMaxBodyBytes(10)).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, doc.Body, 10)
	})

	t.Run("timeout is a fetch failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		_, err := NewHTTPFetcher(WithTimeout(10*time.Millisecond)).Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, model.ErrFetchFailed, model.ErrorKindOf(err))
		assert.Equal(t, fetchTransportMessage, model.ErrorMessage(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewHTTPFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
		assert.Equal(t, model.ErrFetchFailed, model.ErrorKindOf(err))
	})

	t.Run("non-existent host", func(t *testing.T) {
		t.Parallel()

		_, err := NewHTTPFetcher(WithTimeout(500*time.Millisecond)).Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, model.ErrFetchFailed, model.ErrorKindOf(err))
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, model.ErrFetchFailed, model.ErrorKindOf(err))
		assert.Equal(t, fetchStatusMessage, model.ErrorMessage(err))

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Contains(t, err.Error(), "404")
	})
}
