package tmdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"id":1}`))
		case "/post":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(notFoundBody))
		}
	}))
	defer server.Close()

	tr := NewHTTPTransport(nil, 0, zerolog.Nop())
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		out := tr.Get(ctx, server.URL+"/ok")
		require.NoError(t, out.Err)
		assert.Equal(t, http.StatusOK, out.HTTPStatus)
		assert.JSONEq(t, `{"id":1}`, string(out.Body))
	})

	t.Run("non-2xx body is returned", func(t *testing.T) {
		out := tr.Get(ctx, server.URL+"/missing")
		require.NoError(t, out.Err)
		assert.Equal(t, http.StatusNotFound, out.HTTPStatus)
		assert.Equal(t, StatusNotFound, Classify(out))
	})

	t.Run("post with bearer", func(t *testing.T) {
		bearer := NewHTTPTransport(nil, 0, zerolog.Nop())
		bearer.bearerToken = "tok"
		out := bearer.Post(ctx, server.URL+"/post", []byte(`{"value":8}`))
		require.NoError(t, out.Err)
		assert.Equal(t, http.StatusCreated, out.HTTPStatus)
		assert.JSONEq(t, `{"value":8}`, string(out.Body))
	})

	t.Run("deadline is a timeout", func(t *testing.T) {
		short := NewHTTPTransport(&http.Client{Timeout: 50 * time.Millisecond}, 0, zerolog.Nop())
		out := short.Get(ctx, server.URL+"/slow")
		require.Error(t, out.Err)
		assert.Equal(t, StatusTimeout, Classify(out))
	})

	t.Run("unbuildable request is a malformed url", func(t *testing.T) {
		out := tr.Get(ctx, "http://[::1")
		assert.ErrorIs(t, out.Err, ErrMalformedURL)
		assert.Equal(t, StatusMalformedURL, Classify(out))
	})
}

func TestHTTPTransportRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(nil, 10, zerolog.Nop())
	start := time.Now()
	for range 3 {
		out := tr.Get(context.Background(), server.URL)
		require.NoError(t, out.Err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := tr.Get(ctx, server.URL)
	assert.Error(t, out.Err)
}

func TestHTTPTransportRateLimitDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(nil, 0.1, zerolog.Nop())
	out := tr.Get(context.Background(), server.URL)
	require.NoError(t, out.Err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	out = tr.Get(ctx, server.URL)
	require.Error(t, out.Err)
	assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
	assert.Equal(t, StatusTimeout, Classify(out))
}

func TestHTTPTransportBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"overview":"a long enough body"}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(nil, 0, zerolog.Nop())
	tr.maxBody = 8
	out := tr.Get(context.Background(), server.URL)
	require.Error(t, out.Err)
	assert.Contains(t, out.Err.Error(), "exceeds 8 bytes")
	assert.Equal(t, http.StatusOK, out.HTTPStatus)
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t,
		"https://api.test/3/account?api_key=REDACTED&page=2&session_id=REDACTED",
		redactURL("https://api.test/3/account?api_key=secret&session_id=s&page=2"))
	assert.Equal(t, "https://api.test/3/movie/1", redactURL("https://api.test/3/movie/1"))
}
