package tmdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Transport performs the HTTP exchanges for a Client. Implementations never
// interpret the body; classification happens in the client.
type Transport interface {
	Get(ctx context.Context, url string) Outcome
	Post(ctx context.Context, url string, body []byte) Outcome
}

const (
	// DefaultTimeout is the per-request deadline of HTTPTransport
	DefaultTimeout = 30 * time.Second
	// DefaultRateLimit is the number of requests per second HTTPTransport allows
	DefaultRateLimit = 20.0
	// MaxResponseBody is the largest response body HTTPTransport reads
	MaxResponseBody = 16 << 20
)

// HTTPTransport is the Transport backed by net/http
type HTTPTransport struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	bearerToken string
	userAgent   string
	maxBody     int64
	logger      zerolog.Logger
}

// NewHTTPTransport creates a transport issuing at most rps requests per second.
// A nil httpClient gets one with DefaultTimeout; rps <= 0 disables limiting.
func NewHTTPTransport(httpClient *http.Client, rps float64, logger zerolog.Logger) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &HTTPTransport{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		userAgent:  "marquee",
		maxBody:    MaxResponseBody,
		logger:     logger,
	}
}

// Get issues a GET request
func (t *HTTPTransport) Get(ctx context.Context, rawURL string) Outcome {
	return t.do(ctx, http.MethodGet, rawURL, nil)
}

// Post issues a POST request with a JSON body
func (t *HTTPTransport) Post(ctx context.Context, rawURL string, body []byte) Outcome {
	return t.do(ctx, http.MethodPost, rawURL, body)
}

func (t *HTTPTransport) do(ctx context.Context, method, rawURL string, body []byte) Outcome {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return Outcome{Err: fmt.Errorf("%w: %w", ErrMalformedURL, err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}
	if t.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.bearerToken)
	}

	if err := t.limiter.Wait(ctx); err != nil {
		// Wait fails early when the deadline would pass before a token is free
		if ctx.Err() == nil {
			if _, ok := ctx.Deadline(); ok {
				return Outcome{Err: fmt.Errorf("rate limiter: %w: %w", context.DeadlineExceeded, err)}
			}
		}
		return Outcome{Err: fmt.Errorf("rate limiter: %w", err)}
	}

	requestID := uuid.NewString()
	start := time.Now()

	t.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", redactURL(rawURL)).
		Msg("Making TMDb API request")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Debug().
			Err(err).
			Str("request_id", requestID).
			Dur("elapsed", time.Since(start)).
			Msg("TMDb API request failed")
		return Outcome{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBody+1))
	if err != nil {
		return Outcome{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(data)) > t.maxBody {
		return Outcome{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("response body exceeds %d bytes", t.maxBody)}
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("TMDb API response")

	return Outcome{Body: data, HTTPStatus: resp.StatusCode}
}

// redactURL hides credentials carried in the query string
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparsable>"
	}
	q := u.Query()
	for _, key := range []string{"api_key", "session_id"} {
		if q.Has(key) {
			q.Set(key, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
