package tmdb

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL             string
	language            string
	timeout             time.Duration
	rateLimit           float64
	bearerToken         string
	sessionID           string
	includeAdult        *bool
	subFetchConcurrency int
	httpClient          *http.Client
	transport           Transport
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:             DefaultBaseURL,
		timeout:             DefaultTimeout,
		rateLimit:           DefaultRateLimit,
		subFetchConcurrency: 1,
	}
}

// WithBaseURL overrides the API root, mostly for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLanguage sets the language sent with every request, e.g. "en-US".
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		o.language = language
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client used by the default transport.
// The timeout option is ignored when set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTransport replaces the transport entirely.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithRateLimit sets the maximum number of requests per second.
// Zero or less disables limiting.
func WithRateLimit(rps float64) Option {
	return func(o *clientOptions) {
		o.rateLimit = rps
	}
}

// WithBearerToken authenticates with a v4 read access token instead of the api_key parameter.
func WithBearerToken(token string) Option {
	return func(o *clientOptions) {
		o.bearerToken = token
	}
}

// WithSessionID sets the user session used by account operations.
func WithSessionID(sessionID string) Option {
	return func(o *clientOptions) {
		o.sessionID = sessionID
	}
}

// WithIncludeAdult sends include_adult with every request.
func WithIncludeAdult(include bool) Option {
	return func(o *clientOptions) {
		o.includeAdult = &include
	}
}

// WithSubFetchConcurrency sets how many supplementary calls a full-tier
// fetch may run at once.
func WithSubFetchConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n >= 1 {
			o.subFetchConcurrency = n
		}
	}
}
