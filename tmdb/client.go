package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
)

// AllPages requests every page of a paged operation instead of a single one
const AllPages = 0

// Client represents a TMDb API client
type Client struct {
	transport           Transport
	urls                urlBuilder
	config              *Configuration
	subFetchConcurrency int
	logger              zerolog.Logger
}

// NewClient creates a new TMDb client. Either an API key or a bearer token
// (WithBearerToken) is required. No request is made until the first call.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if apiKey == "" && options.bearerToken == "" {
		return nil, fmt.Errorf("%w: API key or read access token is required", ErrInvalidConfig)
	}
	if options.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	transport := options.transport
	if transport == nil {
		httpClient := options.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: options.timeout}
		}
		ht := NewHTTPTransport(httpClient, options.rateLimit, logger)
		ht.bearerToken = options.bearerToken
		transport = ht
	}

	c := &Client{
		transport: transport,
		urls: urlBuilder{
			baseURL:      options.baseURL,
			apiKey:       apiKey,
			bearer:       options.bearerToken != "",
			language:     options.language,
			includeAdult: options.includeAdult,
			sessionID:    options.sessionID,
		},
		subFetchConcurrency: options.subFetchConcurrency,
		logger:              logger,
	}
	c.config = NewConfiguration(func(ctx context.Context) *Response {
		return c.Call(ctx, "/configuration", nil)
	}, logger)

	return c, nil
}

// Configuration returns the client's image configuration cache
func (c *Client) Configuration() *Configuration {
	return c.config
}

// LoadConfiguration loads the image configuration if it is not loaded yet
func (c *Client) LoadConfiguration(ctx context.Context) error {
	return c.config.Load(ctx)
}

// GetConfiguration loads the image configuration if needed and returns a copy of it
func (c *Client) GetConfiguration(ctx context.Context) (ImageConfiguration, error) {
	if err := c.config.Load(ctx); err != nil {
		return ImageConfiguration{}, err
	}
	return c.config.Snapshot()
}

// ImageURL builds the URL of img at size using the client's configuration
func (c *Client) ImageURL(img Image, size string) (string, error) {
	return img.URL(c.config, size)
}

// TestConnection tests the connection and credentials against the service
func (c *Client) TestConnection(ctx context.Context) error {
	return c.Call(ctx, "/configuration", nil).Err()
}

// Call performs a GET of endpoint and classifies the outcome
func (c *Client) Call(ctx context.Context, endpoint string, params url.Values) *Response {
	rawURL, err := c.urls.build(endpoint, params)
	if err != nil {
		return FailedResponse(StatusMalformedURL, c.callError(endpoint, StatusMalformedURL, Outcome{Err: err}, 0, ""))
	}

	out := c.transport.Get(ctx, rawURL)
	status, code, msg := classify(out)
	if status != StatusOK {
		return FailedResponse(status, c.callError(endpoint, status, out, code, msg))
	}
	return NewResponse(out.Body)
}

// CallPaged performs a GET of one page of a paged endpoint. A page below 1
// is sent as page 1.
func (c *Client) CallPaged(ctx context.Context, endpoint string, params url.Values, page int) *PagedResponse {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	page = max(page, 1)
	q.Set("page", strconv.Itoa(page))

	resp := c.Call(ctx, endpoint, q)
	payload, err := resp.Payload()
	if err != nil {
		return FailedPagedResponse(resp.Status(), resp.Err())
	}

	p := NewPagedResponse(payload)
	if p.HasError() {
		return FailedPagedResponse(p.Status(), c.callError(endpoint, p.Status(), Outcome{Err: errors.Unwrap(p.Err())}, 0, ""))
	}
	if p.TotalPages() >= 1 && p.Page() != page {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("requested", page).
			Int("page", p.Page()).
			Int("total_pages", p.TotalPages()).
			Msg("Page number outside reported range, clamped")
	}
	return p
}

// FetchAllPages retrieves every page of endpoint and merges them in order
func (c *Client) FetchAllPages(ctx context.Context, endpoint string, params url.Values) *PagedResponse {
	return FetchAll(ctx, func(ctx context.Context, page int) *PagedResponse {
		return c.CallPaged(ctx, endpoint, params, page)
	})
}

// Post sends body as JSON to endpoint and classifies the outcome
func (c *Client) Post(ctx context.Context, endpoint string, params url.Values, body any) *Response {
	rawURL, err := c.urls.build(endpoint, params)
	if err != nil {
		return FailedResponse(StatusMalformedURL, c.callError(endpoint, StatusMalformedURL, Outcome{Err: err}, 0, ""))
	}

	data, err := json.Marshal(body)
	if err != nil {
		return FailedResponse(StatusUnknownError, c.callError(endpoint, StatusUnknownError, Outcome{Err: fmt.Errorf("failed to encode body: %w", err)}, 0, ""))
	}

	out := c.transport.Post(ctx, rawURL, data)
	status, code, msg := classify(out)
	if status != StatusOK {
		return FailedResponse(status, c.callError(endpoint, status, out, code, msg))
	}
	return NewResponse(out.Body)
}

func (c *Client) callError(endpoint string, status Status, out Outcome, code int, msg string) *StatusError {
	if msg == "" && out.Err == nil && out.HTTPStatus != 0 {
		msg = fmt.Sprintf("HTTP %d", out.HTTPStatus)
	}
	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("status", status.String()).
		Int("http_status", out.HTTPStatus).
		Int("code", code).
		Msg("TMDb API call failed")
	return &StatusError{
		Status:   status,
		Endpoint: endpoint,
		Code:     code,
		Message:  msg,
		Err:      out.Err,
	}
}

// paged materializes one page, or every page when page is AllPages
func paged[T any](ctx context.Context, c *Client, endpoint string, params url.Values, page int, parse func(json.RawMessage) (T, error)) (*Page[T], error) {
	if page == AllPages {
		return MaterializePage(c.FetchAllPages(ctx, endpoint, params), parse)
	}
	return MaterializePage(c.CallPaged(ctx, endpoint, params, page), parse)
}

// single materializes the document returned by endpoint
func single[T any](ctx context.Context, c *Client, endpoint string, params url.Values, parse func(json.RawMessage) (T, error)) (T, error) {
	return Materialize(c.Call(ctx, endpoint, params), parse)
}
