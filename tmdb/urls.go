package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// urlBuilder joins endpoints onto the API base URL and injects the
// parameters every call carries
type urlBuilder struct {
	baseURL      string
	apiKey       string
	bearer       bool
	language     string
	includeAdult *bool
	sessionID    string
}

// build returns the absolute URL for endpoint. Caller params win over the
// injected defaults, except for the credentials.
func (b urlBuilder) build(endpoint string, params url.Values) (string, error) {
	if endpoint == "" || !strings.HasPrefix(endpoint, "/") {
		return "", fmt.Errorf("%w: endpoint %q must start with /", ErrMalformedURL, endpoint)
	}

	base, err := url.Parse(b.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("%w: base URL %q is not absolute", ErrMalformedURL, b.baseURL)
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	if !b.bearer && b.apiKey != "" {
		q.Set("api_key", b.apiKey)
	}
	if b.language != "" && !q.Has("language") {
		q.Set("language", b.language)
	}
	if b.includeAdult != nil && !q.Has("include_adult") {
		q.Set("include_adult", strconv.FormatBool(*b.includeAdult))
	}
	if b.sessionID != "" && needsSession(endpoint) {
		q.Set("session_id", b.sessionID)
	}

	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + endpoint
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// needsSession reports whether endpoint acts on behalf of a user
func needsSession(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/account") || strings.HasSuffix(endpoint, "/rating")
}
