package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response wraps the outcome of a call returning a single JSON object.
// The payload is present if and only if the status is StatusOK.
type Response struct {
	status  Status
	payload json.RawMessage
	err     error
}

// NewResponse creates a successful Response around a raw JSON document
func NewResponse(payload json.RawMessage) *Response {
	return &Response{status: StatusOK, payload: payload}
}

// FailedResponse creates a Response carrying a failure status and no payload
func FailedResponse(status Status, err error) *Response {
	status, err = failure(status, err)
	return &Response{status: status, err: err}
}

// Status returns the call outcome
func (r *Response) Status() Status {
	return r.status
}

// HasError reports whether the call failed
func (r *Response) HasError() bool {
	return r.status != StatusOK
}

// Err returns a *StatusError describing the failure, or nil on success
func (r *Response) Err() error {
	if !r.HasError() {
		return nil
	}
	return r.err
}

// Payload returns the raw JSON document. Accessing the payload of a failed
// response returns ErrNoPayload rather than an empty document.
func (r *Response) Payload() (json.RawMessage, error) {
	if r.HasError() {
		return nil, fmt.Errorf("%w: %w", ErrNoPayload, r.err)
	}
	return r.payload, nil
}

// PagedResponse wraps the outcome of a call returning one page of results
type PagedResponse struct {
	status       Status
	page         int
	totalPages   int
	totalResults int
	items        []json.RawMessage
	err          error
}

// pageDocument is the wire shape of a paged result
type pageDocument struct {
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
	Results      []json.RawMessage `json:"results"`
}

// NewPagedResponse creates a successful PagedResponse from a raw page
// document. A document that is not a page fails with StatusUnknownError.
func NewPagedResponse(doc json.RawMessage) *PagedResponse {
	var pd pageDocument
	if err := json.Unmarshal(doc, &pd); err != nil {
		return FailedPagedResponse(StatusUnknownError, fmt.Errorf("decode page: %w", err))
	}
	if pd.Results == nil {
		return FailedPagedResponse(StatusUnknownError, &ParseError{Entity: "page", Missing: []string{"results"}})
	}

	page := pd.Page
	if pd.TotalPages >= 1 {
		page = min(max(page, 1), pd.TotalPages)
	}

	return &PagedResponse{
		status:       StatusOK,
		page:         page,
		totalPages:   pd.TotalPages,
		totalResults: pd.TotalResults,
		items:        pd.Results,
	}
}

// FailedPagedResponse creates a PagedResponse carrying a failure status and no items
func FailedPagedResponse(status Status, err error) *PagedResponse {
	status, err = failure(status, err)
	return &PagedResponse{status: status, err: err}
}

// Status returns the call outcome
func (p *PagedResponse) Status() Status {
	return p.status
}

// HasError reports whether the call failed
func (p *PagedResponse) HasError() bool {
	return p.status != StatusOK
}

// Err returns a *StatusError describing the failure, or nil on success
func (p *PagedResponse) Err() error {
	if !p.HasError() {
		return nil
	}
	return p.err
}

// Page returns the 1-based page number
func (p *PagedResponse) Page() int {
	return p.page
}

// TotalPages returns the number of pages the service reported
func (p *PagedResponse) TotalPages() int {
	return p.totalPages
}

// TotalResults returns the number of results the service reported
func (p *PagedResponse) TotalResults() int {
	return p.totalResults
}

// HasMorePages checks if there are more pages to fetch
func (p *PagedResponse) HasMorePages() bool {
	return !p.HasError() && p.page < p.totalPages
}

// Items returns the raw entries of the page in server order
func (p *PagedResponse) Items() ([]json.RawMessage, error) {
	if p.HasError() {
		return nil, fmt.Errorf("%w: %w", ErrNoPayload, p.err)
	}
	return p.items, nil
}

// failure normalizes a failure status and wraps err in a *StatusError
func failure(status Status, err error) (Status, error) {
	if status == StatusOK {
		status = StatusUnknownError
	}
	var se *StatusError
	if errors.As(err, &se) && se.Status == status {
		return status, se
	}
	return status, &StatusError{Status: status, Err: err}
}

// Page is a materialized page of entities
type Page[T any] struct {
	Page         int `json:"page" yaml:"page"`
	TotalPages   int `json:"total_pages" yaml:"total_pages"`
	TotalResults int `json:"total_results" yaml:"total_results"`
	Results      []T `json:"results" yaml:"results"`
}

// Materialize parses the payload of r with parse. A failed response
// returns its *StatusError; a partial parse returns the entity together
// with a *ParseError.
func Materialize[T any](r *Response, parse func(json.RawMessage) (T, error)) (T, error) {
	payload, err := r.Payload()
	if err != nil {
		var zero T
		return zero, r.Err()
	}
	return parse(payload)
}

// MaterializePage parses every item of p with parse, preserving order.
// Items that fail to parse completely are still included; their errors are
// joined into the returned error.
func MaterializePage[T any](p *PagedResponse, parse func(json.RawMessage) (T, error)) (*Page[T], error) {
	items, err := p.Items()
	if err != nil {
		return nil, p.Err()
	}
	results, err := materializeAll(items, parse)
	return &Page[T]{
		Page:         p.Page(),
		TotalPages:   p.TotalPages(),
		TotalResults: p.TotalResults(),
		Results:      results,
	}, err
}

func materializeAll[T any](items []json.RawMessage, parse func(json.RawMessage) (T, error)) ([]T, error) {
	results := make([]T, 0, len(items))
	var errs []error
	for _, item := range items {
		v, err := parse(item)
		if err != nil {
			errs = append(errs, err)
		}
		results = append(results, v)
	}
	return results, errors.Join(errs...)
}
