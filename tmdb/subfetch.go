package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SubFetchResult is the outcome of one supplementary call of a full-tier fetch
type SubFetchResult struct {
	Name   string `json:"name" yaml:"name"`
	Status Status `json:"status" yaml:"status"`
	Err    error  `json:"-" yaml:"-"`
}

// SubFetchReport lists the supplementary calls made for a full-tier entity
type SubFetchReport struct {
	Results []SubFetchResult `json:"results" yaml:"results"`
}

// Failed returns the sub-fetches that did not complete cleanly
func (r SubFetchReport) Failed() []SubFetchResult {
	var failed []SubFetchResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every sub-fetch succeeded
func (r SubFetchReport) OK() bool {
	return len(r.Failed()) == 0
}

// Err joins the errors of the failed sub-fetches
func (r SubFetchReport) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
	}
	return errors.Join(errs...)
}

// subFetch is one supplementary call. run stores its result in the entity
// on success and leaves the destination untouched on failure.
type subFetch struct {
	name string
	run  func(ctx context.Context) (Status, error)
}

// fetchInto builds a subFetch that materializes endpoint into dst
func fetchInto[T any](c *Client, name, endpoint string, parse func(json.RawMessage) (T, error), dst *T) subFetch {
	return subFetch{
		name: name,
		run: func(ctx context.Context) (Status, error) {
			resp := c.Call(ctx, endpoint, nil)
			v, err := Materialize(resp, parse)
			if resp.HasError() {
				return resp.Status(), err
			}
			*dst = v
			return StatusOK, err
		},
	}
}

// runSubFetches runs the supplementary calls of entity with the client's
// concurrency limit. A failing call never stops the others.
func (c *Client) runSubFetches(ctx context.Context, entity string, id int64, fetches []subFetch) SubFetchReport {
	report := SubFetchReport{Results: make([]SubFetchResult, len(fetches))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.subFetchConcurrency)

	for i, f := range fetches {
		g.Go(func() error {
			status, err := f.run(ctx)
			report.Results[i] = SubFetchResult{Name: f.name, Status: status, Err: err}
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("entity", entity).
					Int64("id", id).
					Str("subfetch", f.name).
					Str("status", status.String()).
					Msg("Failed to fetch supplementary data")
			}
			// Continue with the remaining sub-fetches
			return nil
		})
	}

	_ = g.Wait()
	return report
}
