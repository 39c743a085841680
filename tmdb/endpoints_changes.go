package tmdb

import (
	"context"
	"net/url"
	"time"
)

// ChangesWindow bounds a changes query. Zero times are omitted and the
// service defaults to the last 24 hours.
type ChangesWindow struct {
	Start time.Time
	End   time.Time
}

func (w ChangesWindow) params() url.Values {
	params := url.Values{}
	if !w.Start.IsZero() {
		params.Set("start_date", w.Start.Format(time.DateOnly))
	}
	if !w.End.IsZero() {
		params.Set("end_date", w.End.Format(time.DateOnly))
	}
	return params
}

// GetChangedMovieIDs retrieves the ids of movies changed within window
func (c *Client) GetChangedMovieIDs(ctx context.Context, window ChangesWindow, page int) (*Page[ChangedItem], error) {
	return paged(ctx, c, "/movie/changes", window.params(), page, ParseChangedItem)
}

// GetChangedPersonIDs retrieves the ids of people changed within window
func (c *Client) GetChangedPersonIDs(ctx context.Context, window ChangesWindow, page int) (*Page[ChangedItem], error) {
	return paged(ctx, c, "/person/changes", window.params(), page, ParseChangedItem)
}
