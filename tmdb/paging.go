package tmdb

import (
	"context"
	"encoding/json"
)

// PageFetcher fetches one page of a paged endpoint
type PageFetcher func(ctx context.Context, page int) *PagedResponse

// FetchAll walks every page reported by page 1 and merges their items in
// page order. Pages are requested strictly one after another. The first
// failing page's envelope is returned as-is and nothing accumulated before
// it is exposed. The merged envelope reports page 1 and page 1's totals.
func FetchAll(ctx context.Context, fetch PageFetcher) *PagedResponse {
	first := fetch(ctx, 1)
	if first.HasError() || first.TotalPages() <= 1 {
		return first
	}

	items := append([]json.RawMessage(nil), first.items...)

	for p := 2; p <= first.TotalPages(); p++ {
		if err := ctx.Err(); err != nil {
			return FailedPagedResponse(classifyTransportError(err), err)
		}
		next := fetch(ctx, p)
		if next.HasError() {
			return next
		}
		items = append(items, next.items...)
	}

	return &PagedResponse{
		status:       StatusOK,
		page:         1,
		totalPages:   first.TotalPages(),
		totalResults: first.TotalResults(),
		items:        items,
	}
}
