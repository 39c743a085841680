package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageDoc renders a page document whose results are {"id":"<item>"} objects
func pageDoc(page, totalPages, totalResults int, items ...string) json.RawMessage {
	results := make([]string, len(items))
	for i, item := range items {
		results[i] = fmt.Sprintf(`{"id":%q}`, item)
	}
	return json.RawMessage(fmt.Sprintf(`{"page":%d,"total_pages":%d,"total_results":%d,"results":[%s]}`,
		page, totalPages, totalResults, strings.Join(results, ",")))
}

func itemIDs(t *testing.T, p *PagedResponse) []string {
	t.Helper()
	items, err := p.Items()
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		var v struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(item, &v))
		ids = append(ids, v.ID)
	}
	return ids
}

func TestFetchAll(t *testing.T) {
	t.Run("merges pages in order", func(t *testing.T) {
		pages := map[int]json.RawMessage{
			1: pageDoc(1, 3, 3, "a"),
			2: pageDoc(2, 3, 3, "b"),
			3: pageDoc(3, 3, 3, "c"),
		}
		var requested []int
		result := FetchAll(context.Background(), func(_ context.Context, page int) *PagedResponse {
			requested = append(requested, page)
			return NewPagedResponse(pages[page])
		})

		require.False(t, result.HasError())
		assert.Equal(t, []int{1, 2, 3}, requested)
		assert.Equal(t, []string{"a", "b", "c"}, itemIDs(t, result))
		assert.Equal(t, 1, result.Page())
		assert.Equal(t, 3, result.TotalPages())
		assert.Equal(t, 3, result.TotalResults())
	})

	t.Run("single page is returned unchanged", func(t *testing.T) {
		calls := 0
		first := NewPagedResponse(pageDoc(1, 1, 2, "a", "b"))
		result := FetchAll(context.Background(), func(_ context.Context, page int) *PagedResponse {
			calls++
			return first
		})
		assert.Same(t, first, result)
		assert.Equal(t, 1, calls)
	})

	t.Run("empty result set", func(t *testing.T) {
		result := FetchAll(context.Background(), func(_ context.Context, page int) *PagedResponse {
			return NewPagedResponse(pageDoc(1, 0, 0))
		})
		require.False(t, result.HasError())
		assert.Empty(t, itemIDs(t, result))
	})

	t.Run("first page failure", func(t *testing.T) {
		result := FetchAll(context.Background(), func(_ context.Context, page int) *PagedResponse {
			return FailedPagedResponse(StatusUnauthorized, nil)
		})
		assert.Equal(t, StatusUnauthorized, result.Status())
	})

	t.Run("later page failure discards accumulated items", func(t *testing.T) {
		var requested []int
		failed := FailedPagedResponse(StatusServerError, nil)
		result := FetchAll(context.Background(), func(_ context.Context, page int) *PagedResponse {
			requested = append(requested, page)
			switch page {
			case 1:
				return NewPagedResponse(pageDoc(1, 3, 3, "a"))
			case 2:
				return failed
			default:
				return NewPagedResponse(pageDoc(page, 3, 3, "c"))
			}
		})

		assert.Same(t, failed, result)
		assert.Equal(t, StatusServerError, result.Status())
		assert.Equal(t, []int{1, 2}, requested)
		_, err := result.Items()
		assert.ErrorIs(t, err, ErrNoPayload)
	})

	t.Run("cancelled between pages", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		result := FetchAll(ctx, func(_ context.Context, page int) *PagedResponse {
			cancel()
			return NewPagedResponse(pageDoc(page, 2, 2, "a"))
		})
		assert.True(t, result.HasError())
		assert.Equal(t, StatusUnknownError, result.Status())
	})
}
