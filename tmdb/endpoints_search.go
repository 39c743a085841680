package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SearchOptions narrows a search
type SearchOptions struct {
	// Year restricts movie searches to a release year; zero means any
	Year int
	// Page selects the result page; AllPages fetches every page
	Page int
}

func searchParams(query string, opts SearchOptions) (url.Values, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidConfig)
	}
	params := url.Values{}
	params.Set("query", query)
	if opts.Year > 0 {
		params.Set("year", strconv.Itoa(opts.Year))
	}
	return params, nil
}

// SearchMovies searches movies by title
func (c *Client) SearchMovies(ctx context.Context, query string, opts SearchOptions) (*Page[MovieReduced], error) {
	params, err := searchParams(query, opts)
	if err != nil {
		return nil, err
	}
	return paged(ctx, c, "/search/movie", params, opts.Page, ParseMovieReduced)
}

// SearchPeople searches people by name
func (c *Client) SearchPeople(ctx context.Context, query string, opts SearchOptions) (*Page[PersonReduced], error) {
	params, err := searchParams(query, SearchOptions{})
	if err != nil {
		return nil, err
	}
	return paged(ctx, c, "/search/person", params, opts.Page, ParsePersonReduced)
}

// SearchCompanies searches production companies by name
func (c *Client) SearchCompanies(ctx context.Context, query string, opts SearchOptions) (*Page[CompanyThumbnail], error) {
	params, err := searchParams(query, SearchOptions{})
	if err != nil {
		return nil, err
	}
	return paged(ctx, c, "/search/company", params, opts.Page, ParseCompanyThumbnail)
}

// SearchCollections searches collections by name
func (c *Client) SearchCollections(ctx context.Context, query string, opts SearchOptions) (*Page[CollectionReduced], error) {
	params, err := searchParams(query, SearchOptions{})
	if err != nil {
		return nil, err
	}
	return paged(ctx, c, "/search/collection", params, opts.Page, ParseCollectionReduced)
}

// SearchKeywords searches keywords by name
func (c *Client) SearchKeywords(ctx context.Context, query string, opts SearchOptions) (*Page[Keyword], error) {
	params, err := searchParams(query, SearchOptions{})
	if err != nil {
		return nil, err
	}
	return paged(ctx, c, "/search/keyword", params, opts.Page, ParseKeyword)
}
