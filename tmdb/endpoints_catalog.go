package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// GetCollection retrieves a collection with its movies. Images are fetched
// with a supplementary call.
func (c *Client) GetCollection(ctx context.Context, id int64) (*Collection, SubFetchReport, error) {
	path := fmt.Sprintf("/collection/%d", id)
	col, err := single(ctx, c, path, nil, ParseCollection)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, SubFetchReport{}, err
	}

	report := c.runSubFetches(ctx, "collection", id, []subFetch{
		fetchInto(c, "images", path+"/images", ParseImageSet, &col.Images),
	})
	return &col, report, err
}

// GetCollectionImages retrieves the posters and backdrops of a collection
func (c *Client) GetCollectionImages(ctx context.Context, id int64) (ImageSet, error) {
	return single(ctx, c, fmt.Sprintf("/collection/%d/images", id), nil, ParseImageSet)
}

// GetCompany retrieves a production company. Logos are fetched with a
// supplementary call.
func (c *Client) GetCompany(ctx context.Context, id int64) (*Company, SubFetchReport, error) {
	path := fmt.Sprintf("/company/%d", id)
	co, err := single(ctx, c, path, nil, ParseCompany)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, SubFetchReport{}, err
	}

	report := c.runSubFetches(ctx, "company", id, []subFetch{
		fetchInto(c, "logos", path+"/images", parseLogos, &co.Logos),
	})
	return &co, report, err
}

// GetCompanyImages retrieves the logos of a company
func (c *Client) GetCompanyImages(ctx context.Context, id int64) ([]Image, error) {
	return single(ctx, c, fmt.Sprintf("/company/%d/images", id), nil, parseLogos)
}

// GetKeywordMovies retrieves the movies tagged with a keyword
func (c *Client) GetKeywordMovies(ctx context.Context, id int64, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, fmt.Sprintf("/keyword/%d/movies", id), nil, page, ParseMovieReduced)
}

// GetMovieGenres retrieves the official movie genres
func (c *Client) GetMovieGenres(ctx context.Context) ([]Genre, error) {
	return single(ctx, c, "/genre/movie/list", nil, func(data json.RawMessage) ([]Genre, error) {
		return parseField("genres", "genres", data, ParseGenre)
	})
}

// GetList retrieves a user list with its movies
func (c *Client) GetList(ctx context.Context, id string) (*List, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: list id is required", ErrInvalidConfig)
	}
	l, err := single(ctx, c, "/list/"+url.PathEscape(id), nil, ParseList)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, err
	}
	return &l, err
}

func parseLogos(data json.RawMessage) ([]Image, error) {
	return parseField("company images", "logos", data, imageParser(ImageKindLogo))
}
