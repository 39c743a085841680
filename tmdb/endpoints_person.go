package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

func personPath(id int64) string {
	return fmt.Sprintf("/person/%d", id)
}

// GetPerson retrieves the full person record with profile images and movie
// credits fetched through supplementary calls
func (c *Client) GetPerson(ctx context.Context, id int64) (*Person, SubFetchReport, error) {
	path := personPath(id)
	p, err := single(ctx, c, path, nil, ParsePerson)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, SubFetchReport{}, err
	}

	report := c.runSubFetches(ctx, "person", id, []subFetch{
		fetchInto(c, "images", path+"/images", parseProfiles, &p.Images),
		fetchInto(c, "movie_credits", path+"/movie_credits", ParsePersonMovieCredits, &p.MovieCredits),
	})

	c.logger.Debug().
		Int64("id", id).
		Str("name", p.Name).
		Int("subfetch_failures", len(report.Failed())).
		Msg("Retrieved person")

	return &p, report, err
}

// GetPersonImages retrieves the profile images of a person
func (c *Client) GetPersonImages(ctx context.Context, id int64) ([]Image, error) {
	return single(ctx, c, personPath(id)+"/images", nil, parseProfiles)
}

// GetPersonMovieCredits retrieves the movies a person acted in or worked on
func (c *Client) GetPersonMovieCredits(ctx context.Context, id int64) (PersonMovieCredits, error) {
	return single(ctx, c, personPath(id)+"/movie_credits", nil, ParsePersonMovieCredits)
}

// GetPopularPeople retrieves the current popular people
func (c *Client) GetPopularPeople(ctx context.Context, page int) (*Page[PersonReduced], error) {
	return paged(ctx, c, "/person/popular", nil, page, ParsePersonReduced)
}

// GetPersonChanges retrieves the edits made to a person
func (c *Client) GetPersonChanges(ctx context.Context, id int64, window ChangesWindow) ([]Change, error) {
	return single(ctx, c, personPath(id)+"/changes", window.params(), parseChanges)
}

func parseProfiles(data json.RawMessage) ([]Image, error) {
	return parseField("person images", "profiles", data, imageParser(ImageKindProfile))
}
