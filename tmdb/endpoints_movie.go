package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

func moviePath(id int64) string {
	return fmt.Sprintf("/movie/%d", id)
}

// GetMovie retrieves the full movie record. Images, keywords, translations,
// videos, credits and alternative titles are fetched with supplementary
// calls; their outcomes are listed in the report and a failed one leaves
// its collection empty. The error only reflects the primary call.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, SubFetchReport, error) {
	path := moviePath(id)
	m, err := single(ctx, c, path, nil, ParseMovie)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, SubFetchReport{}, err
	}

	credits := Credits{Cast: []CastCredit{}, Crew: []CrewCredit{}}
	report := c.runSubFetches(ctx, "movie", id, []subFetch{
		fetchInto(c, "images", path+"/images", ParseImageSet, &m.Images),
		fetchInto(c, "keywords", path+"/keywords", parseMovieKeywords, &m.Keywords),
		fetchInto(c, "translations", path+"/translations", parseTranslations, &m.Translations),
		fetchInto(c, "videos", path+"/videos", parseVideos, &m.Videos),
		fetchInto(c, "credits", path+"/credits", ParseCredits, &credits),
		fetchInto(c, "alternative_titles", path+"/alternative_titles", parseAlternativeTitles, &m.AlternativeTitles),
	})
	m.Cast, m.Crew = credits.Cast, credits.Crew

	c.logger.Debug().
		Int64("id", id).
		Str("title", m.Title).
		Int("subfetch_failures", len(report.Failed())).
		Msg("Retrieved movie")

	return &m, report, err
}

// GetMovieImages retrieves the posters, backdrops and logos of a movie
func (c *Client) GetMovieImages(ctx context.Context, id int64) (ImageSet, error) {
	return single(ctx, c, moviePath(id)+"/images", nil, ParseImageSet)
}

// GetMovieKeywords retrieves the keywords of a movie
func (c *Client) GetMovieKeywords(ctx context.Context, id int64) ([]Keyword, error) {
	return single(ctx, c, moviePath(id)+"/keywords", nil, parseMovieKeywords)
}

// GetMovieTranslations retrieves the translations of a movie
func (c *Client) GetMovieTranslations(ctx context.Context, id int64) ([]Translation, error) {
	return single(ctx, c, moviePath(id)+"/translations", nil, parseTranslations)
}

// GetMovieVideos retrieves the videos of a movie
func (c *Client) GetMovieVideos(ctx context.Context, id int64) ([]Video, error) {
	return single(ctx, c, moviePath(id)+"/videos", nil, parseVideos)
}

// GetMovieCredits retrieves the cast and crew of a movie
func (c *Client) GetMovieCredits(ctx context.Context, id int64) (Credits, error) {
	return single(ctx, c, moviePath(id)+"/credits", nil, ParseCredits)
}

// GetMovieAlternativeTitles retrieves the titles a movie is known by in other countries
func (c *Client) GetMovieAlternativeTitles(ctx context.Context, id int64) ([]AlternativeTitle, error) {
	return single(ctx, c, moviePath(id)+"/alternative_titles", nil, parseAlternativeTitles)
}

// GetMovieReviews retrieves user reviews of a movie
func (c *Client) GetMovieReviews(ctx context.Context, id int64, page int) (*Page[Review], error) {
	return paged(ctx, c, moviePath(id)+"/reviews", nil, page, ParseReview)
}

// GetSimilarMovies retrieves movies similar to a movie
func (c *Client) GetSimilarMovies(ctx context.Context, id int64, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, moviePath(id)+"/similar", nil, page, ParseMovieReduced)
}

// GetMovieRecommendations retrieves movies recommended for viewers of a movie
func (c *Client) GetMovieRecommendations(ctx context.Context, id int64, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, moviePath(id)+"/recommendations", nil, page, ParseMovieReduced)
}

// GetMovieChanges retrieves the edits made to a movie within window
func (c *Client) GetMovieChanges(ctx context.Context, id int64, window ChangesWindow) ([]Change, error) {
	return single(ctx, c, moviePath(id)+"/changes", window.params(), parseChanges)
}

// GetPopularMovies retrieves the current popular movies
func (c *Client) GetPopularMovies(ctx context.Context, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, "/movie/popular", nil, page, ParseMovieReduced)
}

// GetTopRatedMovies retrieves the top rated movies
func (c *Client) GetTopRatedMovies(ctx context.Context, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, "/movie/top_rated", nil, page, ParseMovieReduced)
}

// GetUpcomingMovies retrieves movies soon to be released
func (c *Client) GetUpcomingMovies(ctx context.Context, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, "/movie/upcoming", nil, page, ParseMovieReduced)
}

// GetNowPlayingMovies retrieves movies currently in theatres
func (c *Client) GetNowPlayingMovies(ctx context.Context, page int) (*Page[MovieReduced], error) {
	return paged(ctx, c, "/movie/now_playing", nil, page, ParseMovieReduced)
}

// GetLatestMovie retrieves the most recently created movie. No
// supplementary calls are made.
func (c *Client) GetLatestMovie(ctx context.Context) (*Movie, error) {
	m, err := single(ctx, c, "/movie/latest", nil, ParseMovie)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, err
	}
	return &m, err
}

func parseMovieKeywords(data json.RawMessage) ([]Keyword, error) {
	return parseField("movie keywords", "keywords", data, ParseKeyword)
}

func parseTranslations(data json.RawMessage) ([]Translation, error) {
	return parseField("translations", "translations", data, ParseTranslation)
}

func parseVideos(data json.RawMessage) ([]Video, error) {
	return parseField("videos", "results", data, ParseVideo)
}

func parseAlternativeTitles(data json.RawMessage) ([]AlternativeTitle, error) {
	return parseField("alternative titles", "titles", data, ParseAlternativeTitle)
}
