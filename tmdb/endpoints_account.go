package tmdb

import (
	"context"
	"errors"
	"fmt"
)

func (c *Client) requireSession() error {
	if c.urls.sessionID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoSession)
	}
	return nil
}

// GetAccount retrieves the account behind the configured session
func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	a, err := single(ctx, c, "/account", nil, ParseAccount)
	if err != nil && !errors.Is(err, ErrPartialParse) {
		return nil, err
	}
	return &a, err
}

// GetFavoriteMovies retrieves the movies the account marked as favorite
func (c *Client) GetFavoriteMovies(ctx context.Context, accountID int64, page int) (*Page[MovieReduced], error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	return paged(ctx, c, fmt.Sprintf("/account/%d/favorite/movies", accountID), nil, page, ParseMovieReduced)
}

// GetRatedMovies retrieves the movies the account rated
func (c *Client) GetRatedMovies(ctx context.Context, accountID int64, page int) (*Page[RatedMovie], error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	return paged(ctx, c, fmt.Sprintf("/account/%d/rated/movies", accountID), nil, page, ParseRatedMovie)
}

// GetWatchlistMovies retrieves the movies on the account's watchlist
func (c *Client) GetWatchlistMovies(ctx context.Context, accountID int64, page int) (*Page[MovieReduced], error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	return paged(ctx, c, fmt.Sprintf("/account/%d/watchlist/movies", accountID), nil, page, ParseMovieReduced)
}

type favoriteRequest struct {
	MediaType string `json:"media_type"`
	MediaID   int64  `json:"media_id"`
	Favorite  bool   `json:"favorite"`
}

type watchlistRequest struct {
	MediaType string `json:"media_type"`
	MediaID   int64  `json:"media_id"`
	Watchlist bool   `json:"watchlist"`
}

type ratingRequest struct {
	Value float64 `json:"value"`
}

// MarkFavorite adds a movie to or removes it from the account's favorites
func (c *Client) MarkFavorite(ctx context.Context, accountID, movieID int64, favorite bool) (WriteResult, error) {
	if err := c.requireSession(); err != nil {
		return WriteResult{}, err
	}
	body := favoriteRequest{MediaType: "movie", MediaID: movieID, Favorite: favorite}
	return Materialize(c.Post(ctx, fmt.Sprintf("/account/%d/favorite", accountID), nil, body), ParseWriteResult)
}

// AddToWatchlist adds a movie to or removes it from the account's watchlist
func (c *Client) AddToWatchlist(ctx context.Context, accountID, movieID int64, watchlist bool) (WriteResult, error) {
	if err := c.requireSession(); err != nil {
		return WriteResult{}, err
	}
	body := watchlistRequest{MediaType: "movie", MediaID: movieID, Watchlist: watchlist}
	return Materialize(c.Post(ctx, fmt.Sprintf("/account/%d/watchlist", accountID), nil, body), ParseWriteResult)
}

// RateMovie rates a movie on the service's 0.5 to 10 scale
func (c *Client) RateMovie(ctx context.Context, movieID int64, value float64) (WriteResult, error) {
	if err := c.requireSession(); err != nil {
		return WriteResult{}, err
	}
	if value < 0.5 || value > 10 {
		return WriteResult{}, fmt.Errorf("%w: rating %.1f outside 0.5-10", ErrInvalidConfig, value)
	}
	return Materialize(c.Post(ctx, moviePath(movieID)+"/rating", nil, ratingRequest{Value: value}), ParseWriteResult)
}
