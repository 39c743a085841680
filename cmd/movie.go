package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/tmdb"
)

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show a movie with its credits, images and videos",
	Long: `Show the full record of a movie. Images, keywords, translations, videos,
credits and alternative titles are fetched with supplementary calls; a
failed one is reported and leaves its section empty.`,
	Args: cobra.ExactArgs(1),
	RunE: runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)

	lists := []struct {
		use   string
		short string
		fetch func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieReduced], error)
	}{
		{"popular", "List popular movies", func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetPopularMovies(ctx, page)
		}},
		{"top-rated", "List top rated movies", func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetTopRatedMovies(ctx, page)
		}},
		{"upcoming", "List upcoming movies", func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetUpcomingMovies(ctx, page)
		}},
		{"now-playing", "List movies in theatres", func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetNowPlayingMovies(ctx, page)
		}},
	}
	for _, l := range lists {
		fetch := l.fetch
		c := &cobra.Command{
			Use:   l.use,
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := fetch(cmd.Context(), requestedPage())
				return printMoviePage(cmd.Context(), p, err)
			},
		}
		addPagingFlags(c)
		addFilterFlags(c)
		movieCmd.AddCommand(c)
	}

	related := []struct {
		use   string
		short string
		fetch func(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieReduced], error)
	}{
		{"similar <id>", "List movies similar to a movie", func(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetSimilarMovies(ctx, id, page)
		}},
		{"recommendations <id>", "List movies recommended for a movie", func(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetMovieRecommendations(ctx, id, page)
		}},
	}
	for _, r := range related {
		fetch := r.fetch
		c := &cobra.Command{
			Use:   r.use,
			Short: r.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				p, err := fetch(cmd.Context(), id, requestedPage())
				return printMoviePage(cmd.Context(), p, err)
			},
		}
		addPagingFlags(c)
		addFilterFlags(c)
		movieCmd.AddCommand(c)
	}

	movieReviewsCmd := &cobra.Command{
		Use:   "reviews <id>",
		Short: "List user reviews of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := client.GetMovieReviews(cmd.Context(), id, requestedPage())
			return printPage(p, err)
		},
	}
	addPagingFlags(movieReviewsCmd)

	movieCmd.AddCommand(
		movieReviewsCmd,
		&cobra.Command{
			Use:   "latest",
			Short: "Show the most recently added movie",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := client.GetLatestMovie(cmd.Context())
				return printEntity(m, err)
			},
		},
		&cobra.Command{
			Use:   "genres",
			Short: "List the movie genres",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				genres, err := client.GetMovieGenres(cmd.Context())
				if err != nil {
					return err
				}
				return printer.Print(genres)
			},
		},
	)
}

func runMovie(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	logger.Debug().Int64("id", id).Msg("Fetching movie")

	m, report, err := client.GetMovie(cmd.Context(), id)
	return printFull(m, report, err)
}

// parseID parses a numeric entity id argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", arg)
	}
	return id, nil
}
