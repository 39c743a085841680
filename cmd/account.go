package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/tmdb"
)

var remove bool

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account behind the configured session",
	Long: `Show the account behind tmdb.session_id and manage its favorites,
watchlist and ratings. Every account command requires a session id.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := client.GetAccount(cmd.Context())
		return printEntity(a, err)
	},
}

// currentAccountID resolves the account id of the session
func currentAccountID(ctx context.Context) (int64, error) {
	a, err := client.GetAccount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve account: %w", err)
	}
	logger.Debug().Int64("account_id", a.ID).Str("username", a.Username).Msg("Resolved account")
	return a.ID, nil
}

func accountMovieList(use, short string, fetch func(ctx context.Context, accountID int64, page int) (*tmdb.Page[tmdb.MovieReduced], error)) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := currentAccountID(cmd.Context())
			if err != nil {
				return err
			}
			p, err := fetch(cmd.Context(), accountID, requestedPage())
			return printMoviePage(cmd.Context(), p, err)
		},
	}
	addPagingFlags(c)
	addFilterFlags(c)
	return c
}

var ratedCmd = &cobra.Command{
	Use:   "rated",
	Short: "List the movies the account has rated",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, err := currentAccountID(cmd.Context())
		if err != nil {
			return err
		}
		p, err := client.GetRatedMovies(cmd.Context(), accountID, requestedPage())
		return printPage(p, err)
	},
}

var markFavoriteCmd = &cobra.Command{
	Use:   "favorite <movie-id>",
	Short: "Add a movie to the favorites (or remove it with --remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0])
		if err != nil {
			return err
		}
		accountID, err := currentAccountID(cmd.Context())
		if err != nil {
			return err
		}
		result, err := client.MarkFavorite(cmd.Context(), accountID, movieID, !remove)
		if err != nil {
			return err
		}
		logger.Info().Int64("movie_id", movieID).Bool("favorite", !remove).Msg("Updated favorites")
		return printer.Print(result)
	},
}

var addWatchlistCmd = &cobra.Command{
	Use:   "watch <movie-id>",
	Short: "Add a movie to the watchlist (or remove it with --remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0])
		if err != nil {
			return err
		}
		accountID, err := currentAccountID(cmd.Context())
		if err != nil {
			return err
		}
		result, err := client.AddToWatchlist(cmd.Context(), accountID, movieID, !remove)
		if err != nil {
			return err
		}
		logger.Info().Int64("movie_id", movieID).Bool("watchlist", !remove).Msg("Updated watchlist")
		return printer.Print(result)
	},
}

var rateCmd = &cobra.Command{
	Use:   "rate <movie-id> <value>",
	Short: "Rate a movie from 0.5 to 10",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rating %q: %w", args[1], err)
		}
		result, err := client.RateMovie(cmd.Context(), movieID, value)
		if err != nil {
			return err
		}
		logger.Info().Int64("movie_id", movieID).Float64("rating", value).Msg("Rated movie")
		return printer.Print(result)
	},
}

func init() {
	addPagingFlags(ratedCmd)
	markFavoriteCmd.Flags().BoolVar(&remove, "remove", false, "remove instead of add")
	addWatchlistCmd.Flags().BoolVar(&remove, "remove", false, "remove instead of add")

	accountCmd.AddCommand(
		accountMovieList("favorites", "List the account's favorite movies", func(ctx context.Context, accountID int64, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetFavoriteMovies(ctx, accountID, page)
		}),
		accountMovieList("watchlist", "List the movies on the account's watchlist", func(ctx context.Context, accountID int64, page int) (*tmdb.Page[tmdb.MovieReduced], error) {
			return client.GetWatchlistMovies(ctx, accountID, page)
		}),
		ratedCmd,
		markFavoriteCmd,
		addWatchlistCmd,
		rateCmd,
	)
	rootCmd.AddCommand(accountCmd)
}
