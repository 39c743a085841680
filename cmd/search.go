package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/tmdb"
)

var searchYear int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies, people, companies, collections or keywords",
}

func searchOptions() tmdb.SearchOptions {
	return tmdb.SearchOptions{Year: searchYear, Page: requestedPage()}
}

func query(args []string) string {
	return strings.Join(args, " ")
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie <query>",
	Short: "Search movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.SearchMovies(cmd.Context(), query(args), searchOptions())
		return printMoviePage(cmd.Context(), p, err)
	},
}

var searchPersonCmd = &cobra.Command{
	Use:   "person <query>",
	Short: "Search people by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.SearchPeople(cmd.Context(), query(args), searchOptions())
		return printPage(p, err)
	},
}

var searchCompanyCmd = &cobra.Command{
	Use:   "company <query>",
	Short: "Search production companies by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.SearchCompanies(cmd.Context(), query(args), searchOptions())
		return printPage(p, err)
	},
}

var searchCollectionCmd = &cobra.Command{
	Use:   "collection <query>",
	Short: "Search collections by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.SearchCollections(cmd.Context(), query(args), searchOptions())
		return printPage(p, err)
	},
}

var searchKeywordCmd = &cobra.Command{
	Use:   "keyword <query>",
	Short: "Search keywords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.SearchKeywords(cmd.Context(), query(args), searchOptions())
		return printPage(p, err)
	},
}

func init() {
	searchMovieCmd.Flags().IntVarP(&searchYear, "year", "y", 0, "restrict results to a release year")
	addFilterFlags(searchMovieCmd)

	for _, c := range []*cobra.Command{searchMovieCmd, searchPersonCmd, searchCompanyCmd, searchCollectionCmd, searchKeywordCmd} {
		addPagingFlags(c)
		searchCmd.AddCommand(c)
	}

	rootCmd.AddCommand(searchCmd)
}
