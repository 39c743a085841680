package cmd

import (
	"github.com/spf13/cobra"
)

// collectionCmd represents the collection command
var collectionCmd = &cobra.Command{
	Use:   "collection <id>",
	Short: "Show a collection and the movies in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, report, err := client.GetCollection(cmd.Context(), id)
		return printFull(c, report, err)
	},
}

// companyCmd represents the company command
var companyCmd = &cobra.Command{
	Use:   "company <id>",
	Short: "Show a production company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, report, err := client.GetCompany(cmd.Context(), id)
		return printFull(c, report, err)
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "Show a user list and its movies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := client.GetList(cmd.Context(), args[0])
		return printEntity(l, err)
	},
}

// keywordCmd represents the keyword command
var keywordCmd = &cobra.Command{
	Use:   "keyword <id>",
	Short: "List the movies tagged with a keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := client.GetKeywordMovies(cmd.Context(), id, requestedPage())
		return printMoviePage(cmd.Context(), p, err)
	},
}

func init() {
	addPagingFlags(keywordCmd)
	addFilterFlags(keywordCmd)

	rootCmd.AddCommand(collectionCmd, companyCmd, listCmd, keywordCmd)
}
