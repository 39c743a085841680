package cmd

import (
	"github.com/spf13/cobra"
)

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:   "person <id>",
	Short: "Show a person with their images and movie credits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, report, err := client.GetPerson(cmd.Context(), id)
		return printFull(p, report, err)
	},
}

var popularPeopleCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular people",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.GetPopularPeople(cmd.Context(), requestedPage())
		return printPage(p, err)
	},
}

func init() {
	addPagingFlags(popularPeopleCmd)
	personCmd.AddCommand(popularPeopleCmd)
	rootCmd.AddCommand(personCmd)
}
