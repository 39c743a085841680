package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/tmdb"
)

var (
	changesStart string
	changesEnd   string
)

// changesCmd represents the changes command
var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Follow the changes feed",
	Long: `List the ids of movies or people edited on TMDb. Without --start and --end
the service reports the last 24 hours; a window may span at most 14 days.`,
}

var changedMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the ids of changed movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := changesWindow()
		if err != nil {
			return err
		}
		p, err := client.GetChangedMovieIDs(cmd.Context(), window, requestedPage())
		return printPage(p, err)
	},
}

var changedPeopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List the ids of changed people",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := changesWindow()
		if err != nil {
			return err
		}
		p, err := client.GetChangedPersonIDs(cmd.Context(), window, requestedPage())
		return printPage(p, err)
	},
}

var movieChangesCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show the edits made to a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		window, err := changesWindow()
		if err != nil {
			return err
		}
		changes, err := client.GetMovieChanges(cmd.Context(), id, window)
		if err != nil {
			return err
		}
		return printer.Print(changes)
	},
}

var personChangesCmd = &cobra.Command{
	Use:   "person <id>",
	Short: "Show the edits made to a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		window, err := changesWindow()
		if err != nil {
			return err
		}
		changes, err := client.GetPersonChanges(cmd.Context(), id, window)
		if err != nil {
			return err
		}
		return printer.Print(changes)
	},
}

// changesWindow parses --start and --end
func changesWindow() (tmdb.ChangesWindow, error) {
	var window tmdb.ChangesWindow
	var err error

	if changesStart != "" {
		if window.Start, err = time.Parse(time.DateOnly, changesStart); err != nil {
			return window, fmt.Errorf("invalid --start %q: expected YYYY-MM-DD", changesStart)
		}
	}
	if changesEnd != "" {
		if window.End, err = time.Parse(time.DateOnly, changesEnd); err != nil {
			return window, fmt.Errorf("invalid --end %q: expected YYYY-MM-DD", changesEnd)
		}
	}
	if !window.Start.IsZero() && !window.End.IsZero() && window.End.Before(window.Start) {
		return window, fmt.Errorf("--end %s is before --start %s", changesEnd, changesStart)
	}

	return window, nil
}

func init() {
	changesCmd.PersistentFlags().StringVar(&changesStart, "start", "", "start of the window (YYYY-MM-DD)")
	changesCmd.PersistentFlags().StringVar(&changesEnd, "end", "", "end of the window (YYYY-MM-DD)")

	addPagingFlags(changedMoviesCmd)
	addPagingFlags(changedPeopleCmd)

	changesCmd.AddCommand(changedMoviesCmd, changedPeopleCmd, movieChangesCmd, personChangesCmd)
	rootCmd.AddCommand(changesCmd)
}
