package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/tmdb"
)

var forceReload bool

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDb",
	Long:  `Test the connection and credentials and display the image catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Show the image configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if forceReload {
			if err := client.Configuration().ForceLoad(cmd.Context()); err != nil {
				return err
			}
		}
		snapshot, err := client.GetConfiguration(cmd.Context())
		if err != nil {
			return err
		}
		return printer.Print(snapshot)
	},
}

// imageURLCmd represents the image-url command
var imageURLCmd = &cobra.Command{
	Use:   "image-url <kind> <file-path> <size>",
	Short: "Build the URL of an image",
	Long: `Build the URL of an image from its kind (poster, backdrop, logo, profile,
still), file path (e.g. /kqjL17yufvn9OVLyXYpvtyrFfak.jpg) and size (e.g.
w500 or original). The size must be in the catalog for that kind.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := tmdb.ParseImageKind(args[0])
		if err != nil {
			return err
		}
		if err := client.LoadConfiguration(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load image configuration: %w", err)
		}
		u, err := client.ImageURL(tmdb.Image{Kind: kind, FilePath: args[1]}, args[2])
		if err != nil {
			return err
		}
		return printer.Print(u)
	},
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Testing connection to TMDb at %s...\n", cfg.TMDb.BaseURL)

	if err := client.TestConnection(cmd.Context()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Connection successful!")

	snapshot, err := client.GetConfiguration(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load image configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nTMDb Statistics:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "- Image base URL: %s\n", snapshot.SecureBaseURL)
	fmt.Fprintf(cmd.OutOrStdout(), "- Image kinds: %d\n", len(snapshot.Sizes))
	fmt.Fprintf(cmd.OutOrStdout(), "- Change keys: %d\n", len(snapshot.ChangeKeys))

	if cfg.TMDb.SessionID != "" {
		account, err := client.GetAccount(cmd.Context())
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSession: invalid (%v)\n", err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSession: %s (ID: %d)\n", account.Username, account.ID)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSession: Disabled")
	}

	return nil
}

func init() {
	configurationCmd.Flags().BoolVar(&forceReload, "reload", false, "discard the cached configuration and fetch it again")

	rootCmd.AddCommand(testCmd, configurationCmd, imageURLCmd)
}
