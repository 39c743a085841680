package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/config"
	"github.com/s0up4200/marquee/filter"
	"github.com/s0up4200/marquee/output"
	"github.com/s0up4200/marquee/tmdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tmdb.Client
	printer *output.Printer
	filters *filter.Manager

	// Command flags
	outputFormat string
	filterExpr   string
	preset       string
	page         int
	allPages     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse movie metadata from TMDb",
	Long: `marquee is a CLI for The Movie Database. It looks up movies, people,
collections, companies and lists, searches the catalog, follows the changes
feed and manages the favorites, watchlist and ratings of an account.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// SetVersion sets the version reported by --version
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: console, json or yaml (overrides config)")
}

// initializeApp initializes the configuration and the TMDb client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override output format from command line if specified
	if cmd.Flags().Changed("output") {
		if err := config.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
		cfg.Output.Format = outputFormat
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	printer = output.NewPrinter(cmd.OutOrStdout(), format)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	client, err = tmdb.NewClient(cfg.TMDb.APIKey, logger, clientOptions(cfg.TMDb)...)
	if err != nil {
		return fmt.Errorf("failed to create TMDb client: %w", err)
	}

	return nil
}

// clientOptions translates the tmdb config section into client options
func clientOptions(c config.TMDbConfig) []tmdb.Option {
	opts := []tmdb.Option{
		tmdb.WithBaseURL(c.BaseURL),
		tmdb.WithLanguage(c.Language),
		tmdb.WithTimeout(c.Timeout),
		tmdb.WithRateLimit(c.RateLimit),
		tmdb.WithSubFetchConcurrency(c.SubFetchConcurrency),
	}
	if c.ReadToken != "" {
		opts = append(opts, tmdb.WithBearerToken(c.ReadToken))
	}
	if c.SessionID != "" {
		opts = append(opts, tmdb.WithSessionID(c.SessionID))
	}
	if c.IncludeAdult != nil {
		opts = append(opts, tmdb.WithIncludeAdult(*c.IncludeAdult))
	}
	return opts
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colour only when stderr is a terminal
	fd := os.Stderr.Fd()
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// addPagingFlags registers --page and --all on a paged command
func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page and merge the results")
}

// addFilterFlags registers --filter and --preset on a movie listing command
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the movies")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// requestedPage returns the page argument for a paged operation
func requestedPage() int {
	if allPages {
		return tmdb.AllPages
	}
	return page
}

// printEntity prints a fetched entity. A partially parsed entity is printed
// with a warning; any other error is returned.
func printEntity[T any](v *T, err error) error {
	if err != nil {
		if v == nil || !errors.Is(err, tmdb.ErrPartialParse) {
			return err
		}
		logger.Warn().Err(err).Msg("Response was only partially parsed")
	}
	return printer.Print(v)
}

// printFull prints a full-tier entity followed by its failed supplementary calls
func printFull[T any](v *T, report tmdb.SubFetchReport, err error) error {
	if err := printEntity(v, err); err != nil {
		return err
	}
	for _, r := range report.Failed() {
		logger.Warn().Str("subfetch", r.Name).Str("status", r.Status.String()).Err(r.Err).Msg("Supplementary call failed")
	}
	return printer.PrintReport(report)
}

// printPage prints a materialized page
func printPage[T any](p *tmdb.Page[T], err error) error {
	return printEntity(p, err)
}

// printMoviePage prints a page of movies after applying --filter or --preset
func printMoviePage(ctx context.Context, p *tmdb.Page[tmdb.MovieReduced], err error) error {
	if err != nil {
		if p == nil || !errors.Is(err, tmdb.ErrPartialParse) {
			return err
		}
		logger.Warn().Err(err).Msg("Some results were only partially parsed")
	}

	f, err := filters.Resolve(filterExpr, preset)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if f != nil {
		matches, err := f.Apply(ctx, p.Results)
		if matches == nil && err != nil {
			return err
		}
		if err != nil {
			logger.Warn().Err(err).Msg("Some movies could not be evaluated")
		}
		logger.Info().
			Str("filter", f.Expression()).
			Int("matched", len(matches)).
			Int("total", len(p.Results)).
			Msg("Filter applied")
		p.Results = matches
	}

	return printer.Print(p)
}
