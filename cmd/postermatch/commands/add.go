// ABOUTME: CLI command to add a movie to the catalog
// ABOUTME: Verifies the poster URL decodes before inserting the row
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	"github.com/postermatch/postermatch/internal/config"
	"github.com/postermatch/postermatch/internal/imaging"
	"github.com/postermatch/postermatch/internal/storage/postgres"
)

var (
	addGenre     string
	addSkipCheck bool
)

// NewAddCmd creates add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title> <poster-url>",
		Short: "Add a movie to the catalog",
		Long: `Add a movie to the catalog with its poster URL.

The poster is downloaded once up front to catch dead links early; pass
--skip-check to store the row without verifying.

Examples:
  postermatch add "Solaris" https://example.com/solaris.jpg --genre sci-fi
  postermatch add --skip-check "Stalker" https://example.com/stalker.jpg`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addGenre, "genre", "", "Genre label for the movie")
	cmd.Flags().BoolVar(&addSkipCheck, "skip-check", false, "Skip the poster download check")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Load .env for database credentials
	_ = godotenv.Load()

	title := args[0]
	posterURL := args[1]
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if posterURL == "" {
		return fmt.Errorf("poster URL must not be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !addSkipCheck {
		fetcher := imaging.NewFetcher(
			imaging.WithTimeout(cfg.FetchTimeout),
			imaging.WithMaxBytes(cfg.FetchMaxBytes),
			imaging.WithUserAgent(cfg.UserAgent),
		)
		if _, err := fetcher.Fetch(ctx, posterURL); err != nil {
			return fmt.Errorf("verifying poster: %w", err)
		}
	}

	db, err := postgres.Open(ctx, &cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}
	defer func() { _ = db.Close() }()

	id, err := postgres.NewMovieStore(db).Insert(ctx, title, addGenre, posterURL)
	if err != nil {
		return fmt.Errorf("adding movie: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Added movie %d: %s\n", id, title)
	}
	return nil
}
