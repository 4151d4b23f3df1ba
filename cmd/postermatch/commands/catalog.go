// ABOUTME: CLI command to list catalog rows without fetching covers
// ABOUTME: Shows id, title, genre, and poster URL in table or JSON form
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	"github.com/postermatch/postermatch/internal/config"
	"github.com/postermatch/postermatch/internal/storage/postgres"
)

// NewCatalogCmd creates catalog command
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog movies",
		Long: `List all movies in the catalog without downloading posters.

Examples:
  postermatch catalog
  postermatch catalog --format json`,
		Args: cobra.NoArgs,
		RunE: runCatalog,
	}

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	// Load .env for database credentials
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := postgres.Open(ctx, &cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}
	defer func() { _ = db.Close() }()

	movies, err := postgres.NewMovieStore(db).ListMovies(ctx)
	if err != nil {
		return fmt.Errorf("listing movies: %w", err)
	}

	if len(movies) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(movies, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\tGENRE\tPOSTER\n")
	fmt.Fprintf(w, "--\t-----\t-----\t------\n")
	for _, m := range movies {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			m.ID,
			truncate(m.Title, 40),
			truncate(m.Genre, 20),
			truncate(m.PosterURL, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d movie(s) in catalog\n", len(movies))
	}
	return nil
}
