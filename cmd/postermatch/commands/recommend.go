// ABOUTME: CLI command to recommend movies for a user-supplied poster
// ABOUTME: Prompts for title and poster URL, ranks the catalog, prints matches
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	"github.com/postermatch/postermatch/internal/catalog"
	"github.com/postermatch/postermatch/internal/config"
	"github.com/postermatch/postermatch/internal/imaging"
	"github.com/postermatch/postermatch/internal/models"
	"github.com/postermatch/postermatch/internal/ranking"
	"github.com/postermatch/postermatch/internal/storage/postgres"
)

var (
	recommendTitle  string
	recommendPoster string
	recommendLimit  int
)

// NewRecommendCmd creates recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend movies matching a poster",
		Long: `Recommend catalog movies whose posters are closest in mean color
to a poster you supply.

Prompts for a movie title and poster URL when the flags are not given.
Catalog posters that fail to download are skipped, but the command fails
when your own poster cannot be loaded.

Examples:
  postermatch recommend
  postermatch recommend --title "Solaris" --poster https://example.com/solaris.jpg
  postermatch recommend --limit 10 --format json --poster https://example.com/p.png`,
		Args: cobra.NoArgs,
		RunE: runRecommend,
	}

	cmd.Flags().StringVar(&recommendTitle, "title", "", "Title of the movie the poster belongs to")
	cmd.Flags().StringVar(&recommendPoster, "poster", "", "URL of the poster image to match against")
	cmd.Flags().IntVar(&recommendLimit, "limit", ranking.DefaultTopN, "Maximum recommendations to return")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	// Load .env for database credentials
	_ = godotenv.Load()

	if err := validatePositiveInt(recommendLimit, "limit"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	title := recommendTitle
	posterURL := recommendPoster
	if title == "" {
		if title, err = promptLine(cmd, "Movie title: "); err != nil {
			return err
		}
	}
	if posterURL == "" {
		if posterURL, err = promptLine(cmd, "Poster URL: "); err != nil {
			return err
		}
	}
	if posterURL == "" {
		return fmt.Errorf("no poster URL provided")
	}

	db, err := postgres.Open(ctx, &cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}
	defer func() { _ = db.Close() }()

	fetcher := imaging.NewFetcher(
		imaging.WithTimeout(cfg.FetchTimeout),
		imaging.WithMaxBytes(cfg.FetchMaxBytes),
		imaging.WithUserAgent(cfg.UserAgent),
	)

	loader := catalog.NewLoader(postgres.NewMovieStore(db), fetcher, cfg.FetchConcurrency)
	movies := loader.Load(ctx)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d catalog entries\n", len(movies))
	}

	// The query entry goes through the same fetch+normalize pipeline as the
	// catalog, but its failure is fatal: without a query vector there is
	// nothing to compare.
	queryImg, err := fetcher.Fetch(ctx, posterURL)
	if err != nil {
		return fmt.Errorf("loading query poster: %w", err)
	}
	query := models.Movie{
		ID:        models.QueryMovieID,
		Title:     title,
		Genre:     "N/A",
		PosterURL: posterURL,
		Cover:     imaging.Normalize(queryImg),
	}
	queryVec := imaging.MeanColor(query.Cover)
	if queryVec.IsZero() {
		return fmt.Errorf("query poster %s produced no usable image", posterURL)
	}

	results := ranking.Recommend(queryVec, movies, recommendLimit)
	return printResults(cmd, results)
}

// promptLine writes prompt and reads one line from the command's stdin
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("no input provided")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func printResults(cmd *cobra.Command, results []models.RankedResult) error {
	if len(results) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No recommendations found")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DISTANCE\tTITLE\tGENRE\tPOSTER\n")
	fmt.Fprintf(w, "--------\t-----\t-----\t------\n")
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%s\t%s\t%s\n",
			r.Distance,
			truncate(r.Movie.Title, 40),
			truncate(r.Movie.Genre, 20),
			truncate(r.Movie.PosterURL, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d recommendation(s)\n", len(results))
	}
	return nil
}
