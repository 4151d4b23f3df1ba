// ABOUTME: Root CLI command with global flags shared by all subcommands
// ABOUTME: Wires up recommend, catalog, add, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

const banner = `
██████╗  ██████╗ ███████╗████████╗███████╗██████╗ ███╗   ███╗ █████╗ ████████╗ ██████╗██╗  ██╗
██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗████╗ ████║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
██████╔╝██║   ██║███████╗   ██║   █████╗  ██████╔╝██╔████╔██║███████║   ██║   ██║     ███████║
██╔═══╝ ██║   ██║╚════██║   ██║   ██╔══╝  ██╔══██╗██║╚██╔╝██║██╔══██║   ██║   ██║     ██╔══██║
██║     ╚██████╔╝███████║   ██║   ███████╗██║  ██║██║ ╚═╝ ██║██║  ██║   ██║   ╚██████╗██║  ██║
╚═╝      ╚═════╝ ╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝
`

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with global flags
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postermatch",
		Short: "Recommend movies by poster color similarity",
		Long: banner + `
Postermatch recommends movies whose posters look like yours.

It loads the movie catalog from Postgres, fetches every poster concurrently,
reduces each one to its mean RGB color, and ranks the catalog by cosine
distance from your poster's mean color.

Examples:
  postermatch recommend
  postermatch recommend --poster https://example.com/poster.jpg --limit 10
  postermatch catalog
  postermatch add "Solaris" https://example.com/solaris.jpg --genre sci-fi`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, or json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
