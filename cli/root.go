package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var seedCatalog bool

var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "Console-driven library catalog manager",
	Long: `Librarian tracks books, authors, genres, users and loans for a single
session, entirely in memory. Running it starts an interactive prompt loop;
type 'help' there for the available commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		lib := library.New()
		if seedCatalog {
			if err := SeedSampleCatalog(lib); err != nil {
				Errorf("Could not seed the catalog: %v", err)
				os.Exit(1)
			}
			Infof("Sample catalog loaded (%d books).", len(lib.Books()))
		}
		NewSession(lib, os.Stdin).Run()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&seedCatalog, "seed", false, "Start with a sample catalog preloaded")
}
