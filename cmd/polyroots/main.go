// Command polyroots is the command-line front end for polyroot.
//
// Usage:
//
//	polyroots solve 3:1 2:-6 1:11 0:-6
//	polyroots solve --roots 1,2,3
//	polyroots eval 2 2:1 0:-4
//	polyroots diff 3:1 1:-1
//	polyroots serve --port 8080
//	polyroots batch < polys.jsonl
//	polyroots config init
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/polyroot"
	"github.com/njchilds90/polyroot/internal/config"
	"github.com/njchilds90/polyroot/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "polyroots",
	Short: "Find the real roots of a polynomial",
	Long: `polyroots finds the real roots of a single-variable polynomial.

Polynomials are given as exponent:coefficient terms, for example
"3:1 2:-6 1:11 0:-6" for x^3 - 6x^2 + 11x - 6.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "polyroots.yaml", "Path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(solveCmd, evalCmd, diffCmd, serveCmd, batchCmd, configCmd)
}

func newFinder() *polyroot.Finder {
	return polyroot.NewFinder(cfg.SolverOptions(), logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
