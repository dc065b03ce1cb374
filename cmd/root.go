package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/nikogura/portfolio-prioritizer/pkg/logging"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio-prioritizer",
	Short: "Score, rank and staff a portfolio of projects",
	Long: `portfolio-prioritizer scores every project in a portfolio against seven criteria
(cost, benefit, complexity, completion, duration, time to end date and business
criticality), ranks the projects by total score and works out how many web, mobile
and ML developers the highest priority projects need.

Input is a CSV export of the portfolio, either a local file or an http(s) URL.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(getVerbose())
	},
}

// Execute runs the root command. Interrupts cancel the running command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.portfolio-prioritizer/config.json)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
