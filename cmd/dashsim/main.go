// dashsim runs the movement core headless from a scripted input timeline.
//
// Usage:
//
//	dashsim run [flags]        - Simulate a level and print a run summary
//	dashsim level <name>       - Describe a level's geometry
//	dashsim levels             - List the bundled levels
//
// Global flags:
//
//	--config <path>  - YAML overlay on the built-in defaults
//	--debug          - Log every dash transition and event
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/dashcore/config"
)

var (
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dashsim",
	Short:         "Headless simulator for the dash movement core",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML overlay")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dashsim",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig() (*config.Config, error) {
	return config.Load(flagConfig)
}
