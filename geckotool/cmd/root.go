// Package cmd provides the command-line interface for working with a
// simulated device: resolving clock configurations, tracing register
// activity, and serving the inspector.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use: "geckotool",
	Short: "Geckotool runs the chip's drivers against a simulated device " +
		"for inspection and tracing.",
	Long: `Geckotool runs the chip's drivers against a simulated device. ` +
		`It can resolve a requested clock configuration and print the ` +
		`resulting tree, record the register accesses of a driver sequence ` +
		`to a SQLite database, and serve a live inspector over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can pre-set GECKOTOOL_* defaults; a missing file is
	// fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// envDefault returns the value of an environment variable or a fallback.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
