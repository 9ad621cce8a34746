package command

// root.go defines the root command for the bookworm CLI and its global flags.

import (
	"context"
	"fmt"
	"os"
	"time"

	"bookworm/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	apiURL  string        // Global flag for API server URL
	timeout time.Duration // per-request timeout
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookworm",
	Short: "bookworm - BookWorm Command Line Interface",
	Long: `bookworm talks to the BookWorm API. Use it to:
- Shelve books in your reading library and move them between shelves
- List or remove library entries
- Show reader and author dashboards

Use "bookworm [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("BOOKWORM_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:3030"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(statsCmd)
}

func newClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL, timeout)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printSuccess(format string, args ...interface{}) {
	color.Green("✔ "+format, args...)
}

func printField(label string, value interface{}) {
	fmt.Printf("   %s %v\n", color.New(color.FgHiBlack).Sprint(label+":"), value)
}
