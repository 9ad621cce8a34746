package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
}

var statsReaderCmd = &cobra.Command{
	Use:   "reader [email]",
	Short: "Show a reader's shelves and review activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().ReaderStats(commandContext(cmd), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch reader stats: %w", err)
		}

		color.New(color.Bold).Printf("📊 Reader stats for %s\n", args[0])
		printField("Books read", stats.TotalRead)
		printField("In progress", stats.InProgress)
		printField("Average rating", stats.AvgRating)
		printField("Reviews written", stats.TotalReviews)
		return nil
	},
}

var statsAdminCmd = &cobra.Command{
	Use:   "admin [email]",
	Short: "Show an author's catalog totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().AdminStats(commandContext(cmd), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch admin stats: %w", err)
		}

		color.New(color.Bold).Printf("📊 Dashboard for %s\n", args[0])
		printField("Books", stats.TotalBooks)
		printField("Users", stats.TotalUsers)
		printField("Categories", stats.TotalCategories)
		printField("Reviews", stats.TotalReviews)
		printField("Tutorials", stats.TotalTutorials)
		return nil
	},
}

func init() {
	statsCmd.AddCommand(statsReaderCmd)
	statsCmd.AddCommand(statsAdminCmd)
}
