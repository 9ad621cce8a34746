package command

import (
	"fmt"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage your reading library",
	Long:  `Add, re-shelve, remove, and list books in your personal library`,
}

var addRequest dto.AddToLibraryRequest

var libraryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to a shelf, or move it if it is already in your library",
	Example: `  bookworm library add --book-id 652f... --email reader@example.com --shelf "Currently Reading" \
    --title "Dune" --author "Frank Herbert" --author-email author@example.com --total-pages 412`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().AddToLibrary(commandContext(cmd), addRequest)
		if err != nil {
			return fmt.Errorf("failed to add book to library: %w", err)
		}

		if result.UpsertedCount > 0 {
			printSuccess("Added %q to %s (entry %s)", addRequest.Title, addRequest.Shelf, result.UpsertedID)
			return nil
		}
		printSuccess("Moved %q to %s", addRequest.Title, addRequest.Shelf)
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list [email]",
	Short: "List every book in a user's library, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := newClient().GetLibrary(commandContext(cmd), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch library: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("📚 Your library is empty")
			return nil
		}

		color.New(color.Bold).Printf("📚 Library of %s (%d books)\n", args[0], len(entries))
		fmt.Println("─────────────────────────────────────────────────────────")
		for i, e := range entries {
			fmt.Printf("%d. %s ", i+1, e.Title)
			shelfColor(e.Shelf).Printf("[%s]\n", e.Shelf)
			printField("Author", e.Author)
			printField("Progress", fmt.Sprintf("%d/%d", e.Progress, e.TotalPages))
			printField("Added", e.AddedAt.Local().Format("2006-01-02 15:04"))
			printField("Entry", e.ID)
			fmt.Println()
		}
		return nil
	},
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove [entry_id]",
	Short: "Remove one entry from a library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().RemoveFromLibrary(commandContext(cmd), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}

		if result.DeletedCount == 0 {
			color.Yellow("No entry with id %s, nothing removed", args[0])
			return nil
		}
		printSuccess("Removed entry %s", args[0])
		return nil
	},
}

func shelfColor(shelf string) *color.Color {
	switch shelf {
	case models.ShelfRead:
		return color.New(color.FgGreen)
	case models.ShelfCurrentlyReading:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgYellow)
	}
}

func init() {
	f := libraryAddCmd.Flags()
	f.StringVar(&addRequest.BookID, "book-id", "", "book id")
	f.StringVar(&addRequest.UserEmail, "email", "", "reader email")
	f.StringVar(&addRequest.Shelf, "shelf", models.ShelfWantToRead, `shelf name ("Want to Read", "Currently Reading", "Read")`)
	f.StringVar(&addRequest.Title, "title", "", "book title")
	f.StringVar(&addRequest.Image, "image", "", "cover image URL")
	f.StringVar(&addRequest.Author, "author", "", "author name")
	f.StringVar(&addRequest.AuthorEmail, "author-email", "", "author email")
	f.IntVar(&addRequest.TotalPages, "total-pages", 0, "number of pages")
	_ = libraryAddCmd.MarkFlagRequired("book-id")
	_ = libraryAddCmd.MarkFlagRequired("email")

	libraryCmd.AddCommand(libraryAddCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
}
