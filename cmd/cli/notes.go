package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/avolodin/notekeep/internal/model"
)

var (
	noteHeading  string
	noteContent  string
	noteFavorite bool

	listFavorites bool
	listSearch    string
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		notes, err := api().ListNotes(ctx)
		if err != nil {
			fatal("list notes", err)
		}

		filtered := notes[:0:0]
		for _, n := range notes {
			if listFavorites && !n.Favorite {
				continue
			}
			if listSearch != "" && !matchesSearch(n, listSearch) {
				continue
			}
			filtered = append(filtered, n)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(filtered); err != nil {
				fatal("encode", err)
			}
			return
		}
		for _, n := range filtered {
			star := " "
			if n.Favorite {
				star = "*"
			}
			fmt.Printf("%s %s %s\n", n.ID, star, n.Heading)
		}
	},
}

// matchesSearch reports whether q occurs in the heading or content,
// case-insensitively.
func matchesSearch(n model.Note, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(n.Heading), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		n, err := api().CreateNote(ctx, noteHeading, noteContent, noteFavorite)
		if err != nil {
			fatal("add note", err)
		}
		fmt.Println(n.ID)
	},
}

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		n, err := api().GetNote(ctx, args[0])
		if err != nil {
			fatal("get note", err)
		}
		star := ""
		if n.Favorite {
			star = " *"
		}
		fmt.Printf("%s%s\n\n%s\n", n.Heading, star, n.Content)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a note's heading and/or content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		var upd model.NoteUpdate
		if cmd.Flags().Changed("heading") {
			upd.Heading = &noteHeading
		}
		if cmd.Flags().Changed("content") {
			upd.Content = &noteContent
		}
		if upd.Heading == nil && upd.Content == nil {
			fmt.Fprintln(os.Stderr, "nothing to change: pass --heading and/or --content")
			os.Exit(1)
		}

		n, err := api().UpdateNote(ctx, args[0], upd)
		if err != nil {
			fatal("edit note", err)
		}
		fmt.Printf("updated %s\n", n.ID)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		if err := api().DeleteNote(ctx, args[0]); err != nil {
			fatal("delete note", err)
		}
		fmt.Printf("deleted %s\n", args[0])
	},
}

var favCmd = &cobra.Command{
	Use:   "fav [id]",
	Short: "Toggle a note's favorite flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		c := api()
		n, err := c.GetNote(ctx, args[0])
		if err != nil {
			fatal("fav", err)
		}
		next := !n.Favorite
		// Only the server-confirmed state is reported; a failed persist
		// leaves nothing to roll back here.
		updated, err := c.UpdateNote(ctx, args[0], model.NoteUpdate{Favorite: &next})
		if err != nil {
			fatal("fav", err)
		}
		if updated.Favorite {
			fmt.Printf("%s is now a favorite\n", updated.ID)
		} else {
			fmt.Printf("%s is no longer a favorite\n", updated.ID)
		}
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copy a note's content to the clipboard",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		n, err := api().GetNote(ctx, args[0])
		if err != nil {
			fatal("copy", err)
		}
		if err := clipboard.WriteAll(n.Content); err != nil {
			fatal("clipboard", err)
		}
		fmt.Printf("copied %s\n", n.ID)
	},
}

func init() {
	addCmd.Flags().StringVar(&noteHeading, "heading", "", "note heading")
	addCmd.Flags().StringVar(&noteContent, "content", "", "note content")
	addCmd.Flags().BoolVar(&noteFavorite, "favorite", false, "mark as favorite")
	_ = addCmd.MarkFlagRequired("heading")
	_ = addCmd.MarkFlagRequired("content")

	editCmd.Flags().StringVar(&noteHeading, "heading", "", "new heading")
	editCmd.Flags().StringVar(&noteContent, "content", "", "new content")

	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "show only favorites")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by heading/content substring")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(listCmd, addCmd, getCmd, editCmd, rmCmd, favCmd, copyCmd)
}
