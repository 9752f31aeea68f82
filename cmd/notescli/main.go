// notescli is a small terminal client for the notes API. It logs in, keeps
// the fetched list in a local store and renders list/detail views.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"quicknotes-be/pkg/notesclient"

	"github.com/fatih/color"
)

func main() {
	baseURL := flag.String("base", "http://localhost:3000", "API base URL")
	email := flag.String("email", os.Getenv("NOTES_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("NOTES_PASSWORD"), "account password")
	search := flag.String("search", "", "filter notes by substring")
	title := flag.String("title", "", "note title (create/update)")
	content := flag.String("content", "", "note content (create/update)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("usage: notescli [flags] list|get <id>|create|update <id>|delete <id>")
		os.Exit(2)
	}

	ctx := context.Background()
	client := notesclient.NewClient(*baseURL, "")
	if err := client.Login(ctx, *email, *password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	store := notesclient.NewStore()

	switch args[0] {
	case "list":
		notes, err := client.List(ctx, *search)
		if err != nil {
			log.Fatalf("list failed: %v", err)
		}
		store.SetAll(notes)
		renderList(store)

	case "get":
		requireID(args)
		note, err := client.Get(ctx, args[1])
		if err != nil {
			log.Fatalf("get failed: %v", err)
		}
		renderNote(note)

	case "create":
		note, err := client.Create(ctx, *title, *content)
		if err != nil {
			log.Fatalf("create failed: %v", err)
		}
		store.Add(*note)
		color.Green("Created %s", note.ID)
		renderNote(note)

	case "update":
		requireID(args)
		var t, c *string
		if *title != "" {
			t = title
		}
		if *content != "" {
			c = content
		}
		note, err := client.Update(ctx, args[1], t, c)
		if err != nil {
			log.Fatalf("update failed: %v", err)
		}
		store.ReplaceByID(*note)
		color.Green("Updated %s", note.ID)
		renderNote(note)

	case "delete":
		requireID(args)
		if err := client.Delete(ctx, args[1]); err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		store.RemoveByID(args[1])
		color.Green("Deleted %s", args[1])

	default:
		log.Fatalf("unknown command: %s", args[0])
	}
}

func requireID(args []string) {
	if len(args) < 2 {
		log.Fatal("missing note id")
	}
}

func renderList(store *notesclient.Store) {
	notes := store.Notes()
	if len(notes) == 0 {
		fmt.Println("(no notes)")
		return
	}
	bold := color.New(color.Bold)
	for _, n := range notes {
		bold.Printf("%s  %s\n", n.ID, n.Title)
		fmt.Printf("    updated %s\n", n.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func renderNote(n *notesclient.Note) {
	color.New(color.Bold).Println(n.Title)
	fmt.Println(strings.Repeat("-", len(n.Title)))
	fmt.Println(n.Content)
	fmt.Printf("\ncreated %s, updated %s\n",
		n.CreatedAt.Format("2006-01-02 15:04"),
		n.UpdatedAt.Format("2006-01-02 15:04"))
}
