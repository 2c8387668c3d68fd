// Command client is a smoke tool for a running go-post-board server.
// It registers a user, logs in, and runs the post CRUD cycle end to end,
// printing each response.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-post-board/internal/client"
)

func main() {
	addr := flag.String("a", "http://127.0.0.1:8080", "server base URL")
	username := flag.String("u", "smoke", "username to register and log in with")
	password := flag.String("p", "smoke-password", "password")
	flag.Parse()

	ctx := context.Background()
	api := client.NewClient(*addr)

	user, err := api.Register(ctx, *username, *password)
	if err != nil {
		fail("register", err)
	}
	fmt.Printf("registered user %d (%s)\n", user.ID, user.Username)

	if _, err := api.Login(ctx, *username, *password); err != nil {
		fail("login", err)
	}
	fmt.Println("logged in, token received")

	post, err := api.CreatePost(ctx, "smoke test", "created by cmd/client")
	if err != nil {
		fail("create post", err)
	}
	fmt.Printf("created post %d (published=%v)\n", post.ID, post.Published)

	updated, err := api.UpdatePost(ctx, post.ID, "smoke test", "updated by cmd/client", true)
	if err != nil {
		fail("update post", err)
	}
	fmt.Printf("updated post %d (published=%v)\n", updated.ID, updated.Published)

	deleted, err := api.DeletePost(ctx, post.ID)
	if err != nil {
		fail("delete post", err)
	}
	fmt.Printf("deleted post %d (%q)\n", deleted.ID, deleted.Title)
}

func fail(op string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	os.Exit(1)
}
