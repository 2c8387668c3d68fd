// Package client provides a small typed API client for the go-post-board
// HTTP server, used by the cmd/client smoke tool and by integration tests.
package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-resty/resty/v2"
)

// Client wraps a resty.Client configured for one server instance. After a
// successful Login the bearer token is attached to subsequent requests.
type Client struct {
	http *resty.Client
}

// NewClient creates a client targeting the given base URL
// (e.g. "http://127.0.0.1:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// Register creates a new user account and returns its public representation.
func (c *Client) Register(ctx context.Context, username, password string) (models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&user).
		Post("/user")
	if err != nil {
		return models.User{}, fmt.Errorf("register request failed: %w", err)
	}
	if resp.IsError() {
		return models.User{}, fmt.Errorf("register failed: %s", resp.Status())
	}

	return user, nil
}

// Login authenticates with basic auth and stores the returned bearer token
// on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var token models.Token

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(username, password).
		SetResult(&token).
		Get("/auth")
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("login failed: %s", resp.Status())
	}

	c.http.SetAuthToken(token.SignedString)

	return token.SignedString, nil
}

// Posts fetches every post.
func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("fetch posts request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch posts failed: %s", resp.Status())
	}

	return posts, nil
}

// Post fetches a single post by id.
func (c *Client) Post(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&post).
		Get(fmt.Sprintf("/post/%d", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("fetch post request failed: %w", err)
	}
	if resp.IsError() {
		return models.Post{}, fmt.Errorf("fetch post failed: %s", resp.Status())
	}

	return post, nil
}

// CreatePost creates a new, unpublished post.
func (c *Client) CreatePost(ctx context.Context, title, body string) (models.Post, error) {
	var post models.Post

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"title": title, "body": body}).
		SetResult(&post).
		Post("/createPost")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request failed: %w", err)
	}
	if resp.IsError() {
		return models.Post{}, fmt.Errorf("create post failed: %s", resp.Status())
	}

	return post, nil
}

// UpdatePost updates a post. Requires a prior Login: the route is
// bearer-gated on the server.
func (c *Client) UpdatePost(ctx context.Context, postID int64, title, body string, published bool) (models.Post, error) {
	var post models.Post

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"title": title, "body": body, "published": published}).
		SetResult(&post).
		Put(fmt.Sprintf("/post/%d", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request failed: %w", err)
	}
	if resp.IsError() {
		return models.Post{}, fmt.Errorf("update post failed: %s", resp.Status())
	}

	return post, nil
}

// DeletePost deletes a post and returns its last-known snapshot.
func (c *Client) DeletePost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&post).
		Delete(fmt.Sprintf("/post/%d", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("delete post request failed: %w", err)
	}
	if resp.IsError() {
		return models.Post{}, fmt.Errorf("delete post failed: %s", resp.Status())
	}

	return post, nil
}
