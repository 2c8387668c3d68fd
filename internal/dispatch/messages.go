package dispatch

// Message is the closed set of request variants the dispatcher executes, one
// per supported database operation. Each variant carries exactly the
// parameters its operation needs. A message is owned by the caller until it
// is handed to [Dispatcher.Submit]; the dispatcher does not retain it after
// producing a result.
//
// The marker method keeps the set closed: only types in this package can be
// submitted, mirroring a tagged union.
type Message interface {
	isMessage()
}

// FetchPosts requests a full scan of the posts table.
// Result: []models.Post ordered by insertion.
type FetchPosts struct{}

// FetchPost requests the single post with the given id.
// Result: models.Post, or store.ErrNotFound.
type FetchPost struct {
	PostID int64
}

// CreatePost requests insertion of a new, unpublished post.
// Result: models.Post with the server-assigned id and published default.
type CreatePost struct {
	Title string
	Body  string
}

// UpdatePost requests a targeted field set on the single matching post.
// Result: the post-update models.Post, or store.ErrNotFound.
type UpdatePost struct {
	PostID    int64
	Title     string
	Body      string
	Published bool
}

// DeletePost requests removal of the single matching post.
// Result: the deleted post's snapshot, or store.ErrNotFound.
type DeletePost struct {
	PostID int64
}

// CreateUser requests insertion of a new user account. PasswordHash must be
// the opaque credential hash, never the plaintext.
// Result: models.User with the server-assigned id.
type CreateUser struct {
	Username     string
	PasswordHash string
}

// FetchUserByUsername requests the account with the given username.
// Result: models.User including the stored hash, or store.ErrNotFound.
type FetchUserByUsername struct {
	Username string
}

func (FetchPosts) isMessage()          {}
func (FetchPost) isMessage()           {}
func (CreatePost) isMessage()          {}
func (UpdatePost) isMessage()          {}
func (DeletePost) isMessage()          {}
func (CreateUser) isMessage()          {}
func (FetchUserByUsername) isMessage() {}
