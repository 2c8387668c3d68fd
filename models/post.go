package models

// Post is a flat blog entry resource. It has no relationship to User.
type Post struct {
	// ID is assigned by the database on creation and is immutable afterwards.
	ID int64 `json:"id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Body is the post content.
	Body string `json:"body"`

	// Published reports whether the post is visible. New posts are stored
	// unpublished; the database default is round-tripped back to the caller.
	Published bool `json:"published"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
