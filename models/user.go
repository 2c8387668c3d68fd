package models

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// database on creation and immutable afterwards.
	ID int64 `json:"id"`

	// Username is the unique login identifier. Uniqueness is enforced by
	// the database; the value is immutable once created.
	Username string `json:"username"`

	// PasswordHash stores the opaque, salted argon2id hash of the user's
	// password. It MUST never contain the plaintext and is excluded from
	// every JSON representation; only the credential verifier reads it.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
