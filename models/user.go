package models

// User's Password field holds the bcrypt hash, never the plaintext, and
// is excluded from JSON output.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
