package models

// Credential is a stored website login. Password is plaintext in memory and
// ciphertext at rest.
type Credential struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	UserID   int64  `json:"userId"`
}
