// Package models defines the persisted entities of the vault.
package models

// User is a vault account. PasswordHash is a bcrypt hash and never leaves
// the server.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}
