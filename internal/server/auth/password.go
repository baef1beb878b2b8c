package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost factor the vault has always hashed with.
// Changing it only affects newly created hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of password. The same password
// hashes to a different value on every call.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A mismatch is a plain false, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
