package auth

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Aa1234567!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Aa1234567!" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !CheckPassword("Aa1234567!", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if CheckPassword("Aa1234567?", hash) {
		t.Fatalf("expected different password to fail verification")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for repeated calls")
	}
	if !CheckPassword("same password", h1) || !CheckPassword("same password", h2) {
		t.Fatalf("both hashes must verify the original password")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("whatever", "not-a-bcrypt-hash") {
		t.Fatalf("garbage hash must not verify")
	}
}
