// Package cryptox implements the reversible encryption applied to sensitive
// record fields (card cvv/password, credential password) before they reach
// the database. It is AES-256-GCM keyed by a single server-wide secret.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/lucasnerism/drivenpass/internal/common"
)

// Cipher encrypts and decrypts short string values. The key is derived once
// from the configured secret; the AEAD is precalculated and safe for
// concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives a 32-byte AES key from secret (SHA-256) and returns a
// ready-to-use Cipher. The secret comes from process configuration and is
// required; key rotation is not supported.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("cryptox: encryption secret is required")
	}

	sum := sha256.Sum256([]byte(secret))
	key := sum[:]
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: cipher init: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: gcm init: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns
// base64url(nonce || ciphertext). The same plaintext produces a different
// ciphertext on every call.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Input that was not produced by this cipher and
// key (malformed encoding, truncated data, failed auth tag) yields
// common.ErrDecryptionFailed, never garbage plaintext.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	data, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad encoding", common.ErrDecryptionFailed)
	}

	ns := c.aead.NonceSize()
	if len(data) < ns {
		return "", fmt.Errorf("%w: ciphertext too short", common.ErrDecryptionFailed)
	}

	nonce, sealed := data[:ns], data[ns:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: integrity check", common.ErrDecryptionFailed)
	}

	return string(plaintext), nil
}
