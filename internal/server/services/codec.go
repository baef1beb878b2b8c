package services

import (
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// FieldCipher is the subset of cryptox.Cipher the codec needs.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SecretFieldCodec converts the sensitive fields of a record between their
// in-memory plaintext form and their at-rest ciphertext form: cvv and
// password on cards, password on credentials. Protect runs before
// persistence, Reveal after retrieval. Both operate on copies and never
// mutate their argument.
type SecretFieldCodec struct {
	cipher FieldCipher
}

func NewSecretFieldCodec(cipher FieldCipher) *SecretFieldCodec {
	return &SecretFieldCodec{cipher: cipher}
}

// ProtectCard returns a copy of card with CVV and Password encrypted.
func (c *SecretFieldCodec) ProtectCard(card models.Card) (models.Card, error) {
	cvv, err := c.cipher.Encrypt(card.CVV)
	if err != nil {
		return models.Card{}, err
	}
	password, err := c.cipher.Encrypt(card.Password)
	if err != nil {
		return models.Card{}, err
	}
	card.CVV = cvv
	card.Password = password
	return card, nil
}

// RevealCard returns a copy of card with CVV and Password decrypted.
// Ciphertext that cannot be read back surfaces as an error; garbage is
// never passed on as plaintext.
func (c *SecretFieldCodec) RevealCard(card models.Card) (models.Card, error) {
	cvv, err := c.cipher.Decrypt(card.CVV)
	if err != nil {
		return models.Card{}, err
	}
	password, err := c.cipher.Decrypt(card.Password)
	if err != nil {
		return models.Card{}, err
	}
	card.CVV = cvv
	card.Password = password
	return card, nil
}

// ProtectCredential returns a copy of credential with Password encrypted.
func (c *SecretFieldCodec) ProtectCredential(credential models.Credential) (models.Credential, error) {
	password, err := c.cipher.Encrypt(credential.Password)
	if err != nil {
		return models.Credential{}, err
	}
	credential.Password = password
	return credential, nil
}

// RevealCredential returns a copy of credential with Password decrypted.
func (c *SecretFieldCodec) RevealCredential(credential models.Credential) (models.Credential, error) {
	password, err := c.cipher.Decrypt(credential.Password)
	if err != nil {
		return models.Credential{}, err
	}
	credential.Password = password
	return credential, nil
}
