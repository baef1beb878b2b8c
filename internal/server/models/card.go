package models

// CardType classifies a payment card.
type CardType string

const (
	CardTypeCredit CardType = "credit"
	CardTypeDebit  CardType = "debit"
	CardTypeBoth   CardType = "both"
)

// Card is a stored payment card. CVV and Password are plaintext in memory
// and ciphertext at rest; the services layer converts between the two.
type Card struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Name           string   `json:"name"`
	Number         string   `json:"number"`
	CVV            string   `json:"cvv"`
	ExpirationDate string   `json:"expirationDate"`
	Password       string   `json:"password"`
	IsVirtual      bool     `json:"isVirtual"`
	Type           CardType `json:"type"`
	UserID         int64    `json:"userId"`
}
