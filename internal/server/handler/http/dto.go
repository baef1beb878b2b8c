package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// A single Validate instance caches struct metadata.
var validate = validator.New()

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type eraseRequest struct {
	Password string `json:"password" validate:"required"`
}

type noteRequest struct {
	Title   string `json:"title" validate:"required,max=50"`
	Content string `json:"content" validate:"required,max=1000"`
}

type cardRequest struct {
	Title          string `json:"title" validate:"required,max=50"`
	Name           string `json:"name" validate:"required"`
	Number         string `json:"number" validate:"required,credit_card"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	ExpirationDate string `json:"expirationDate" validate:"required,len=5"`
	Password       string `json:"password" validate:"required"`
	IsVirtual      bool   `json:"isVirtual"`
	Type           string `json:"type" validate:"required,oneof=credit debit both"`
}

type credentialRequest struct {
	Title    string `json:"title" validate:"required,max=50"`
	URL      string `json:"url" validate:"required,url"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// decodeValid reads the JSON body into dst and runs the validation tags.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("malformed json body")
	}
	return validate.Struct(dst)
}
