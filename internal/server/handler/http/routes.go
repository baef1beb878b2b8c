package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lucasnerism/drivenpass/internal/logging"
)

// RouterConfig carries everything NewRouter needs to build the routing tree.
type RouterConfig struct {
	AllowedOrigins    []string
	AccountHandler    *AccountHandler
	NoteHandler       *NoteHandler
	CardHandler       *CardHandler
	CredentialHandler *CredentialHandler
	Auth              *BearerAuth
	Logger            logging.Logger
}

// NewRouter builds the chi multiplexer.
//
// Routes:
//
//	GET  /health          → liveness probe
//	POST /sign-up         → account creation (201)
//	POST /sign-in         → credential check, bearer token (200)
//	POST /erase           → full account erasure (authenticated)
//	/notes, /cards, /credentials → authenticated CRUD
//	    POST /          (201)
//	    GET  /          list
//	    GET  /{id}
//	    PUT  /{id}
//	    DELETE /{id}
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogging(cfg.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", cfg.AccountHandler.Health)
	r.Post("/sign-up", cfg.AccountHandler.SignUp)
	r.Post("/sign-in", cfg.AccountHandler.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(cfg.Auth.Handler)

		r.Post("/erase", cfg.AccountHandler.Erase)

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", cfg.NoteHandler.Create)
			r.Get("/", cfg.NoteHandler.FindAll)
			r.Get("/{id}", cfg.NoteHandler.FindOne)
			r.Put("/{id}", cfg.NoteHandler.Update)
			r.Delete("/{id}", cfg.NoteHandler.Remove)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Post("/", cfg.CardHandler.Create)
			r.Get("/", cfg.CardHandler.FindAll)
			r.Get("/{id}", cfg.CardHandler.FindOne)
			r.Put("/{id}", cfg.CardHandler.Update)
			r.Delete("/{id}", cfg.CardHandler.Remove)
		})

		r.Route("/credentials", func(r chi.Router) {
			r.Post("/", cfg.CredentialHandler.Create)
			r.Get("/", cfg.CredentialHandler.FindAll)
			r.Get("/{id}", cfg.CredentialHandler.FindOne)
			r.Put("/{id}", cfg.CredentialHandler.Update)
			r.Delete("/{id}", cfg.CredentialHandler.Remove)
		})
	})

	return r
}
