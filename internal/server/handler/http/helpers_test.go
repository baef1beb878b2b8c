package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/auth"
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

var testJWTSecret = []byte("handler-test-secret")

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

type fakeAccountService struct {
	signUpFn  func(ctx context.Context, email, password string) (*models.User, error)
	signInFn  func(ctx context.Context, email, password string) (string, error)
	getByIDFn func(ctx context.Context, id int64) (*models.User, error)
	eraseFn   func(ctx context.Context, userID int64, password string) error
}

func (f *fakeAccountService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	return f.signUpFn(ctx, email, password)
}

func (f *fakeAccountService) SignIn(ctx context.Context, email, password string) (string, error) {
	return f.signInFn(ctx, email, password)
}

// GetByID defaults to "the user exists" so the auth middleware lets valid
// tokens through unless a test overrides it.
func (f *fakeAccountService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn == nil {
		return &models.User{ID: id, Email: "john@example.com"}, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeAccountService) Erase(ctx context.Context, userID int64, password string) error {
	return f.eraseFn(ctx, userID, password)
}

type fakeNoteService struct {
	createFn  func(ctx context.Context, note *models.Note) (*models.Note, error)
	findAllFn func(ctx context.Context, userID int64) ([]models.Note, error)
	findOneFn func(ctx context.Context, id, userID int64) (*models.Note, error)
	updateFn  func(ctx context.Context, id, userID int64, note *models.Note) (*models.Note, error)
	removeFn  func(ctx context.Context, id, userID int64) error
}

func (f *fakeNoteService) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	return f.createFn(ctx, note)
}

func (f *fakeNoteService) FindAll(ctx context.Context, userID int64) ([]models.Note, error) {
	return f.findAllFn(ctx, userID)
}

func (f *fakeNoteService) FindOne(ctx context.Context, id, userID int64) (*models.Note, error) {
	return f.findOneFn(ctx, id, userID)
}

func (f *fakeNoteService) Update(ctx context.Context, id, userID int64, note *models.Note) (*models.Note, error) {
	return f.updateFn(ctx, id, userID, note)
}

func (f *fakeNoteService) Remove(ctx context.Context, id, userID int64) error {
	return f.removeFn(ctx, id, userID)
}

type fakeCardService struct {
	createFn  func(ctx context.Context, card *models.Card) (*models.Card, error)
	findAllFn func(ctx context.Context, userID int64) ([]models.Card, error)
	findOneFn func(ctx context.Context, id, userID int64) (*models.Card, error)
	updateFn  func(ctx context.Context, id, userID int64, card *models.Card) (*models.Card, error)
	removeFn  func(ctx context.Context, id, userID int64) error
}

func (f *fakeCardService) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	return f.createFn(ctx, card)
}

func (f *fakeCardService) FindAll(ctx context.Context, userID int64) ([]models.Card, error) {
	return f.findAllFn(ctx, userID)
}

func (f *fakeCardService) FindOne(ctx context.Context, id, userID int64) (*models.Card, error) {
	return f.findOneFn(ctx, id, userID)
}

func (f *fakeCardService) Update(ctx context.Context, id, userID int64, card *models.Card) (*models.Card, error) {
	return f.updateFn(ctx, id, userID, card)
}

func (f *fakeCardService) Remove(ctx context.Context, id, userID int64) error {
	return f.removeFn(ctx, id, userID)
}

type fakeCredentialService struct {
	createFn  func(ctx context.Context, credential *models.Credential) (*models.Credential, error)
	findAllFn func(ctx context.Context, userID int64) ([]models.Credential, error)
	findOneFn func(ctx context.Context, id, userID int64) (*models.Credential, error)
	updateFn  func(ctx context.Context, id, userID int64, credential *models.Credential) (*models.Credential, error)
	removeFn  func(ctx context.Context, id, userID int64) error
}

func (f *fakeCredentialService) Create(ctx context.Context, credential *models.Credential) (*models.Credential, error) {
	return f.createFn(ctx, credential)
}

func (f *fakeCredentialService) FindAll(ctx context.Context, userID int64) ([]models.Credential, error) {
	return f.findAllFn(ctx, userID)
}

func (f *fakeCredentialService) FindOne(ctx context.Context, id, userID int64) (*models.Credential, error) {
	return f.findOneFn(ctx, id, userID)
}

func (f *fakeCredentialService) Update(ctx context.Context, id, userID int64, credential *models.Credential) (*models.Credential, error) {
	return f.updateFn(ctx, id, userID, credential)
}

func (f *fakeCredentialService) Remove(ctx context.Context, id, userID int64) error {
	return f.removeFn(ctx, id, userID)
}

type testEnv struct {
	accounts    *fakeAccountService
	notes       *fakeNoteService
	cards       *fakeCardService
	credentials *fakeCredentialService
	router      http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		accounts:    &fakeAccountService{},
		notes:       &fakeNoteService{},
		cards:       &fakeCardService{},
		credentials: &fakeCredentialService{},
	}
	log := testLogger()
	env.router = NewRouter(RouterConfig{
		AllowedOrigins:    []string{"*"},
		AccountHandler:    NewAccountHandler(env.accounts, log),
		NoteHandler:       NewNoteHandler(env.notes, log),
		CardHandler:       NewCardHandler(env.cards, log),
		CredentialHandler: NewCredentialHandler(env.credentials, log),
		Auth:              NewBearerAuth(env.accounts, testJWTSecret, log),
		Logger:            log,
	})
	return env
}

// bearerFor mints a valid token for the given user id.
func bearerFor(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router http.Handler, method, target, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newRawRequest(t *testing.T, method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
