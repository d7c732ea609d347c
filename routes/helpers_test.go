package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sulavmhrzn/BlogIt-API/app/mail"
	"github.com/sulavmhrzn/BlogIt-API/app/middleware"
	"github.com/sulavmhrzn/BlogIt-API/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testMailFrom = "admin@blogit.local"
)

var (
	normalUser = models.User{ID: "u1", Username: "test", Email: "test@mail.com"}
	otherUser  = models.User{ID: "u2", Username: "other", Email: "other@mail.com"}
	staffUser  = models.User{ID: "u3", Username: "staff", Email: "staff@mail.com", IsStaff: true}
)

func setupTestServer(t *testing.T) (*mux.Router, *mail.Recorder) {
	recorder := mail.NewRecorder()
	return setupTestServerWithMailer(t, recorder), recorder
}

func setupTestServerWithMailer(t *testing.T, mailer mail.Mailer) *mux.Router {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return SetupRoutes(Options{
		DB:        db,
		Mailer:    mailer,
		MailFrom:  testMailFrom,
		JWTSecret: testSecret,
	})
}

// failingMailer always reports a malformed message.
type failingMailer struct{}

func (failingMailer) Send(mail.Message) error { return mail.ErrBadMessage }

func signToken(t *testing.T, user models.User) string {
	t.Helper()

	claims := middleware.Claims{
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// doRequest performs a request against the router. An empty token means
// an anonymous call; a non-nil body is sent as JSON.
func doRequest(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// createPost creates a post through the API and returns its response body.
func createPost(t *testing.T, router *mux.Router, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/post", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post map[string]interface{}
	decodeBody(t, rec, &post)
	return post
}
