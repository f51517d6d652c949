package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	app, _, _, _ := setupTestServer(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var signup struct {
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, resp, &signup)
	require.NotEmpty(t, signup.Token)
	assert.Equal(t, "alice", signup.User.Username)

	// The issued token opens protected routes.
	resp = doRequest(t, app, http.MethodGet, "/api/feed/following", "Bearer "+signup.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)
	assert.NotEmpty(t, login.Token)
}

func TestSignup_Validation(t *testing.T) {
	app, _, _, _ := setupTestServer(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	app, _, _, _ := setupTestServer(t)

	body := map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	}
	resp := doRequest(t, app, http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	body["username"] = "alice2"
	resp = doRequest(t, app, http.MethodPost, "/api/auth/signup", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app, _, db, _ := setupTestServer(t)
	createTestUser(t, db, "alice", false)

	// Wrong password and unknown account are indistinguishable.
	resp := doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_RejectsBadTokens(t *testing.T) {
	app, _, _, _ := setupTestServer(t)

	for _, header := range []string{"", "Bearer not-a-jwt", "Basic abc", "Bearer"} {
		resp := doRequest(t, app, http.MethodGet, "/api/feed/following", header, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}
