package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAuthor(t *testing.T) {
	app, _, db, _ := setupTestServer(t)
	follower := createTestUser(t, db, "alice", false)
	createTestUser(t, db, "bob", false)
	auth := bearerToken(t, follower.ID)

	resp := doRequest(t, app, http.MethodGet, "/api/users/bob/follow", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status map[string]bool
	decodeBody(t, resp, &status)
	assert.False(t, status["following"])

	resp = doRequest(t, app, http.MethodPost, "/api/users/bob/follow", auth, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Repeating the follow succeeds and leaves a single edge behind.
	resp = doRequest(t, app, http.MethodPost, "/api/users/bob/follow", auth, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	resp = doRequest(t, app, http.MethodGet, "/api/users/bob/follow", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.True(t, status["following"])
}

func TestFollowAuthor_Self(t *testing.T) {
	app, _, db, _ := setupTestServer(t)
	user := createTestUser(t, db, "alice", false)

	resp := doRequest(t, app, http.MethodPost, "/api/users/alice/follow",
		bearerToken(t, user.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFollowAuthor_Unknown(t *testing.T) {
	app, _, db, _ := setupTestServer(t)
	user := createTestUser(t, db, "alice", false)

	resp := doRequest(t, app, http.MethodPost, "/api/users/ghost/follow",
		bearerToken(t, user.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnfollowAuthor_Absent(t *testing.T) {
	app, _, db, _ := setupTestServer(t)
	user := createTestUser(t, db, "alice", false)
	createTestUser(t, db, "bob", false)

	// Unfollowing without an edge is a quiet no-op.
	resp := doRequest(t, app, http.MethodDelete, "/api/users/bob/follow",
		bearerToken(t, user.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
