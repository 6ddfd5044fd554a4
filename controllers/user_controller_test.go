package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constella-app/api-go/models"
)

func TestListUsersPaginates(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")
	env.signup("Bob", "bob@example.com")
	env.signup("Carol", "carol@example.com")

	w := env.request(http.MethodGet, "/api/users?page=1&per_page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 2, body["pages"])
	assert.Equal(t, true, body["has_next"])
	assert.Equal(t, false, body["has_prev"])
	assert.Len(t, body["users"], 2)

	first := body["users"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Alice", first["name"])
	// Summaries never leak credentials.
	assert.NotContains(t, first, "email")
	assert.NotContains(t, first, "password")
}

func TestFollowUserIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	env.signup("Bob", "bob@example.com")

	w := env.request(http.MethodPost, "/api/users/2/follow", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Successfully followed Bob", decode(t, w)["message"])

	w = env.request(http.MethodPost, "/api/users/2/follow", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Already following Bob", decode(t, w)["message"])

	var count int64
	env.db.Model(&models.Follow{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFollowRejectsSelfAndMissing(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodPost, "/api/users/1/follow", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You cannot follow yourself", decode(t, w)["error"])

	w = env.request(http.MethodPost, "/api/users/999/follow", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnfollowUser(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	env.signup("Bob", "bob@example.com")

	// Not following yet.
	w := env.request(http.MethodPost, "/api/users/2/unfollow", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Not following Bob", decode(t, w)["message"])

	env.request(http.MethodPost, "/api/users/2/follow", aliceToken, nil)

	w = env.request(http.MethodPost, "/api/users/2/unfollow", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully unfollowed Bob", decode(t, w)["message"])

	var count int64
	env.db.Model(&models.Follow{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestFollowersAndFollowingListings(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	bobToken := env.signup("Bob", "bob@example.com")
	carolToken := env.signup("Carol", "carol@example.com")

	// Bob and Carol follow Alice; Alice follows Carol.
	env.request(http.MethodPost, "/api/users/1/follow", bobToken, nil)
	env.request(http.MethodPost, "/api/users/1/follow", carolToken, nil)
	env.request(http.MethodPost, "/api/users/3/follow", aliceToken, nil)

	w := env.request(http.MethodGet, "/api/users/1/followers", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	followers := decode(t, w)["followers"].([]interface{})
	require.Len(t, followers, 2)
	assert.Equal(t, "Bob", followers[0].(map[string]interface{})["name"])
	assert.Equal(t, "Carol", followers[1].(map[string]interface{})["name"])

	w = env.request(http.MethodGet, "/api/users/1/following", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	following := decode(t, w)["following"].([]interface{})
	require.Len(t, following, 1)
	assert.Equal(t, "Carol", following[0].(map[string]interface{})["name"])

	// An account with no followers gets an empty list, not null.
	w = env.request(http.MethodGet, "/api/users/2/followers", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["followers"])

	w = env.request(http.MethodGet, "/api/users/999/followers", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
