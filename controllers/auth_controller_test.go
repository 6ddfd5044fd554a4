package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constella-app/api-go/models"
)

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	body := gin.H{"name": "Alice", "email": "alice@example.com", "password": "secret123"}
	w := env.request(http.MethodPost, "/api/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(http.MethodPost, "/api/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decode(t, w)["error"])

	var count int64
	env.db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidatesInput(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodPost, "/api/register", "", gin.H{
		"name": "Bob", "email": "not-an-email", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(http.MethodPost, "/api/register", "", gin.H{
		"name": "Bob", "email": "bob@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodPost, "/api/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(http.MethodPost, "/api/login", "", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has been revoked", decode(t, w)["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(http.MethodGet, "/api/feed", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileAppliesPatch(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodPut, "/api/profile", token, gin.H{
		"bio":       "hello there",
		"age":       30,
		"gender":    "Female",
		"sun_sign":  "Aries",
		"interests": []string{"go", "climbing"},
		"location":  gin.H{"lat": 41.0, "lng": 29.0},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "hello there", user["bio"])
	assert.EqualValues(t, 30, user["age"])
	assert.Equal(t, "female", user["gender"])
	assert.Equal(t, "aries", user["sun_sign"])
	assert.Equal(t, []interface{}{"go", "climbing"}, user["interests"])
	require.NotNil(t, user["location"])
	loc := user["location"].(map[string]interface{})
	assert.EqualValues(t, 41.0, loc["lat"])

	// Untouched fields survive a later partial patch.
	w = env.request(http.MethodPut, "/api/profile", token, gin.H{"bio": "updated"})
	require.Equal(t, http.StatusOK, w.Code)
	user = decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "updated", user["bio"])
	assert.Equal(t, "female", user["gender"])
	assert.EqualValues(t, 30, user["age"])
}

func TestUpdateProfileRejectsInvalidValues(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	cases := []gin.H{
		{"age": 150},
		{"age": -1},
		{"gender": "robot"},
		{"sun_sign": "ophiuchus"},
		{"location": gin.H{"lat": 91.0, "lng": 0.0}},
		{"location": gin.H{"lat": 0.0, "lng": 181.0}},
	}
	for _, patch := range cases {
		w := env.request(http.MethodPut, "/api/profile", token, patch)
		assert.Equal(t, http.StatusBadRequest, w.Code, "patch %v", patch)
	}

	// Nothing was written by the rejected patches.
	w := env.request(http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)
	assert.Nil(t, profile["age"])
	assert.Equal(t, "", profile["gender"])
	assert.Nil(t, profile["location"])
}

func TestUpdateProfileSanitizesBio(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodPut, "/api/profile", token, gin.H{
		"bio": `hi <script>alert("x")</script>`,
	})
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["user"].(map[string]interface{})
	assert.NotContains(t, user["bio"], "<script>")
}

func TestProfileIncludesFollowerCounts(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	bobToken := env.signup("Bob", "bob@example.com")

	// Bob is user 2; Alice follows Bob.
	w := env.request(http.MethodPost, "/api/users/2/follow", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.request(http.MethodGet, "/api/profile", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)
	assert.EqualValues(t, 1, profile["followers_count"])
	assert.EqualValues(t, 0, profile["following_count"])

	w = env.request(http.MethodGet, "/api/profile", aliceToken, nil)
	profile = decode(t, w)
	assert.EqualValues(t, 0, profile["followers_count"])
	assert.EqualValues(t, 1, profile["following_count"])
}
