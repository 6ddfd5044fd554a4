package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constella-app/api-go/models"
)

func TestCreateCommunityPostRequiresMembership(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")
	env.createCommunity(token, "Gophers")

	w := env.request(http.MethodPost, "/api/communities/1/posts", token, gin.H{
		"title": "First", "content": "hello",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You must be a member to create posts", decode(t, w)["error"])

	var count int64
	env.db.Model(&models.Post{}).Count(&count)
	assert.EqualValues(t, 0, count)

	env.request(http.MethodPost, "/api/communities/1/join", token, nil)

	w = env.request(http.MethodPost, "/api/communities/1/posts", token, gin.H{
		"title": "First", "content": "hello",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode(t, w)["post"].(map[string]interface{})
	assert.Equal(t, models.PostTypeCommunity, post["post_type"])
	assert.Equal(t, "Gophers", post["community"].(map[string]interface{})["name"])

	w = env.request(http.MethodPost, "/api/communities/999/posts", token, gin.H{
		"title": "x", "content": "y",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodPost, "/api/profile/posts", token, gin.H{
		"title": "  ", "content": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(http.MethodPost, "/api/profile/posts", token, gin.H{
		"title": "Hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProfilePostWithImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup("Alice", "alice@example.com")

	w := env.request(http.MethodPost, "/api/profile/posts", token, gin.H{
		"title":      "Trip",
		"content":    "photos",
		"image_urls": []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	post := decode(t, w)["post"].(map[string]interface{})
	assert.Equal(t, models.PostTypeProfile, post["post_type"])
	assert.Nil(t, post["community_id"])
	assert.Equal(t, []interface{}{
		"https://img.example.com/1.jpg",
		"https://img.example.com/2.jpg",
	}, post["image_urls"])
}

func TestGetPostIncludesEngagement(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	bobToken := env.signup("Bob", "bob@example.com")

	id := env.createProfilePost(aliceToken, "Hello")

	env.request(http.MethodPost, "/api/posts/1/like", bobToken, nil)
	env.request(http.MethodPost, "/api/posts/1/comments", bobToken, gin.H{"content": "nice"})
	env.request(http.MethodPost, "/api/posts/1/bookmark", bobToken, nil)

	w := env.request(http.MethodGet, "/api/posts/1", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.EqualValues(t, id, body["id"])
	assert.EqualValues(t, 1, body["likes_count"])
	assert.EqualValues(t, 0, body["dislikes_count"])
	assert.EqualValues(t, 1, body["comments_count"])
	assert.Equal(t, "like", body["viewer_reaction"])
	assert.Equal(t, true, body["is_bookmarked"])
	assert.Equal(t, "Alice", body["author"].(map[string]interface{})["name"])
	assert.Len(t, body["comments"], 1)

	// The same post carries no viewer marks for its author.
	w = env.request(http.MethodGet, "/api/posts/1", aliceToken, nil)
	body = decode(t, w)
	assert.Nil(t, body["viewer_reaction"])
	assert.Equal(t, false, body["is_bookmarked"])
}

func TestUpdatePostPartialAndImageReplacement(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	bobToken := env.signup("Bob", "bob@example.com")

	w := env.request(http.MethodPost, "/api/profile/posts", aliceToken, gin.H{
		"title":      "Original",
		"content":    "body",
		"image_urls": []string{"https://img.example.com/old.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Only the author may edit.
	w = env.request(http.MethodPut, "/api/posts/1", bobToken, gin.H{"title": "Hacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Partial update leaves the other fields alone.
	w = env.request(http.MethodPut, "/api/posts/1", aliceToken, gin.H{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	post := decode(t, w)["post"].(map[string]interface{})
	assert.Equal(t, "Renamed", post["title"])
	assert.Equal(t, "body", post["content"])
	assert.Equal(t, []interface{}{"https://img.example.com/old.jpg"}, post["image_urls"])

	// Supplying image_urls replaces the whole set.
	w = env.request(http.MethodPut, "/api/posts/1", aliceToken, gin.H{
		"image_urls": []string{"https://img.example.com/new.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	post = decode(t, w)["post"].(map[string]interface{})
	assert.Equal(t, []interface{}{"https://img.example.com/new.jpg"}, post["image_urls"])

	var imageCount int64
	env.db.Model(&models.Image{}).Count(&imageCount)
	assert.EqualValues(t, 1, imageCount)

	w = env.request(http.MethodPut, "/api/posts/1", aliceToken, gin.H{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePostCascades(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	bobToken := env.signup("Bob", "bob@example.com")

	w := env.request(http.MethodPost, "/api/profile/posts", aliceToken, gin.H{
		"title":      "Doomed",
		"content":    "body",
		"image_urls": []string{"https://img.example.com/1.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env.request(http.MethodPost, "/api/posts/1/like", bobToken, nil)
	env.request(http.MethodPost, "/api/posts/1/comments", bobToken, gin.H{"content": "nice"})
	env.request(http.MethodPost, "/api/posts/1/bookmark", bobToken, nil)

	// Only the author may delete.
	w = env.request(http.MethodDelete, "/api/posts/1", bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(http.MethodDelete, "/api/posts/1", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, model := range []interface{}{
		&models.Post{}, &models.Image{}, &models.Comment{},
		&models.Reaction{}, &models.Bookmark{},
	} {
		var count int64
		env.db.Model(model).Count(&count)
		assert.EqualValues(t, 0, count, "%T rows left behind", model)
	}

	w = env.request(http.MethodGet, "/api/posts/1", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfilePostListings(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signup("Alice", "alice@example.com")
	bobToken := env.signup("Bob", "bob@example.com")

	env.createProfilePost(aliceToken, "First")
	env.createProfilePost(aliceToken, "Second")
	env.createProfilePost(bobToken, "Other")

	w := env.request(http.MethodGet, "/api/profile/posts", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	posts := decode(t, w)["posts"].([]interface{})
	require.Len(t, posts, 2)
	// Newest first.
	assert.Equal(t, "Second", posts[0].(map[string]interface{})["title"])

	w = env.request(http.MethodGet, "/api/profile/2/posts", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts = decode(t, w)["posts"].([]interface{})
	require.Len(t, posts, 1)
	assert.Equal(t, "Other", posts[0].(map[string]interface{})["title"])

	w = env.request(http.MethodGet, "/api/profile/999/posts", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
