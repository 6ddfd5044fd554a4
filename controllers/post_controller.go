package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/constella-app/api-go/models"
	"github.com/constella-app/api-go/utils"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

type CreatePostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}

// UpdatePostRequest is a field-wise patch. A non-nil ImageURLs replaces the
// whole image set, even when empty.
type UpdatePostRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	ImageURLs *[]string `json:"image_urls"`
}

// CreateCommunityPost godoc
// @Summary Create a post in a community
// @Description Requires membership at creation time
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Community ID"
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} map[string]interface{}
// @Router /communities/{id}/posts [post]
func (pc *PostController) CreateCommunityPost(c *gin.Context) {
	claims := utils.GetUser(c)

	var community models.Community
	if err := pc.DB.First(&community, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	var membership int64
	pc.DB.Model(&models.CommunityMember{}).
		Where("user_id = ? AND community_id = ?", claims.UserID, community.ID).
		Count(&membership)
	if membership == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "You must be a member to create posts"})
		return
	}

	pc.createPost(c, claims.UserID, &community.ID)
}

// CreateProfilePost godoc
// @Summary Create a post on the author's own profile
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} map[string]interface{}
// @Router /profile/posts [post]
func (pc *PostController) CreateProfilePost(c *gin.Context) {
	claims := utils.GetUser(c)
	pc.createPost(c, claims.UserID, nil)
}

// createPost persists a post and its images atomically.
func (pc *PostController) createPost(c *gin.Context, authorID uint, communityID *uint) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	postType := models.PostTypeProfile
	if communityID != nil {
		postType = models.PostTypeCommunity
	}

	post := models.Post{
		Title:       utils.Sanitize(req.Title),
		Content:     utils.Sanitize(req.Content),
		AuthorID:    authorID,
		CommunityID: communityID,
		PostType:    postType,
	}

	tx := pc.DB.Begin()

	if err := tx.Create(&post).Error; err != nil {
		tx.Rollback()
		utils.Sugar.Errorw("post create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	for _, url := range req.ImageURLs {
		if err := tx.Create(&models.Image{URL: url, PostID: post.ID}).Error; err != nil {
			tx.Rollback()
			utils.Sugar.Errorw("post image create failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	row, ok := pc.fetchRow(c, post.ID, authorID)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    postJSON(row, loadImageURLs(pc.DB, []uint{post.ID})[post.ID]),
	})
}

// GetCommunityPosts godoc
// @Summary List a community's posts, newest first
// @Tags posts
// @Produce json
// @Param id path integer true "Community ID"
// @Success 200 {array} map[string]interface{}
// @Router /communities/{id}/posts [get]
func (pc *PostController) GetCommunityPosts(c *gin.Context) {
	claims := utils.GetUser(c)

	var community models.Community
	if err := pc.DB.First(&community, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	var rows []PostRow
	result := postRows(pc.DB, claims.UserID).
		Where("posts.community_id = ?", community.ID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&rows)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, postsJSON(pc.DB, rows))
}

// GetOwnProfilePosts godoc
// @Summary List the viewer's own profile posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile/posts [get]
func (pc *PostController) GetOwnProfilePosts(c *gin.Context) {
	claims := utils.GetUser(c)

	var rows []PostRow
	result := postRows(pc.DB, claims.UserID).
		Where("posts.author_id = ? AND posts.post_type = ?", claims.UserID, models.PostTypeProfile).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&rows)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": postsJSON(pc.DB, rows)})
}

// GetUserProfilePosts godoc
// @Summary List a user's profile posts, newest first
// @Tags posts
// @Produce json
// @Param id path integer true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /profile/{id}/posts [get]
func (pc *PostController) GetUserProfilePosts(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := pc.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var rows []PostRow
	result := postRows(pc.DB, claims.UserID).
		Where("posts.author_id = ? AND posts.post_type = ?", user.ID, models.PostTypeProfile).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&rows)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": postsJSON(pc.DB, rows)})
}

// GetPost godoc
// @Summary Get a post with comments and engagement
// @Tags posts
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := pc.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	row, ok := pc.fetchRow(c, post.ID, claims.UserID)
	if !ok {
		return
	}

	var comments []models.Comment
	pc.DB.Where("post_id = ?", post.ID).Order("created_at DESC, id DESC").Find(&comments)

	body := postJSON(row, loadImageURLs(pc.DB, []uint{post.ID})[post.ID])
	body["comments"] = comments
	c.JSON(http.StatusOK, body)
}

// UpdatePost godoc
// @Summary Update a post
// @Description Author-only; only supplied fields change, image_urls replaces
// @Description the entire image set
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Param post body UpdatePostRequest true "Post update request"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := pc.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own posts"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		updates["title"] = utils.Sanitize(*req.Title)
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
			return
		}
		updates["content"] = utils.Sanitize(*req.Content)
	}
	updates["updated_at"] = time.Now()

	tx := pc.DB.Begin()

	if err := tx.Model(&post).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.Sugar.Errorw("post update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	if req.ImageURLs != nil {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Image{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update images"})
			return
		}
		for _, url := range *req.ImageURLs {
			if err := tx.Create(&models.Image{URL: url, PostID: post.ID}).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update images"})
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	row, ok := pc.fetchRow(c, post.ID, claims.UserID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"post":    postJSON(row, loadImageURLs(pc.DB, []uint{post.ID})[post.ID]),
	})
}

// DeletePost godoc
// @Summary Delete a post and everything attached to it
// @Description Author-only; cascades to images, comments, reactions, bookmarks
// @Tags posts
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := pc.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		return
	}

	tx := pc.DB.Begin()

	for _, child := range []interface{}{&models.Reaction{}, &models.Bookmark{}, &models.Comment{}, &models.Image{}} {
		if err := tx.Where("post_id = ?", post.ID).Delete(child).Error; err != nil {
			tx.Rollback()
			utils.Sugar.Errorw("post cascade delete failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
			return
		}
	}

	if err := tx.Delete(&post).Error; err != nil {
		tx.Rollback()
		utils.Sugar.Errorw("post delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// fetchRow loads a single decorated post row, writing a 500 on failure.
func (pc *PostController) fetchRow(c *gin.Context, postID, viewerID uint) (PostRow, bool) {
	var row PostRow
	result := postRows(pc.DB, viewerID).Where("posts.id = ?", postID).Find(&row)
	if result.Error != nil {
		utils.Sugar.Errorw("post fetch failed", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching post"})
		return row, false
	}
	return row, true
}
