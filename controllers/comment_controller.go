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

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Success 201 {object} map[string]interface{}
// @Router /posts/{id}/comments [post]
func (cm *CommentController) CreateComment(c *gin.Context) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := cm.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	comment := models.Comment{
		Content:  utils.Sanitize(req.Content),
		AuthorID: claims.UserID,
		PostID:   post.ID,
	}

	if err := cm.DB.Create(&comment).Error; err != nil {
		utils.Sugar.Errorw("comment create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetPostComments godoc
// @Summary List a post's comments with author summaries, newest first
// @Tags comments
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {array} map[string]interface{}
// @Router /posts/{id}/comments [get]
func (cm *CommentController) GetPostComments(c *gin.Context) {
	var post models.Post
	if err := cm.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []struct {
		models.Comment
		AuthorName   string `json:"-"`
		AuthorAvatar string `json:"-"`
	}
	result := cm.DB.Model(&models.Comment{}).
		Select("comments.*, users.name AS author_name, users.avatar_url AS author_avatar").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", post.ID).
		Order("comments.created_at DESC, comments.id DESC").
		Find(&comments)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}

	out := make([]gin.H, len(comments))
	for i, row := range comments {
		out[i] = gin.H{
			"id":         row.ID,
			"content":    row.Content,
			"post_id":    row.PostID,
			"created_at": row.CreatedAt,
			"updated_at": row.UpdatedAt,
			"author": gin.H{
				"id":        row.AuthorID,
				"name":      row.AuthorName,
				"avatarUrl": row.AuthorAvatar,
			},
		}
	}

	c.JSON(http.StatusOK, out)
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Author-only
// @Tags comments
// @Accept json
// @Produce json
// @Param id path integer true "Comment ID"
// @Success 200 {object} models.Comment
// @Router /comments/{id} [put]
func (cm *CommentController) UpdateComment(c *gin.Context) {
	claims := utils.GetUser(c)

	var comment models.Comment
	if err := cm.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own comments"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	comment.Content = utils.Sanitize(req.Content)
	comment.UpdatedAt = time.Now()
	if err := cm.DB.Save(&comment).Error; err != nil {
		utils.Sugar.Errorw("comment update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Author-only
// @Tags comments
// @Produce json
// @Param id path integer true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Router /comments/{id} [delete]
func (cm *CommentController) DeleteComment(c *gin.Context) {
	claims := utils.GetUser(c)

	var comment models.Comment
	if err := cm.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments"})
		return
	}

	if err := cm.DB.Delete(&comment).Error; err != nil {
		utils.Sugar.Errorw("comment delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
