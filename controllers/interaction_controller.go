package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/constella-app/api-go/models"
	"github.com/constella-app/api-go/utils"
)

// InteractionController covers reactions and bookmarks.
type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// LikePost godoc
// @Summary Like a post
// @Description Upsert: a different existing reaction is overwritten in place
// @Tags interactions
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/like [post]
func (ic *InteractionController) LikePost(c *gin.Context) {
	ic.react(c, models.ReactionLike)
}

// DislikePost godoc
// @Summary Dislike a post
// @Description Upsert: a different existing reaction is overwritten in place
// @Tags interactions
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/dislike [post]
func (ic *InteractionController) DislikePost(c *gin.Context) {
	ic.react(c, models.ReactionDislike)
}

func (ic *InteractionController) react(c *gin.Context, reactionType string) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := ic.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var existing models.Reaction
	err := ic.DB.Where("user_id = ? AND post_id = ?", claims.UserID, post.ID).First(&existing).Error
	if err == nil && existing.ReactionType == reactionType {
		c.JSON(http.StatusOK, gin.H{"message": "Post already " + reactionType + "d"})
		return
	}

	// Store-level upsert keeps the one-row-per-pair invariant even when two
	// requests race past the check above.
	reaction := models.Reaction{
		UserID:       claims.UserID,
		PostID:       post.ID,
		ReactionType: reactionType,
	}
	upsert := ic.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"reaction_type": reactionType,
			"updated_at":    time.Now(),
		}),
	}).Create(&reaction)
	if upsert.Error != nil {
		utils.Sugar.Errorw("reaction upsert failed", "error", upsert.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post " + reactionType + "d successfully"})
}

// RemoveReaction godoc
// @Summary Remove the viewer's reaction from a post
// @Tags interactions
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/reaction [delete]
func (ic *InteractionController) RemoveReaction(c *gin.Context) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := ic.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	res := ic.DB.Where("user_id = ? AND post_id = ?", claims.UserID, post.ID).
		Delete(&models.Reaction{})
	if res.Error != nil {
		utils.Sugar.Errorw("reaction delete failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove reaction"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reaction removed successfully"})
}

// BookmarkPost godoc
// @Summary Bookmark a post
// @Description Idempotent
// @Tags interactions
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/bookmark [post]
func (ic *InteractionController) BookmarkPost(c *gin.Context) {
	claims := utils.GetUser(c)

	var post models.Post
	if err := ic.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	bookmark := models.Bookmark{UserID: claims.UserID, PostID: post.ID}
	res := ic.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark)
	if res.Error != nil {
		utils.Sugar.Errorw("bookmark create failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bookmark post"})
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Post already bookmarked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post bookmarked successfully"})
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Tags interactions
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/bookmark [delete]
func (ic *InteractionController) RemoveBookmark(c *gin.Context) {
	claims := utils.GetUser(c)

	res := ic.DB.Where("user_id = ? AND post_id = ?", claims.UserID, c.Param("id")).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		utils.Sugar.Errorw("bookmark delete failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove bookmark"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed successfully"})
}

// GetBookmarks godoc
// @Summary List the viewer's bookmarked posts, most recently saved first
// @Tags interactions
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /bookmarks [get]
func (ic *InteractionController) GetBookmarks(c *gin.Context) {
	claims := utils.GetUser(c)

	var rows []PostRow
	result := postRows(ic.DB, claims.UserID).
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ?", claims.UserID).
		Order("bookmarks.id DESC").
		Find(&rows)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookmarks"})
		return
	}

	c.JSON(http.StatusOK, postsJSON(ic.DB, rows))
}
