package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/constella-app/api-go/models"
	"github.com/constella-app/api-go/utils"
)

// FeedController assembles the personalized feed.
type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// GetFeed godoc
// @Summary Personalized feed
// @Description Posts from joined communities and followed users. The viewer's
// @Description own posts are always included.
// @Tags feed
// @Produce json
// @Param page query integer false "Page number" default(1)
// @Param per_page query integer false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /feed [get]
func (fc *FeedController) GetFeed(c *gin.Context) {
	claims := utils.GetUser(c)
	page, perPage := parsePagination(c)

	// The trailing UNION SELECT pins the viewer into the author set so an
	// account with no follows and no memberships still sees its own posts.
	candidateWhere := `posts.community_id IN (SELECT community_id FROM community_members WHERE user_id = ?)
		OR posts.author_id IN (SELECT following_user_id FROM follows WHERE follower_user_id = ? UNION SELECT ?)`

	var total int64
	if err := fc.DB.Model(&models.Post{}).
		Where(candidateWhere, claims.UserID, claims.UserID, claims.UserID).
		Count(&total).Error; err != nil {
		utils.Sugar.Errorw("feed count failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	var rows []PostRow
	result := postRows(fc.DB, claims.UserID).
		Where(candidateWhere, claims.UserID, claims.UserID, claims.UserID).
		Order("posts.created_at DESC, posts.id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows)
	if result.Error != nil {
		utils.Sugar.Errorw("feed query failed", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	pages := totalPages(total, perPage)
	c.JSON(http.StatusOK, gin.H{
		"posts":        postsJSON(fc.DB, rows),
		"total":        total,
		"pages":        pages,
		"current_page": page,
		"has_next":     page < pages,
		"has_prev":     page > 1,
	})
}
