package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/constella-app/api-go/models"
	"github.com/constella-app/api-go/utils"
)

// UserController covers user listings and the follower graph.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param per_page query integer false "Items per page (default: 10)"
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	page, perPage := parsePagination(c)

	var total int64
	uc.DB.Model(&models.User{}).Count(&total)

	var users []models.User
	if err := uc.DB.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	summaries := make([]models.UserSummary, len(users))
	for i := range users {
		summaries[i] = users[i].Summary()
	}

	pages := totalPages(total, perPage)
	c.JSON(http.StatusOK, gin.H{
		"users":        summaries,
		"total":        total,
		"pages":        pages,
		"current_page": page,
		"has_next":     page < pages,
		"has_prev":     page > 1,
	})
}

// FollowUser godoc
// @Summary Follow a user
// @Description Idempotent; reports whether a new edge was created
// @Tags users
// @Produce json
// @Param id path integer true "User ID to follow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/follow [post]
func (uc *UserController) FollowUser(c *gin.Context) {
	claims := utils.GetUser(c)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if claims.UserID == uint(targetID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
		return
	}

	var target models.User
	if err := uc.DB.First(&target, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	follow := models.Follow{FollowerUserID: claims.UserID, FollowingUserID: target.ID}
	res := uc.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if res.Error != nil {
		utils.Sugar.Errorw("follow failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Already following " + target.Name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully followed " + target.Name})
}

// UnfollowUser godoc
// @Summary Unfollow a user
// @Description No-op when no edge exists
// @Tags users
// @Produce json
// @Param id path integer true "User ID to unfollow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/unfollow [post]
func (uc *UserController) UnfollowUser(c *gin.Context) {
	claims := utils.GetUser(c)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var target models.User
	if err := uc.DB.First(&target, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	res := uc.DB.Where("follower_user_id = ? AND following_user_id = ?", claims.UserID, target.ID).
		Delete(&models.Follow{})
	if res.Error != nil {
		utils.Sugar.Errorw("unfollow failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Not following " + target.Name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed " + target.Name})
}

// GetFollowers godoc
// @Summary List a user's followers in insertion order
// @Tags users
// @Produce json
// @Param id path integer true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/followers [get]
func (uc *UserController) GetFollowers(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var followers []models.UserSummary
	result := uc.DB.Model(&models.Follow{}).
		Select("users.id, users.name, users.avatar_url").
		Joins("JOIN users ON users.id = follows.follower_user_id").
		Where("follows.following_user_id = ?", user.ID).
		Order("follows.id").
		Scan(&followers)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers"})
		return
	}
	if followers == nil {
		followers = []models.UserSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

// GetFollowing godoc
// @Summary List the users a user follows in insertion order
// @Tags users
// @Produce json
// @Param id path integer true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/following [get]
func (uc *UserController) GetFollowing(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var following []models.UserSummary
	result := uc.DB.Model(&models.Follow{}).
		Select("users.id, users.name, users.avatar_url").
		Joins("JOIN users ON users.id = follows.following_user_id").
		Where("follows.follower_user_id = ?", user.ID).
		Order("follows.id").
		Scan(&following)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following users"})
		return
	}
	if following == nil {
		following = []models.UserSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}
