package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/constella-app/api-go/models"
	"github.com/constella-app/api-go/utils"
)

type CommunityController struct {
	DB *gorm.DB
}

func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{DB: db}
}

// CreateCommunity godoc
// @Summary Create a community
// @Tags communities
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /communities [post]
func (cc *CommunityController) CreateCommunity(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var existing int64
	cc.DB.Model(&models.Community{}).Where("name = ?", input.Name).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Community name already exists"})
		return
	}

	community := models.Community{
		Name:        input.Name,
		Description: utils.Sanitize(input.Description),
	}

	if err := cc.DB.Create(&community).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Community name already exists"})
			return
		}
		utils.Sugar.Errorw("community create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create community"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Community created",
		"community": community,
	})
}

// ListCommunities godoc
// @Summary List all communities
// @Tags communities
// @Produce json
// @Success 200 {array} models.Community
// @Router /communities [get]
func (cc *CommunityController) ListCommunities(c *gin.Context) {
	var communities []models.Community
	if err := cc.DB.Order("id").Find(&communities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching communities"})
		return
	}
	c.JSON(http.StatusOK, communities)
}

// GetCommunity godoc
// @Summary Get a community with its member ids
// @Tags communities
// @Produce json
// @Param id path integer true "Community ID"
// @Success 200 {object} map[string]interface{}
// @Router /communities/{id} [get]
func (cc *CommunityController) GetCommunity(c *gin.Context) {
	var community models.Community
	if err := cc.DB.First(&community, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	memberIDs := []uint{}
	cc.DB.Model(&models.CommunityMember{}).
		Where("community_id = ?", community.ID).
		Order("id").
		Pluck("user_id", &memberIDs)

	c.JSON(http.StatusOK, gin.H{
		"id":          community.ID,
		"name":        community.Name,
		"description": community.Description,
		"created_at":  community.CreatedAt,
		"members":     memberIDs,
	})
}

// GetJoinedCommunities godoc
// @Summary List communities the authenticated user belongs to
// @Tags communities
// @Produce json
// @Success 200 {array} models.Community
// @Router /communities/joined [get]
func (cc *CommunityController) GetJoinedCommunities(c *gin.Context) {
	claims := utils.GetUser(c)

	var communities []models.Community
	result := cc.DB.Model(&models.Community{}).
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", claims.UserID).
		Order("community_members.id").
		Find(&communities)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching communities"})
		return
	}
	if communities == nil {
		communities = []models.Community{}
	}

	c.JSON(http.StatusOK, communities)
}

// JoinCommunity godoc
// @Summary Join a community
// @Description Idempotent membership toggle
// @Tags communities
// @Produce json
// @Param id path integer true "Community ID"
// @Success 200 {object} map[string]interface{}
// @Router /communities/{id}/join [post]
func (cc *CommunityController) JoinCommunity(c *gin.Context) {
	claims := utils.GetUser(c)

	var community models.Community
	if err := cc.DB.First(&community, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	member := models.CommunityMember{UserID: claims.UserID, CommunityID: community.ID}
	res := cc.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&member)
	if res.Error != nil {
		utils.Sugar.Errorw("join community failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join community"})
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Already a member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Joined community"})
}

// LeaveCommunity godoc
// @Summary Leave a community
// @Description Idempotent; leaving does not hide posts made while a member
// @Tags communities
// @Produce json
// @Param id path integer true "Community ID"
// @Success 200 {object} map[string]interface{}
// @Router /communities/{id}/leave [post]
func (cc *CommunityController) LeaveCommunity(c *gin.Context) {
	claims := utils.GetUser(c)

	var community models.Community
	if err := cc.DB.First(&community, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	res := cc.DB.Where("user_id = ? AND community_id = ?", claims.UserID, community.ID).
		Delete(&models.CommunityMember{})
	if res.Error != nil {
		utils.Sugar.Errorw("leave community failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave community"})
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Not a member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left community"})
}
