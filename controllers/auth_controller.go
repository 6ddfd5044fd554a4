package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/constella-app/api-go/models"
	"github.com/constella-app/api-go/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user with a unique email and bcrypt-hashed password
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	// Advisory pre-check for a friendlier message; the unique index on email
	// remains the final authority.
	var existing int64
	ac.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		utils.Sugar.Errorw("register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Login godoc
// @Summary Log in with email and password
// @Description Returns a bearer access token on success
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !utils.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.Sugar.Errorw("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"message":      "Login successful",
	})
}

// Logout godoc
// @Summary Revoke the current access token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	revoked := models.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	if err := ac.DB.Create(&revoked).Error; err != nil && !utils.IsUniqueViolation(err) {
		utils.Sugar.Errorw("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, ac.profileJSON(&user))
}

// UpdateProfile godoc
// @Summary Partially update the authenticated user's profile
// @Description Only supplied fields change; age, gender, sun sign, and
// @Description location are validated before any write
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile [put]
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if patch.Bio != nil {
		clean := utils.Sanitize(*patch.Bio)
		patch.Bio = &clean
	}

	if err := user.ApplyPatch(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.UpdatedAt = time.Now()
	if err := ac.DB.Save(&user).Error; err != nil {
		utils.Sugar.Errorw("profile update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    ac.profileJSON(&user),
	})
}

// profileJSON renders a user with follower counts and the optional location.
func (ac *AuthController) profileJSON(user *models.User) gin.H {
	var followers, following int64
	ac.DB.Model(&models.Follow{}).Where("following_user_id = ?", user.ID).Count(&followers)
	ac.DB.Model(&models.Follow{}).Where("follower_user_id = ?", user.ID).Count(&following)

	interests := []string(user.Interests)
	if interests == nil {
		interests = []string{}
	}

	h := gin.H{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"avatarUrl":       user.AvatarURL,
		"bio":             user.Bio,
		"age":             user.Age,
		"gender":          user.Gender,
		"sun_sign":        user.SunSign,
		"interests":       interests,
		"followers_count": followers,
		"following_count": following,
		"created_at":      user.CreatedAt,
		"updated_at":      user.UpdatedAt,
	}
	if user.Latitude != nil && user.Longitude != nil {
		h["location"] = gin.H{"lat": *user.Latitude, "lng": *user.Longitude}
	} else {
		h["location"] = nil
	}
	return h
}
