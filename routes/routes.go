package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/constella-app/api-go/config"
	"github.com/constella-app/api-go/controllers"
	"github.com/constella-app/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	cfg := config.Get()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	communityController := controllers.NewCommunityController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)
	interactionController := controllers.NewInteractionController(db)
	feedController := controllers.NewFeedController(db)

	// Public routes
	public := r.Group("/api")
	if cfg.RateLimitPerMinute > 0 {
		public.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	}
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(db))
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		// Setup other routes within the protected group
		SetupUserRoutes(protected, userController)
		SetupCommunityRoutes(protected, communityController)
		SetupPostRoutes(protected, postController, commentController)
		SetupInteractionRoutes(protected, interactionController)
		SetupFeedRoutes(protected, feedController)
	}
}
