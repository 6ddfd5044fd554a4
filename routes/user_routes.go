package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/constella-app/api-go/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.GET("", userController.ListUsers)

		// Follower graph
		users.POST("/:id/follow", userController.FollowUser)
		users.POST("/:id/unfollow", userController.UnfollowUser)
		users.GET("/:id/followers", userController.GetFollowers)
		users.GET("/:id/following", userController.GetFollowing)
	}
}
