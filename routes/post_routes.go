package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/constella-app/api-go/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController, commentController *controllers.CommentController) {
	// Community posts
	communities := protected.Group("/communities")
	{
		communities.POST("/:id/posts", postController.CreateCommunityPost)
		communities.GET("/:id/posts", postController.GetCommunityPosts)
	}

	// Profile posts
	profile := protected.Group("/profile")
	{
		profile.POST("/posts", postController.CreateProfilePost)
		profile.GET("/posts", postController.GetOwnProfilePosts)
		profile.GET("/:id/posts", postController.GetUserProfilePosts)
	}

	posts := protected.Group("/posts")
	{
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)

		posts.POST("/:id/comments", commentController.CreateComment)
		posts.GET("/:id/comments", commentController.GetPostComments)
	}

	comments := protected.Group("/comments")
	{
		comments.PUT("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
	}
}
