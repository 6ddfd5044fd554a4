package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/constella-app/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("/:id/like", interactionController.LikePost)
		posts.POST("/:id/dislike", interactionController.DislikePost)
		posts.DELETE("/:id/reaction", interactionController.RemoveReaction)

		posts.POST("/:id/bookmark", interactionController.BookmarkPost)
		posts.DELETE("/:id/bookmark", interactionController.RemoveBookmark)
	}

	protected.GET("/bookmarks", interactionController.GetBookmarks)
}
