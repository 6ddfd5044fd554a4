package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/constella-app/api-go/controllers"
)

func SetupCommunityRoutes(protected *gin.RouterGroup, communityController *controllers.CommunityController) {
	communities := protected.Group("/communities")
	{
		communities.POST("", communityController.CreateCommunity)
		communities.GET("", communityController.ListCommunities)
		communities.GET("/joined", communityController.GetJoinedCommunities)
		communities.GET("/:id", communityController.GetCommunity)

		// Membership
		communities.POST("/:id/join", communityController.JoinCommunity)
		communities.POST("/:id/leave", communityController.LeaveCommunity)
	}
}
