package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/controllers"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/middleware"
	"github.com/profilytics/backend/internal/pkg/realtime"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	jobController *controllers.JobController,
	eventController *controllers.TechEventController,
	hackathonController *controllers.HackathonController,
	resourceController *controllers.ResourceController,
	communityController *controllers.CommunityController,
	connectionController *controllers.ConnectionController,
	messageController *controllers.MessageController,
	realtimeHandler *realtime.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh-token", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public content feeds ---
	v1.GET("/profiles/:id", profileController.GetProfile)

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", jobController.GetJobs)
		jobs.GET("/:id", jobController.GetJob)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.GetTechEvents)
		events.GET("/:id", eventController.GetTechEvent)
	}

	hackathons := v1.Group("/hackathons")
	{
		hackathons.GET("", hackathonController.GetHackathons)
		hackathons.GET("/:id", hackathonController.GetHackathon)
	}

	resources := v1.Group("/resources")
	{
		resources.GET("", resourceController.GetResources)
		resources.GET("/:id", resourceController.GetResource)
	}

	communities := v1.Group("/communities")
	{
		communities.GET("", communityController.GetCommunities)
		communities.GET("/:id", communityController.GetCommunity)
		communities.GET("/:id/members", communityController.GetMembers)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profiles/me", profileController.GetOwnProfile)
		authenticated.PUT("/profiles/me", profileController.UpdateOwnProfile)
		authenticated.POST("/profiles/me/education", profileController.AddEducation)
		authenticated.DELETE("/profiles/me/education/:id", profileController.DeleteEducation)
		authenticated.POST("/profiles/me/experiences", profileController.AddExperience)
		authenticated.DELETE("/profiles/me/experiences/:id", profileController.DeleteExperience)
		authenticated.POST("/profiles/me/skills", profileController.AddSkills)
		authenticated.DELETE("/profiles/me/skills/:skillId", profileController.RemoveSkill)

		authenticated.POST("/jobs", jobController.CreateJob)
		authenticated.PUT("/jobs/:id", jobController.UpdateJob)
		authenticated.DELETE("/jobs/:id", jobController.DeleteJob)

		authenticated.POST("/events", eventController.CreateTechEvent)
		authenticated.PUT("/events/:id", eventController.UpdateTechEvent)
		authenticated.DELETE("/events/:id", eventController.DeleteTechEvent)

		authenticated.POST("/hackathons", hackathonController.CreateHackathon)
		authenticated.PUT("/hackathons/:id", hackathonController.UpdateHackathon)
		authenticated.DELETE("/hackathons/:id", hackathonController.DeleteHackathon)

		authenticated.POST("/resources", resourceController.CreateResource)
		authenticated.DELETE("/resources/:id", resourceController.DeleteResource)

		authenticated.POST("/communities", communityController.CreateCommunity)
		authenticated.PUT("/communities/:id", communityController.UpdateCommunity)
		authenticated.DELETE("/communities/:id", communityController.DeleteCommunity)
		authenticated.POST("/communities/:id/members", communityController.RequestJoin)
		authenticated.PUT("/communities/:id/members/:profileId/approve", communityController.ApproveMember)
		authenticated.DELETE("/communities/:id/members/:profileId", communityController.RemoveMember)

		connections := authenticated.Group("/connections")
		{
			connections.GET("", connectionController.GetConnections)
			connections.POST("", connectionController.RequestConnection)
			connections.PUT("/:requesterId", connectionController.RespondToConnection)
		}

		messages := authenticated.Group("/messages")
		{
			messages.GET("/direct/:peerId", messageController.GetDirectConversation)
			messages.POST("/direct/:peerId", messageController.SendDirectMessage)
			messages.GET("/community/:communityId", messageController.GetCommunityConversation)
			messages.POST("/community/:communityId", messageController.SendCommunityMessage)
			messages.PUT("/:id/read", messageController.MarkRead)
		}

		// Websocket subscription for insert notifications; the token travels
		// as a query parameter since browsers cannot set headers here.
		authenticated.GET("/ws/messages", realtimeHandler.HandleSubscription)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
