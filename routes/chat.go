package routes

import (
	"github.com/gin-gonic/gin"

	chatControllers "github.com/Kirtan82004/VisionCare/controllers/chat"
)

// SetupChatRoutes registers the chat widget endpoints.
func SetupChatRoutes(r *gin.Engine) {
	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("/", chatControllers.SendMessage)

		// websocket endpoint for the live chat page
		chatGroup.GET("/ws", chatControllers.ChatWebSocketHandler)
	}
}
