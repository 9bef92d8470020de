package chatControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/chat"
)

type ChatMessageInput struct {
	Message string `json:"message" binding:"required"`
}

type ChatReply struct {
	Message string    `json:"message"`
	Reply   string    `json:"reply"`
	SentAt  time.Time `json:"sent_at"`
}

// POST /chat
func SendMessage(c *gin.Context) {
	var input ChatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatReply{
		Message: input.Message,
		Reply:   chat.Reply(input.Message),
		SentAt:  time.Now(),
	})
}
