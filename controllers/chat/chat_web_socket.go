// chat_websocket.go
package chatControllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Kirtan82004/VisionCare/chat"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatWebSocketHandler runs the live chat widget: each text frame from the
// visitor gets a bot reply frame back on the same connection.
func ChatWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		reply := ChatReply{
			Message: string(msg),
			Reply:   chat.Reply(string(msg)),
			SentAt:  time.Now(),
		}
		data, err := json.Marshal(reply)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
}
