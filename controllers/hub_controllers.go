package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/fundraiser-shop/hub"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type HubController struct {
	Hub *hub.Hub
}

func NewHubController(h *hub.Hub) *HubController {
	return &HubController{Hub: h}
}

// Connect -> websocket feed of order events for the fulfillment screen
func (hc *HubController) Connect(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	hc.Hub.Register(ws)

	// drain until the client goes away
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	hc.Hub.Unregister(ws)
}
