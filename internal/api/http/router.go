package http

import (
	"github.com/gin-gonic/gin"

	"github.com/smiitm/literature/internal/api/ws"
	"github.com/smiitm/literature/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket transport: all seven game commands go through here.
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.GET("/room-info", RoomInfoHandler(rm))

	// --- OPS ---
	r.GET("/healthz", HealthHandler())

	return r
}
