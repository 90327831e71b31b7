package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smiitm/literature/internal/room"
)

// @Summary Create new room
// @Description Create a new lobby without a live socket; the creator attaches afterwards over /ws with the same playerId
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName and playerId required"})
			return
		}
		r := rm.CreateGame("", req.PlayerName, req.PlayerID)
		c.JSON(http.StatusOK, gin.H{"roomId": r.RoomID, "playerName": req.PlayerName})
	}
}

// @Summary Get public room info
// @Description Room status, scores and the redacted roster (card counts only, never hands)
// @Tags Room
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /room-info [get]
func RoomInfoHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Query("roomCode")
		rx, ok := rm.Get(roomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		rx.Mutex.Lock()
		defer rx.Mutex.Unlock()
		c.JSON(http.StatusOK, gin.H{
			"roomId":        rx.RoomID,
			"status":        rx.Status,
			"players":       rx.PublicPlayers(),
			"turnIndex":     rx.TurnIndex,
			"turnState":     rx.TurnState,
			"completedSets": rx.CompletedSets,
			"scores": gin.H{
				"A": rx.Teams["A"].Score,
				"B": rx.Teams["B"].Score,
			},
			"winner": rx.Winner,
		})
	}
}

// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
