package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId"`
}
