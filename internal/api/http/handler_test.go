package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/smiitm/literature/internal/api/ws"
	"github.com/smiitm/literature/internal/config"
	"github.com/smiitm/literature/internal/room"
	"github.com/smiitm/literature/internal/store"
)

func testRouter() (*gin.Engine, *room.Manager) {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{MaxPlayers: 8, MinPlayers: 2}
	rm := room.NewManager(store.NewMemoryStore(), cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	return NewRouter(rm, hub), rm
}

func TestHealthz(t *testing.T) {
	r, _ := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateRoom(t *testing.T) {
	r, rm := testRouter()

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"playerName":"Alice","playerId":"p0"}`)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create-room", body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RoomID     string `json:"roomId"`
		PlayerName string `json:"playerName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Regexp(t, `^\d{6}$`, resp.RoomID)
	require.Equal(t, "Alice", resp.PlayerName)

	created, ok := rm.Get(resp.RoomID)
	require.True(t, ok)
	require.Len(t, created.Players, 1)
	require.True(t, created.Players[0].IsOwner)
}

func TestCreateRoomValidation(t *testing.T) {
	r, _ := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create-room", strings.NewReader(`{"playerName":""}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomInfo(t *testing.T) {
	r, rm := testRouter()
	created := rm.CreateGame("", "Alice", "p0")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/room-info?roomCode="+created.RoomID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"cardCount"`)
	require.NotContains(t, w.Body.String(), `"suit"`, "room info must never expose cards")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/room-info?roomCode=000000", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
