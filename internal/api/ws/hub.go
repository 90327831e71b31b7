package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var errInvalidPayload = errors.New("invalid payload")

// client wraps one socket. gorilla allows a single concurrent writer,
// so every write goes through the per-client lock.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub owns all live connections, assigns each a connection id, reads
// inbound envelopes and dispatches them to the game service. It
// implements room.Broadcaster for the outbound direction.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	svc     GameService
}

func NewHub(svc GameService) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		svc:     svc,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade connection: %v", err)
		return
	}

	connID := uuid.NewString()
	cl := &client{conn: conn}
	h.mu.Lock()
	h.clients[connID] = cl
	h.mu.Unlock()
	log.Printf("connection established: %s", connID)

	defer func() {
		h.mu.Lock()
		delete(h.clients, connID)
		h.mu.Unlock()
		_ = conn.Close()
		h.svc.Disconnect(connID)
		log.Printf("connection closed: %s", connID)
	}()

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error on %s: %v", connID, err)
			}
			break
		}
		h.dispatch(connID, env)
	}
}

// dispatch decodes the action-specific payload and runs the matching
// handler. Failures go back to the offending connection only.
func (h *Hub) dispatch(connID string, env Envelope) {
	var err error
	switch env.Action {
	case "create_game":
		var p CreateGamePayload
		if err = decode(env.Data, &p); err == nil {
			h.svc.CreateGame(connID, p.PlayerName, p.PlayerID)
		}
	case "join_game":
		var p JoinGamePayload
		if err = decode(env.Data, &p); err == nil {
			err = h.svc.JoinGame(connID, p.RoomCode, p.PlayerName, p.PlayerID)
		}
	case "start_game":
		var p StartGamePayload
		if err = decode(env.Data, &p); err == nil {
			err = h.svc.StartGame(connID, p.RoomID, p.PlayerID)
		}
	case "ask_card":
		var p AskCardPayload
		if err = decode(env.Data, &p); err == nil {
			err = h.svc.AskCard(connID, p.RoomID, p.TargetID, p.Card)
		}
	case "declare_set":
		var p DeclareSetPayload
		if err = decode(env.Data, &p); err == nil {
			err = h.svc.DeclareSet(connID, p.RoomID, p.Declaration)
		}
	case "pass_turn":
		var p PassTurnPayload
		if err = decode(env.Data, &p); err == nil {
			err = h.svc.PassTurn(connID, p.RoomID, p.TargetID)
		}
	case "leave_room":
		var p LeaveRoomPayload
		if err = decode(env.Data, &p); err == nil {
			err = h.svc.LeaveRoom(connID, p.RoomID)
		}
	default:
		log.Printf("unknown action %q from %s", env.Action, connID)
		err = errors.New("unknown action")
	}
	if err != nil {
		h.Send(connID, "error", gin.H{"message": err.Error()})
	}
}

// Send delivers one message to one connection; unknown connection ids
// are dropped silently (the player may be between sockets).
func (h *Hub) Send(connID string, action string, data interface{}) {
	h.mu.RLock()
	cl, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if err := cl.write(outbound{Action: action, Data: data}); err != nil {
		log.Printf("failed to send %s to %s: %v", action, connID, err)
		h.mu.Lock()
		delete(h.clients, connID)
		h.mu.Unlock()
		_ = cl.conn.Close()
	}
}

func decode(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return errInvalidPayload
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errInvalidPayload
	}
	return nil
}
