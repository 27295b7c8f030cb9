package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/game"
	"github.com/iamasit07/5-in-a-row/backend/pkg/auth"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	GameService *game.Service
	JWTSecret   string
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, gs *game.Service, jwtSecret string, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager: cm,
		GameService: gs,
		JWTSecret:   jwtSecret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection (gin handler)
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	done := make(chan struct{})
	defer close(done)

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// 1. Wait for initialization (auth)
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Printf("[WS] Read error during init: %v", err)
		conn.Close()
		return
	}

	var message domain.ClientMessage
	if err := json.Unmarshal(data, &message); err != nil || message.Type != "init" || message.JWT == "" {
		log.Printf("[WS] Missing initialization or token")
		conn.WriteJSON(domain.ServerMessage{Type: "error", Message: "Expected init message with token"})
		conn.Close()
		return
	}

	claims, err := auth.ValidateAccessToken(h.JWTSecret, message.JWT)
	if err != nil {
		log.Printf("[WS] Invalid token during init: %v", err)
		conn.WriteJSON(domain.ServerMessage{Type: "error", Message: "Invalid token or session expired"})
		conn.Close()
		return
	}
	userID := claims.UserID

	client := h.ConnManager.AddConnection(userID, conn)
	log.Printf("[WS] Connection initialized for user: %s (ID: %d)", claims.Username, userID)

	// In-flight requests are cancelled once the socket goes away.
	ctx, cancel := context.WithCancel(context.Background())
	var inFlight sync.WaitGroup
	defer func() {
		cancel()
		inFlight.Wait()
		h.ConnManager.RemoveConnection(client)
		log.Printf("[WS] Connection closed for user %s", claims.Username)
	}()

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := client.ping(); err != nil {
					return
				}
			}
		}
	}()

	client.Send(domain.ServerMessage{Type: "ready"})

	// 2. Main message loop; reads continue while a move is computed so a
	// disconnect is noticed immediately.
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] User disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			continue
		}

		inFlight.Add(1)
		go func() {
			defer inFlight.Done()
			h.processMessage(ctx, client, msg)
		}()
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(ctx context.Context, client *Client, msg domain.ClientMessage) {
	switch msg.Type {
	case "request_move":
		userID := client.UserID
		result, err := h.GameService.RequestMove(ctx, game.MoveRequest{
			Board:      msg.Board,
			Side:       msg.Side,
			Suggestion: msg.Suggestion,
			UserID:     &userID,
		})
		if err != nil {
			text := "Internal server error"
			var domainErr domain.Error
			if errors.As(err, &domainErr) {
				text = domainErr.Error()
			}
			client.Send(domain.ServerMessage{Type: "error", RequestID: msg.RequestID, Message: text})
			return
		}
		if ctx.Err() != nil {
			return
		}
		client.Send(domain.ServerMessage{Type: "ai_move", RequestID: msg.RequestID, Data: result})

	default:
		client.Send(domain.ServerMessage{Type: "error", RequestID: msg.RequestID, Message: "Unknown message type"})
	}
}
