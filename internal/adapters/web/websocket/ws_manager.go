package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		// Allow same-origin (no Origin header)
		if origin == "" {
			return true
		}

		allowedOrigins := []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://[::1]:8080",
		}

		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		log.Printf("WebSocket: Rejected origin: %s", origin)
		return false
	},
}

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSManager pushes widget directives and snapshots to connected host UIs.
// Directive changes are event-driven; a periodic sweep additionally ships the
// full snapshot list so late-joining clients converge.
type WSManager struct {
	Service ports.PreviewService
	Clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

var _ ports.DirectiveSink = (*WSManager)(nil)

func NewWSManager() *WSManager {
	return &WSManager{
		Clients: make(map[*websocket.Conn]bool),
	}
}

func (m *WSManager) Start(ctx context.Context) {
	go m.sweepAndBroadcast(ctx)
}

func (m *WSManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	m.mu.Lock()
	m.Clients[conn] = true
	m.mu.Unlock()

	log.Printf("WebSocket connected: %s", conn.RemoteAddr())

	// Clean up on disconnect
	go func() {
		defer conn.Close()
		defer func() {
			m.mu.Lock()
			delete(m.Clients, conn)
			m.mu.Unlock()
			log.Printf("WebSocket disconnected: %s", conn.RemoteAddr())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (m *WSManager) sweepAndBroadcast(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.broadcastSnapshots()
		}
	}
}

func (m *WSManager) broadcastSnapshots() {
	if m.Service == nil {
		return
	}

	msg := WSMessage{
		Type:    "widgets",
		Payload: m.Service.ListWidgets(),
	}
	m.broadcastMessage(msg)
}

// BroadcastDirective pushes a widget's new rendering directive to all clients.
func (m *WSManager) BroadcastDirective(widgetID string, d domain.RenderDirective) {
	msg := WSMessage{
		Type: "directive",
		Payload: map[string]interface{}{
			"widget_id": widgetID,
			"directive": d,
		},
	}
	m.broadcastMessage(msg)
}

func (m *WSManager) broadcastMessage(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.Clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(m.Clients, conn)
		}
	}
}
