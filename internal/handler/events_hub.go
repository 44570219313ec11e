package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	clientBuffer   = 32
)

const eventTypeSpeech = "speech"

type speechEvent struct {
	Type string    `json:"type"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type eventClient struct {
	conn *websocket.Conn
	send chan []byte
}

// EventsHub broadcasts everything the assistant says to websocket clients.
// It is a domain.Notifier, so it can sit in a speech fan-out next to the
// console.
type EventsHub struct {
	mu       sync.Mutex
	clients  map[*eventClient]struct{}
	upgrader websocket.Upgrader
	now      func() time.Time
}

func NewEventsHub() *EventsHub {
	return &EventsHub{
		clients: make(map[*eventClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		now: time.Now,
	}
}

func (h *EventsHub) Name() string {
	return "events_hub"
}

// Speak never blocks on a client: a client whose buffer is full is dropped.
func (h *EventsHub) Speak(ctx context.Context, text string) error {
	payload, err := json.Marshal(speechEvent{
		Type: eventTypeSpeech,
		Text: text,
		At:   h.now(),
	})
	if err != nil {
		return err
	}

	h.mu.Lock()
	var stale []*eventClient
	for cl := range h.clients {
		select {
		case cl.send <- payload:
		default:
			stale = append(stale, cl)
		}
	}
	for _, cl := range stale {
		h.removeLocked(cl)
	}
	h.mu.Unlock()

	if len(stale) > 0 {
		slog.WarnContext(ctx, "dropped slow event clients", slog.Int("count", len(stale)))
	}

	return nil
}

func (h *EventsHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *EventsHub) HandleEvents(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	cl := &eventClient{
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	slog.Info("event client connected", slog.String("remote", conn.RemoteAddr().String()))

	go h.writePump(cl)
	go h.readPump(cl)
}

// Close disconnects every client.
func (h *EventsHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		h.removeLocked(cl)
	}
}

func (h *EventsHub) remove(cl *eventClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(cl)
}

func (h *EventsHub) removeLocked(cl *eventClient) {
	if _, ok := h.clients[cl]; !ok {
		return
	}
	delete(h.clients, cl)
	close(cl.send)
}

// readPump only exists to notice the client going away and to answer pongs.
func (h *EventsHub) readPump(cl *eventClient) {
	defer func() {
		h.remove(cl)
		_ = cl.conn.Close()
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *EventsHub) writePump(cl *eventClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
