// upkraft-crm/internal/handlers/dashboard_hub.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Для разработки разрешаем все источники
	},
}

// DashboardHub - единственный экземпляр хаба платежных событий.
var DashboardHub = NewHub()

// PaymentEvent - событие, которое панель выручки получает в реальном времени,
// чтобы перезапросить отчет без перезагрузки страницы.
type PaymentEvent struct {
	Type      string      `json:"type"`
	AcademyID uint        `json:"academyId"`
	Payload   interface{} `json:"payload"`
	At        time.Time   `json:"at"`
}

type hubClient struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	academyID uint
}

// Hub рассылает платежные события подключенным панелям своей академии.
type Hub struct {
	clients    map[*hubClient]bool
	broadcast  chan []byte
	register   chan *hubClient
	unregister chan *hubClient
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 16),
		register:   make(chan *hubClient),
		unregister: make(chan *hubClient),
		clients:    make(map[*hubClient]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			slog.Info("Dashboard client connected", "academy_id", client.academyID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			// Фильтрация по академии происходит на стороне клиента хаба:
			// academyId есть в каждом событии.
			h.mu.Lock()
			for client := range h.clients {
				var event PaymentEvent
				if json.Unmarshal(message, &event) == nil && event.AcademyID != client.academyID {
					continue
				}
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastPaymentEvent публикует событие платежа для панелей академии.
func (h *Hub) BroadcastPaymentEvent(academyID uint, eventType string, payload interface{}) {
	event := PaymentEvent{
		Type:      eventType,
		AcademyID: academyID,
		Payload:   payload,
		At:        time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal payment event", "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		slog.Warn("Dashboard broadcast buffer full, event dropped", "type", eventType)
	}
}

// DashboardWSEndpoint подключает панель выручки к потоку платежных событий.
func DashboardWSEndpoint(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Failed to upgrade dashboard connection", "error", err)
		return
	}

	client := &hubClient{
		hub:       DashboardHub,
		conn:      conn,
		send:      make(chan []byte, 16),
		academyID: academyID(c),
	}
	DashboardHub.register <- client

	go client.writePump()
	go client.readPump()
}

func (cl *hubClient) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()
	cl.conn.SetReadLimit(512)
	for {
		// Панель ничего не шлет; читаем только ради обнаружения разрыва.
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (cl *hubClient) writePump() {
	defer cl.conn.Close()
	for message := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
