package websocket

import (
	"log"
	"sync"

	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/gofiber/contrib/websocket"
)

type Client struct {
	Conn *websocket.Conn
}

// UpdateRequestEvent is the frame pushed to every connected client when a
// student submits a new update request.
type UpdateRequestEvent struct {
	Type    string                       `json:"type"`
	Request *models.StudentUpdateRequest `json:"request"`
}

var clients = make(map[*websocket.Conn]bool)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.StudentUpdateRequest)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.Conn] = true
			clientsMu.Unlock()
			log.Printf("Notification client registered (%d connected)", clientCount())
		case client := <-Unregister:
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
			log.Printf("Notification client unregistered (%d connected)", clientCount())
		case request := <-Broadcast:
			event := UpdateRequestEvent{Type: "update_request.created", Request: request}

			var dead []*websocket.Conn
			clientsMu.RLock()
			for conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing update request event: %v", err)
					dead = append(dead, conn)
				}
			}
			clientsMu.RUnlock()

			for _, conn := range dead {
				conn.Close()
				clientsMu.Lock()
				delete(clients, conn)
				clientsMu.Unlock()
			}
		}
	}
}

func clientCount() int {
	clientsMu.RLock()
	defer clientsMu.RUnlock()
	return len(clients)
}
