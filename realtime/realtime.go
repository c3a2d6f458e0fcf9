package realtime

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected leaderboard watchers
	broadcast = make(chan CompletionEvent)     // Broadcast channel for completion events
	mutex     sync.Mutex                       // Protects the clients map
)

// CompletionEvent is pushed to connected clients whenever a user completes a
// challenge, so leaderboard views can refresh without polling
type CompletionEvent struct {
	ChallengeID string    `json:"challenge_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Difficulty  string    `json:"difficulty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// RegisterClient adds a WebSocket client to the completion feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the completion feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	mutex.Unlock()
}

// BroadcastCompletion sends a completion event to all connected clients
func BroadcastCompletion(event CompletionEvent) {
	broadcast <- event
}

func handleBroadcast() {
	for {
		event := <-broadcast
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(event); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
