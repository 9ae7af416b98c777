// Package websocket pushes store activity to connected portal clients.
// file: websocket/broadcast.go
package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// HandleMessages listens on the broadcast channel and distributes each
// message to every connected feed client. Run once from main.
func HandleMessages() {
	for msg := range broadcast {
		clientsMutex.Lock()
		conns := make([]*websocket.Conn, 0, len(clients))
		for c := range clients {
			conns = append(conns, c)
		}
		clientsMutex.Unlock()

		for _, c := range conns {
			if err := safeWriteMessage(c, websocket.TextMessage, msg); err != nil {
				logger.Warn.Printf("HandleMessages: dropping feed client %v: %v", c.RemoteAddr(), err)
				removeClient(c)
			}
		}
	}
}

// BroadcastActivity pushes one activity entry to all feed clients. Intended
// as the store's activity hook.
func BroadcastActivity(entry models.ActivityEntry) {
	msg, err := json.Marshal(map[string]interface{}{
		"action":    "activity",
		"id":        entry.ID,
		"message":   entry.Message,
		"timestamp": entry.Timestamp,
	})
	if err != nil {
		logger.Error.Printf("BroadcastActivity: error marshalling entry: %v", err)
		return
	}

	select {
	case broadcast <- msg:
	default:
		logger.Warn.Println("BroadcastActivity: broadcast channel full; dropping entry")
	}
}
