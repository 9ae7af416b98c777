// Package websocket handles the live activity feed pushed to portal clients.
// file: websocket/handler.go
package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"

	"go-officials-portal/logger"
)

// ServeFeed is the activity feed WebSocket entry point.
func ServeFeed(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			logger.Error.Printf("ServeFeed: recovered from panic: %v", err)
		}
	}()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("ServeFeed: WebSocket upgrade error: %v", err)
		http.Error(w, "Failed to upgrade WebSocket", http.StatusBadRequest)
		return
	}
	logger.Info.Printf("ServeFeed: feed client connected: %v", conn.RemoteAddr())

	clientsMutex.Lock()
	clients[conn] = true
	count := len(clients)
	clientsMutex.Unlock()

	PublishFeedConnections(count)

	// keep the connection alive in the background
	go startHeartbeat(conn)

	// drain reads so control frames are processed; the feed is one-way
	go drainReads(conn)
}

// drainReads consumes (and discards) inbound frames until the client goes
// away, then removes the connection from the registry.
func drainReads(conn *websocket.Conn) {
	defer removeClient(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Debug.Printf("drainReads: feed client gone: %v", err)
			return
		}
	}
}

// removeClient drops a connection from the registry and closes it.
func removeClient(conn *websocket.Conn) {
	clientsMutex.Lock()
	delete(clients, conn)
	count := len(clients)
	clientsMutex.Unlock()

	_ = conn.Close()
	PublishFeedConnections(count)
	logger.Info.Printf("removeClient: feed client disconnected: %v", conn.RemoteAddr())
}

// safeWriteMessage serialises writes to a WebSocket connection.
func safeWriteMessage(conn *websocket.Conn, messageType int, data []byte) error {
	writeMutex.Lock()
	defer writeMutex.Unlock()
	return conn.WriteMessage(messageType, data)
}
