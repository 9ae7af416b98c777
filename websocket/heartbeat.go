// Package websocket websocket/heartbeat.go
package websocket

import (
	"time"

	"github.com/gorilla/websocket"

	"go-officials-portal/logger"
)

// startHeartbeat sends a ping every 10 seconds to keep the connection alive.
// After 5 consecutive failures the connection is dropped.
func startHeartbeat(conn *websocket.Conn) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	failedPings := 0
	for range ticker.C {
		if err := safeWriteMessage(conn, websocket.PingMessage, nil); err != nil {
			failedPings++
			logger.Warn.Printf("startHeartbeat: ping failed (%d/5): %v", failedPings, err)
			if failedPings >= 5 {
				logger.Error.Println("startHeartbeat: connection lost due to repeated ping failures")
				removeClient(conn)
				return
			}
		} else {
			failedPings = 0
		}
	}
}
