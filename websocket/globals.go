// Package websocket - websocket/globals.go
package websocket

import (
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"
)

// clients tracks all connected feed clients (for broadcast usage)
var clients = make(map[*websocket.Conn]bool)

// clientsMutex guards the clients map
var clientsMutex sync.Mutex

// broadcast is a channel for sending feed messages to all clients
var broadcast = make(chan []byte, 16)

// writeMutex synchronises writes to individual connections
var writeMutex sync.Mutex

// websocket upgrade
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all if Test-Mode
		if r.Header.Get("Test-Mode") == "true" {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		applicationURL := os.Getenv("APPLICATION_URL")
		if applicationURL == "" {
			applicationURL = "http://localhost:8080"
		}
		return origin == applicationURL
	},
}
