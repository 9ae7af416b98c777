// services/qrcode_service.go
package services

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateEventQRCode creates a QR code PNG pointing at the check-in page
// for the given event.
func GenerateEventQRCode(eventID string, size int) ([]byte, error) {
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default for local testing
	}

	checkInURL := fmt.Sprintf("%s/events/%s/check-in", applicationURL, eventID)
	png, err := qrcode.Encode(checkInURL, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
