package httpd

import (
	"time"
)

const (
	// StatusOK indicates a collaborator handle initialised at startup.
	StatusOK = "OK"

	// StatusNotConfigured indicates a collaborator never initialised.
	StatusNotConfigured = "Not configured"
)

// SyncResponse is the POST /sync response body.
type SyncResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// StatusResponse is the GET /status response body.
type StatusResponse struct {
	SourceA   string `json:"sourceA"`
	SourceB   string `json:"sourceB"`
	Timestamp string `json:"timestamp"`
}

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}
