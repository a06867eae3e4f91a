package dto

import "time"

// Health states reported by the health endpoint.
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthResponse reports store reachability.
type HealthResponse struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	Message   string     `json:"message,omitempty"`
	Error     string     `json:"error,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Healthy reports whether the store answered.
func (h HealthResponse) Healthy() bool {
	return h.Status == HealthStatusOK
}
