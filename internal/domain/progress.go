package domain

import (
	"time"

	"github.com/google/uuid"
)

type RefreshStatus string

const (
	RefreshIdle     RefreshStatus = "idle"
	RefreshRunning  RefreshStatus = "running"
	RefreshComplete RefreshStatus = "complete"
	RefreshError    RefreshStatus = "error"
)

// RefreshProgress is the live state of the refresh pipeline. There is one
// writer (the active refresh) and any number of readers (status polling).
type RefreshProgress struct {
	Status       RefreshStatus `json:"status"`
	Stage        string        `json:"stage"`
	Current      int           `json:"current"`
	Total        int           `json:"total"`
	Degraded     bool          `json:"degraded"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// RefreshRecord is one finished refresh run as kept in the audit log.
type RefreshRecord struct {
	ExecID       uuid.UUID     `json:"exec_id"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	Status       RefreshStatus `json:"status"`
	Stage        string        `json:"stage"`
	CoinCount    int           `json:"coin_count"`
	Degraded     bool          `json:"degraded"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
