package model

import "time"

// Provider represents a cloud provider account the sequencer runs against.
type Provider struct {
	ID        string
	Name      string
	Driver    string // e.g., "azure"
	Settings  map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}
