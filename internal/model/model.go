package model

import (
	"time"
)

// Model holds the columns shared by all persisted records.
type Model struct {
	ID        string
	CreatedAt time.Time
}
