// Package catalog provides a small in-memory item catalog exposed as API views.
// The demo service documents it through the route tree.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand contains the data required to create a new item.
type CreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
