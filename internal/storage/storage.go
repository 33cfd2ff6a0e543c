// Package storage persists save documents. Two backends exist: Redis for a
// shared deployment and a plain directory of JSON files for local play.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hitman/pkg/game"
)

// SaveInfo is the listing row for one stored save.
type SaveInfo struct {
	ID         uuid.UUID `json:"id"`
	SavedAt    time.Time `json:"saved_at"`
	PlayerName string    `json:"player_name"`
	MoveCount  int       `json:"move_count"`
}

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the backend connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the backend connection
	Close() error
}

// Store defines the interface for save persistence
type Store interface {
	HealthChecker
	Closer

	// SaveGame writes a save document under its ID
	SaveGame(ctx context.Context, doc *game.SaveDoc) error

	// LoadGame retrieves a save document by ID.
	// Returns nil if the save doesn't exist
	LoadGame(ctx context.Context, id uuid.UUID) (*game.SaveDoc, error)

	// ListGames returns a listing row for every stored save, newest first
	ListGames(ctx context.Context) ([]SaveInfo, error)

	// DeleteGame removes a save by ID
	DeleteGame(ctx context.Context, id uuid.UUID) error
}

func infoFor(doc *game.SaveDoc) SaveInfo {
	info := SaveInfo{ID: doc.ID, SavedAt: doc.SavedAt}
	if doc.Environment != nil && doc.Environment.Player != nil {
		info.PlayerName = doc.Environment.Player.Name
		info.MoveCount = doc.Environment.MoveCount
	}
	return info
}
