package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"hitman/pkg/game"
)

// FileStore keeps each save as <dir>/<uuid>.json. It is the default backend
// for local play, where running Redis would be overkill.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// Ensure FileStore implements Store interface
var _ Store = (*FileStore)(nil)

// NewFileStore creates the save directory if needed.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if dir == "" {
		dir = "./saves"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (f *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.dir); err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

func (f *FileStore) path(id uuid.UUID) string {
	return filepath.Join(f.dir, id.String()+".json")
}

func (f *FileStore) SaveGame(ctx context.Context, doc *game.SaveDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal save", "uuid", doc.ID, "error", err)
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	if err := os.WriteFile(f.path(doc.ID), data, 0o644); err != nil {
		f.logger.Error("Failed to write save", "uuid", doc.ID, "error", err)
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

func (f *FileStore) LoadGame(ctx context.Context, id uuid.UUID) (*game.SaveDoc, error) {
	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Warn("Save not found", "uuid", id)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var doc game.SaveDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Error("Failed to unmarshal save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}
	return &doc, nil
}

func (f *FileStore) ListGames(ctx context.Context) ([]SaveInfo, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}

	var infos []SaveInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			f.logger.Warn("Skipping malformed save file", "file", entry.Name())
			continue
		}
		doc, err := f.LoadGame(ctx, id)
		if err != nil || doc == nil {
			continue
		}
		infos = append(infos, infoFor(doc))
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].SavedAt.After(infos[j].SavedAt) })
	return infos, nil
}

func (f *FileStore) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if err := os.Remove(f.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
