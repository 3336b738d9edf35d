package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/storage"
	"github.com/veilbrook/go-haunt/internal/world"
)

type StorageConfig struct {
	Rooms    AssetConfig[*world.Room]    `json:"rooms"`
	Entities AssetConfig[*world.Entity]  `json:"entities"`
	Sessions AssetConfig[*session.Record] `json:"sessions"`
}

// BuildWorld loads and cross-validates the static world. A bad or
// missing asset fails startup here rather than surfacing mid-turn.
func (c *StorageConfig) BuildWorld(startRoom string) (*world.World, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	entities, err := c.Entities.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating entity store: %w", err)
	}

	w, err := world.NewWorld(rooms, entities, startRoom)
	if err != nil {
		return nil, fmt.Errorf("resolving world references: %w", err)
	}
	return w, nil
}

func (c *StorageConfig) BuildSessionStore() (*session.Store, error) {
	records, err := c.Sessions.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating session store: %w", err)
	}
	return session.NewStore(records), nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Entities.Validate("entities"))
	el.Add(c.Sessions.Validate("sessions"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
