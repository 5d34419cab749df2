// Package store binds a todo collection to a key-value slot backend.
package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Makepad-fr/todolist/internal/codec"
	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/store/jsonstore"
	"github.com/Makepad-fr/todolist/internal/store/sqlitestore"
)

// Slot is a synchronous key-value store holding raw values.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, b []byte) error
	Close() error
}

// Collection stores the whole todo collection under one key. It implements
// todo.Store.
type Collection struct {
	Slot Slot
	Key  string
}

// Load reads and decodes the collection. An absent key yields an empty
// collection; malformed data is returned as an error wrapping codec.ErrInvalid.
func (c *Collection) Load() ([]model.Item, error) {
	b, ok, err := c.Slot.Get(context.Background(), c.Key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Item{}, nil
	}
	return codec.Decode(b)
}

// Save overwrites the slot with items.
func (c *Collection) Save(items []model.Item) error {
	b, err := codec.Encode(items)
	if err != nil {
		return err
	}
	return c.Slot.Put(context.Background(), c.Key, b)
}

// Close releases the backend.
func (c *Collection) Close() error { return c.Slot.Close() }

// Open returns the collection configured by cfg.
func Open(ctx context.Context, cfg config.Config) (*Collection, error) {
	var slot Slot
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlitestore.Open(ctx, filepath.Join(cfg.DataDir, "todo.sqlite"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		slot = s
	case config.BackendJSON:
		slot = jsonstore.Store{Dir: cfg.DataDir}
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	return &Collection{Slot: slot, Key: cfg.Key}, nil
}
