package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todolist/internal/codec"
	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/todo"
)

func openBackend(t *testing.T, backend string) (*Collection, config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Backend = backend
	c, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	return c, cfg
}

func TestCollection_PersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			st, cfg := openBackend(t, backend)

			first := todo.NewContainer(st, todo.Options{Now: func() time.Time { return time.UnixMilli(1_000) }})
			assert.Empty(t, first.Items())
			require.NoError(t, first.Add("buy milk"))
			require.NoError(t, first.Add("walk dog"))
			require.NoError(t, first.Toggle(first.Items()[0].ID))
			want := first.Items()
			require.NoError(t, st.Close())

			st2, err := Open(context.Background(), cfg)
			require.NoError(t, err)
			defer st2.Close()
			second := todo.NewContainer(st2, todo.Options{})
			assert.Equal(t, want, second.Items())
		})
	}
}

func TestCollection_MalformedDataStartsEmpty(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			st, cfg := openBackend(t, backend)
			defer st.Close()
			require.NoError(t, st.Slot.Put(context.Background(), cfg.Key, []byte(`{not json`)))

			_, err := st.Load()
			assert.ErrorIs(t, err, codec.ErrInvalid)

			c := todo.NewContainer(st, todo.Options{})
			assert.Empty(t, c.Items())
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "etcd"
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}
