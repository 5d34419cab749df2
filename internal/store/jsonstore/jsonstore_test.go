package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Missing(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	b, ok, err := s.Get(ctx, "todos")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
}

func TestPutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	ctx := context.Background()
	s := Store{Dir: dir}

	require.NoError(t, s.Put(ctx, "todos", []byte(`[1]`)))
	require.NoError(t, s.Put(ctx, "todos", []byte(`[2]`)))

	b, ok, err := s.Get(ctx, "todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[2]`, string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "todos.json", entries[0].Name())
}

func TestInvalidKey(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	for _, k := range []string{"", "../up", "a/b", "sp ace"} {
		_, _, err := s.Get(ctx, k)
		assert.Error(t, err, k)
		assert.Error(t, s.Put(ctx, k, nil), k)
	}
}
