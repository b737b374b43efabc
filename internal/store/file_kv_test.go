package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "store")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, CompoundScenariosKey, `[]`))
	require.NoError(t, kv.Set(ctx, CompoundScenariosKey, `[{"name":"x"}]`))
	v, ok, err := kv.Get(ctx, CompoundScenariosKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"name":"x"}]`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are renamed away")
	assert.Equal(t, CompoundScenariosKey+".json", entries[0].Name())

	assert.Error(t, kv.Set(ctx, "../escape", "x"))
	_, _, err = kv.Get(ctx, "")
	assert.Error(t, err)
}

func TestFileKVHonoursContext(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, kv.Set(ctx, "k", "v"), context.Canceled)
	_, _, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScenarioStoreOverFileKV(t *testing.T) {
	deterministic(t)
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	_, err = NewScenarioStore(kv, CompoundScenariosKey).Save(ctx, scenario("persisted", 500))
	require.NoError(t, err)

	// a second store over the same directory sees the record
	kv2, err := NewFileKV(dir)
	require.NoError(t, err)
	list, err := NewScenarioStore(kv2, CompoundScenariosKey).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"persisted"}, names(list))
}

var (
	_ KV = (*MemoryKV)(nil)
	_ KV = (*FileKV)(nil)
	_ KV = (*RedisKV)(nil)
	_ KV = (*PostgresKV)(nil)
)
