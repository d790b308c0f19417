package settingsfile

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h37bot/internal/domain/entities"
	"h37bot/internal/domain/reset"
)

func TestStore_LoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	store := NewStore(path)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSettings(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.toml"))
	want := entities.DefaultSettings()
	want.MessageID = "1284756"
	want.HalLocation = "Chalk Peak"
	want.NextPhase = reset.OverrideRule{Day: 25, Hour: 8, Minute: 30}
	want.LootResetTimes = []reset.TimeOfDay{{Hour: 4, Minute: 15}}
	want.CombinedReset = reset.WeeklyRule{Day: time.Sunday, Hour: 0, Minute: 0}

	require.NoError(t, store.Save(context.Background(), want))
	got, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_LoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
timezone = "Europe/Paris"
hal_location = "Broken Delta"

[next_phase]
day = 12
hour = 20
minute = 0
`), 0o600))

	got, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)

	defaults := entities.DefaultSettings()
	assert.Equal(t, "Europe/Paris", got.Timezone)
	assert.Equal(t, "Broken Delta", got.HalLocation)
	assert.Equal(t, reset.OverrideRule{Day: 12, Hour: 20}, got.NextPhase)
	assert.Equal(t, defaults.LootResetTimes, got.LootResetTimes)
	assert.Equal(t, defaults.CombinedReset, got.CombinedReset)
	assert.Equal(t, defaults.Embed, got.Embed)
}

func TestStore_LoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("bot_token = \"secret\"\n"), 0o600))

	_, err := NewStore(path).Load(context.Background())

	assert.Error(t, err)
}

func TestStore_WatchNotifiesOnEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	store := NewStore(path)
	require.NoError(t, store.Save(context.Background(), entities.DefaultSettings()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, func() { calls.Add(1) }) }()

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("hal_location = \"Edited by hand\"\n"), 0o600))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestStore_WatchIgnoresOwnSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	store := NewStore(path)
	require.NoError(t, store.Save(context.Background(), entities.DefaultSettings()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() { _ = store.Watch(ctx, func() { calls.Add(1) }) }()

	time.Sleep(100 * time.Millisecond)
	updated := entities.DefaultSettings()
	updated.HalLocation = "Set by command"
	require.NoError(t, store.Save(context.Background(), updated))

	assert.Never(t, func() bool { return calls.Load() > 0 }, time.Second, 50*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("hal_location = \"Edited by hand\"\n"), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestStore_SaveHonoursCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStore(path).Save(ctx, entities.DefaultSettings())

	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
