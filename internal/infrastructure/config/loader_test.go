package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/flipstrike/internal/domain/gesture"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.2, cfg.Gesture.HoldThreshold)
	assert.Equal(t, 0.25, cfg.Gesture.DoubleTapWindow)
	assert.Equal(t, 1.0, cfg.ChargeMeter.MaxVisualChargeTime)
	assert.Equal(t, 5, cfg.Player.MaxHealth)
	assert.Greater(t, cfg.Combat.Charged.Radius, cfg.Combat.Light.Radius)
	assert.Equal(t, 16, cfg.Spawner.PoolSize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestGestureConfig_Classifier(t *testing.T) {
	g := GestureConfig{HoldThreshold: 0.2, DoubleTapWindow: 0.25}

	c := g.Classifier()
	assert.Equal(t, 200*time.Millisecond, c.HoldThreshold)
	assert.Equal(t, 250*time.Millisecond, c.DoubleTapWindow)
}

func validYAML() string {
	data, err := os.ReadFile("../../../cmd/game/configs/game.yaml")
	if err != nil {
		panic(err)
	}
	return string(data)
}

func TestLoader_LoadGameErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
		gesture bool
	}{
		{
			name:    "missing file",
			files:   fstest.MapFS{},
			wantErr: "failed to read game.yaml",
		},
		{
			name:    "malformed yaml",
			files:   fstest.MapFS{GameFile: {Data: []byte("display: [")}},
			wantErr: "failed to parse game.yaml",
		},
		{
			name: "zero hold threshold",
			files: fstest.MapFS{GameFile: {Data: []byte(
				strings.Replace(validYAML(), "holdThreshold: 0.2", "holdThreshold: 0", 1))}},
			wantErr: "hold threshold must be positive",
			gesture: true,
		},
		{
			name: "negative double tap window",
			files: fstest.MapFS{GameFile: {Data: []byte(
				strings.Replace(validYAML(), "doubleTapWindow: 0.25", "doubleTapWindow: -1", 1))}},
			wantErr: "double tap window must be positive",
			gesture: true,
		},
		{
			name: "floor above ceiling",
			files: fstest.MapFS{GameFile: {Data: []byte(
				strings.Replace(validYAML(), "floorY: 208", "floorY: 10", 1))}},
			wantErr: "physics.floorY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewFSLoader(tt.files).LoadGame()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.gesture, errors.Is(err, gesture.ErrInvalidConfig))
		})
	}
}

func TestWatcher_ReportsGameFileWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, GameFile)
	require.NoError(t, os.WriteFile(path, []byte(validYAML()), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(validYAML()), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, GameFile, filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for game.yaml")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
