package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_AcceptsGestures(t *testing.T) {
	assert.True(t, StatePlaying.AcceptsGestures())
	assert.False(t, StatePaused.AcceptsGestures())
	assert.False(t, StateGameOver.AcceptsGestures())
}
