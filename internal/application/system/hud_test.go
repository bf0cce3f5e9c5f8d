package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChargeMeterFill(t *testing.T) {
	tests := []struct {
		name      string
		d         time.Duration
		maxVisual float64
		want      float64
	}{
		{"empty", 0, 1.0, 0},
		{"half", 500 * time.Millisecond, 1.0, 0.5},
		{"full", time.Second, 1.0, 1},
		{"clamped", 3 * time.Second, 1.0, 1},
		{"negative duration", -time.Second, 1.0, 0},
		{"no max", time.Second, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ChargeMeterFill(tt.d, tt.maxVisual), 1e-9)
		})
	}
}
