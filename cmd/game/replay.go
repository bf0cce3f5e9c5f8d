package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/younwookim/flipstrike/internal/application/replay"
	"github.com/younwookim/flipstrike/internal/application/system"
)

// runReplay replays a recording and writes one line per gesture to w
func runReplay(path string, w io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	results, err := replay.Run(*data, slog.Default())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "replay %s: session=%s seed=%d frames=%d fps=%d\n", path, data.SessionID, data.Seed, len(data.Frames), data.Framerate)
	for _, r := range results {
		fmt.Fprintf(w, "%6d  %s\n", r.Frame, describe(r.Intent))
	}
	fmt.Fprintf(w, "%d gestures\n", len(results))
	return nil
}

func describe(intent system.Intent) string {
	switch it := intent.(type) {
	case system.LightAttackIntent:
		return "light attack"
	case system.ChargeStartIntent:
		return "charge start"
	case system.ChargedAttackIntent:
		return fmt.Sprintf("charged attack (%s)", it.Charge)
	case system.GravityFlipIntent:
		return "gravity flip"
	default:
		return fmt.Sprintf("%T", intent)
	}
}
