package replay

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/flipstrike/internal/application/system"
	"github.com/younwookim/flipstrike/internal/domain/gesture"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
)

// Result is a gesture produced while replaying, tagged with its frame
type Result struct {
	Frame  int
	Intent system.Intent
}

// Run replays data through a fresh gesture system built from the recorded
// windows and returns every intent produced, in frame order.
func Run(data ReplayData, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if data.Framerate <= 0 {
		return nil, fmt.Errorf("replay framerate must be positive, got %d", data.Framerate)
	}

	cfg := config.GestureConfig{
		HoldThreshold:   data.Gesture.HoldThreshold,
		DoubleTapWindow: data.Gesture.DoubleTapWindow,
	}
	gestures, err := system.NewGestureSystem(cfg.Classifier(), logger)
	if err != nil {
		return nil, fmt.Errorf("replay gesture settings: %w", err)
	}

	dt := 1.0 / float64(data.Framerate)
	replayer := NewReplayer(data)

	var results []Result
	for {
		frame := replayer.CurrentFrame()
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		if intent := gestures.Update(input, dt); intent != nil {
			results = append(results, Result{Frame: frame, Intent: intent})
		}
	}

	logger.Debug("replay finished", "frames", replayer.TotalFrames(), "gestures", len(results))
	if n := gestures.Anomalies(); n > 0 {
		logger.Warn("replay contained inconsistent input", "anomalies", n)
	}
	return results, nil
}

// SettingsFor converts classifier windows to replay settings
func SettingsFor(cfg gesture.Config) GestureSettings {
	return GestureSettings{
		HoldThreshold:   cfg.HoldThreshold.Seconds(),
		DoubleTapWindow: cfg.DoubleTapWindow.Seconds(),
	}
}
