package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/flipstrike/internal/domain/gesture"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed and gesture windows for deterministic replay
func NewRecorder(seed int64, framerate int, settings GestureSettings) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			SessionID: uuid.NewString(),
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Framerate: framerate,
			Gesture:   settings,
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input gesture.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F: r.frame,
		P: input.Pressed,
		H: input.Held,
		R: input.Released,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Restart discards recorded frames and starts a new recording with seed and the
// gesture windows the new session runs with
func (r *Recorder) Restart(seed int64, settings GestureSettings) {
	r.data.SessionID = uuid.NewString()
	r.data.Seed = seed
	r.data.Gesture = settings
	r.data.StartTime = time.Now().Format(time.RFC3339)
	r.data.Frames = r.data.Frames[:0]
	r.frame = 0
	r.recording = true
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
