package replay

// Version is the replay file format version
const Version = "2.0"

// FrameInput records the gesture button edges for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	P bool `json:"p,omitempty"` // Pressed
	H bool `json:"h,omitempty"` // Held
	R bool `json:"r,omitempty"` // Released
}

// GestureSettings are the classifier windows (seconds) the replay was recorded with
type GestureSettings struct {
	HoldThreshold   float64 `json:"holdThreshold"`
	DoubleTapWindow float64 `json:"doubleTapWindow"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string          `json:"version"`
	SessionID string          `json:"sessionId"`
	Seed      int64           `json:"seed"`
	StartTime string          `json:"startTime"`
	Framerate int             `json:"framerate"`
	Gesture   GestureSettings `json:"gesture"`
	Frames    []FrameInput    `json:"frames"`
}
