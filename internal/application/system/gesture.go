package system

import (
	"log/slog"
	"time"

	"github.com/younwookim/flipstrike/internal/domain/gesture"
)

// GestureSystem drives the gesture classifier from the game loop.
// It keeps a monotonic tick clock advanced by dt every update.
type GestureSystem struct {
	classifier *gesture.Classifier
	now        time.Duration // time of the next tick
	last       time.Duration // time of the previous tick
}

// NewGestureSystem creates a gesture system for cfg
func NewGestureSystem(cfg gesture.Config, logger *slog.Logger) (*GestureSystem, error) {
	c, err := gesture.New(cfg, gesture.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &GestureSystem{classifier: c}, nil
}

// Update ticks the classifier with this frame's input and returns the resulting
// intent, or nil when no gesture completed.
func (s *GestureSystem) Update(input gesture.Input, dt float64) Intent {
	now := s.now
	s.now += time.Duration(dt * float64(time.Second))

	// The charge duration is gone once the release tick has run, so extend the
	// previous tick's value up to this tick.
	var charge time.Duration
	if d, ok := s.classifier.ChargeDuration(); ok {
		charge = d + now - s.last
	}
	s.last = now

	return IntentFor(s.classifier.Tick(now, input), charge)
}

// Reconcile adds a release edge to an input that shows the button up while a press
// is still tracked. The release was sampled on a tick that was not fed to the
// classifier, such as while the game was paused.
func (s *GestureSystem) Reconcile(input gesture.Input) gesture.Input {
	if input.Pressed || input.Held || input.Released {
		return input
	}
	switch s.classifier.State() {
	case gesture.PressedUnclassified, gesture.Charging:
		input.Released = true
	}
	return input
}

// Reset clears gesture tracking and restarts the tick clock. Called on session restart.
func (s *GestureSystem) Reset() {
	s.classifier.Reset()
	s.now = 0
	s.last = 0
}

// ChargeDuration returns the raw charge duration, ok only while charging
func (s *GestureSystem) ChargeDuration() (time.Duration, bool) {
	return s.classifier.ChargeDuration()
}

// State returns the classifier state
func (s *GestureSystem) State() gesture.State {
	return s.classifier.State()
}

// Now returns the time the next update will tick at
func (s *GestureSystem) Now() time.Duration {
	return s.now
}

// Anomalies returns how many inconsistent inputs were ignored this session
func (s *GestureSystem) Anomalies() int {
	return s.classifier.Anomalies()
}
