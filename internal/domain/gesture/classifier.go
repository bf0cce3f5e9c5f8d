// Package gesture classifies a single binary button into four player intents.
//
// The classifier is driven once per tick with the current monotonic time and the
// edges sampled for that tick. It resolves taps, holds, charge releases and double
// taps from the one signal using two timing windows, and emits at most one Event
// per tick. It never blocks and is not safe for concurrent use; hosts that capture
// input on another goroutine hand edges over through an EdgeQueue. Hosts that
// sample the button on the tick goroutine, such as an ebiten Update loop, call
// Tick directly and do not need the queue.
package gesture

import (
	"log/slog"
	"time"
)

// Input holds the edges sampled for one tick.
type Input struct {
	Pressed  bool // press-down edge this tick
	Held     bool // button still down from an earlier press-down
	Released bool // release edge this tick
}

// Option configures a Classifier
type Option func(*Classifier)

// WithLogger sets the logger used to report ignored input.
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.log = l
		}
	}
}

// Classifier is the gesture state machine.
type Classifier struct {
	cfg Config
	log *slog.Logger

	state      State
	pressStart time.Duration // valid while PressedUnclassified or Charging
	lastTap    time.Duration // valid while AwaitingSecondTap
	now        time.Duration // time of the last tick

	anomalies int
}

// New creates a classifier in the Idle state.
func New(cfg Config, opts ...Option) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Classifier{
		cfg: cfg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Tick advances the state machine by one tick and returns the event it produced.
//
// Rules run in a fixed order: press-down edge, held-level check, release edge,
// then the pending-tap timeout.
func (c *Classifier) Tick(now time.Duration, in Input) Event {
	if now < c.now {
		c.anomaly("clock went backwards", "now", now, "last", c.now)
	}
	c.now = now

	out := None

	// A pending tap that expired before this press is left for the timeout rule.
	stale := false

	if in.Pressed {
		if c.state.pressing() {
			c.anomaly("press edge while a press is tracked", "state", c.state)
		}
		if c.state == AwaitingSecondTap {
			if now-c.lastTap <= c.cfg.DoubleTapWindow {
				c.emit(&out, GravityFlip)
			} else {
				stale = true
			}
			c.lastTap = 0
		}
		c.state = PressedUnclassified
		c.pressStart = now
	}

	held := in.Held
	if held && in.Released {
		c.anomaly("held and released in the same tick", "state", c.state)
		held = false
	}

	if held && c.state == PressedUnclassified && now-c.pressStart >= c.cfg.HoldThreshold {
		c.state = Charging
		stale = false
		c.emit(&out, ChargeStart)
	}

	if in.Released {
		switch c.state {
		case Charging:
			c.state = Idle
			c.pressStart = 0
			c.emit(&out, ChargedAttackRelease)
		case PressedUnclassified:
			d := now - c.pressStart
			c.pressStart = 0
			if d < c.cfg.HoldThreshold {
				// Only one pending tap is tracked; this one replaces any stale tap.
				c.state = AwaitingSecondTap
				c.lastTap = now
				stale = false
			} else {
				// Released on the tick the threshold was crossed, before any
				// held tick could start the charge.
				c.state = Idle
				c.log.Debug("gesture: release at hold threshold before charge", "held", d)
			}
		default:
			c.anomaly("release edge with no press tracked", "state", c.state)
		}
	}

	if stale {
		c.emit(&out, LightAttack)
	} else if c.state == AwaitingSecondTap && now-c.lastTap > c.cfg.DoubleTapWindow {
		c.state = Idle
		c.lastTap = 0
		c.emit(&out, LightAttack)
	}

	return out
}

// emit records e as the tick's event. A second event in one tick is dropped.
func (c *Classifier) emit(out *Event, e Event) {
	if *out != None {
		c.anomaly("second event in one tick dropped", "kept", *out, "dropped", e)
		return
	}
	*out = e
}

func (c *Classifier) anomaly(msg string, args ...any) {
	c.anomalies++
	c.log.Warn("gesture: "+msg, args...)
}

// Reset returns the classifier to Idle and clears both timers.
// It is safe to call from any state.
func (c *Classifier) Reset() {
	c.state = Idle
	c.pressStart = 0
	c.lastTap = 0
	c.now = 0
	c.anomalies = 0
}

// State returns the current gesture state
func (c *Classifier) State() State {
	return c.state
}

// ChargeDuration returns how long the current charge has been held as of the last tick.
// ok is false unless the state is Charging.
func (c *Classifier) ChargeDuration() (d time.Duration, ok bool) {
	if c.state != Charging {
		return 0, false
	}
	return c.now - c.pressStart, true
}

// Config returns the timing windows the classifier was built with
func (c *Classifier) Config() Config {
	return c.cfg
}

// Anomalies returns how many inconsistent inputs were ignored since construction or reset.
func (c *Classifier) Anomalies() int {
	return c.anomalies
}
