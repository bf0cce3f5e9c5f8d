package system

import (
	"time"

	"github.com/younwookim/flipstrike/internal/domain/gesture"
)

// Intent represents an action the player wants to perform
type Intent interface {
	isIntent()
}

// LightAttackIntent is a quick-tap attack in a small radius
type LightAttackIntent struct{}

func (LightAttackIntent) isIntent() {}

// ChargeStartIntent reveals the charge meter and starts the charge tint
type ChargeStartIntent struct{}

func (ChargeStartIntent) isIntent() {}

// ChargedAttackIntent is the release of a charged attack in a larger radius
type ChargedAttackIntent struct {
	Charge time.Duration // how long the charge was held before release
}

func (ChargedAttackIntent) isIntent() {}

// GravityFlipIntent inverts gravity and mirrors the player
type GravityFlipIntent struct{}

func (GravityFlipIntent) isIntent() {}

// IntentFor maps a classifier event to an intent. It returns nil for gesture.None.
func IntentFor(ev gesture.Event, charge time.Duration) Intent {
	switch ev {
	case gesture.LightAttack:
		return LightAttackIntent{}
	case gesture.ChargeStart:
		return ChargeStartIntent{}
	case gesture.ChargedAttackRelease:
		return ChargedAttackIntent{Charge: charge}
	case gesture.GravityFlip:
		return GravityFlipIntent{}
	default:
		return nil
	}
}
