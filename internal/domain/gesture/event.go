package gesture

// Event is the intent emitted by a tick. None means nothing was emitted.
type Event int

const (
	None Event = iota
	LightAttack
	ChargeStart
	ChargedAttackRelease
	GravityFlip
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case None:
		return "None"
	case LightAttack:
		return "LightAttack"
	case ChargeStart:
		return "ChargeStart"
	case ChargedAttackRelease:
		return "ChargedAttackRelease"
	case GravityFlip:
		return "GravityFlip"
	default:
		return "Unknown"
	}
}
