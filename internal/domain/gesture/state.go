package gesture

// State is the classifier's gesture state. Exactly one holds at any tick.
type State int

const (
	// Idle: no press in progress and no pending tap.
	Idle State = iota
	// PressedUnclassified: button down, held for less than the hold threshold.
	PressedUnclassified
	// Charging: button down, held for at least the hold threshold.
	Charging
	// AwaitingSecondTap: a quick tap completed and is waiting for a possible second tap.
	AwaitingSecondTap
)

// String returns the string representation of the gesture state
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case PressedUnclassified:
		return "PressedUnclassified"
	case Charging:
		return "Charging"
	case AwaitingSecondTap:
		return "AwaitingSecondTap"
	default:
		return "Unknown"
	}
}

// pressing reports whether a press is logically in progress
func (s State) pressing() bool {
	return s == PressedUnclassified || s == Charging
}
