package system

import "time"

// ChargeMeterFill returns the charge meter fill in [0, 1] for a charge held for d,
// where maxVisual is the charge time in seconds that fills the meter.
func ChargeMeterFill(d time.Duration, maxVisual float64) float64 {
	if maxVisual <= 0 || d <= 0 {
		return 0
	}
	return min(1, d.Seconds()/maxVisual)
}
