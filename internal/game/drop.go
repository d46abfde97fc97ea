package game

import "math"

const (
	baseDropInterval = 0.5
	dropStepPerLevel = 0.02
	minDropInterval  = 0.1
)

// DropInterval is the gravity period in seconds at level: 0.5s at level 0,
// 0.02s faster per level, never below 0.1s (reached at level 20).
func DropInterval(level int) float64 {
	return math.Max(minDropInterval, baseDropInterval-float64(level)*dropStepPerLevel)
}

// DropScheduler turns elapsed time into one-shot gravity ticks.
type DropScheduler struct {
	acc float64
	due bool
}

// Advance accumulates dt. Crossing the interval consumes one interval's
// worth of time and raises the drop flag; any excess carries over.
func (d *DropScheduler) Advance(dt float64, level int) {
	if dt <= 0 {
		return
	}
	d.acc += dt
	if iv := DropInterval(level); d.acc >= iv {
		d.acc -= iv
		d.due = true
	}
}

// TakeDropDue returns true at most once per raised flag.
func (d *DropScheduler) TakeDropDue() bool {
	if !d.due {
		return false
	}
	d.due = false
	return true
}

// ResetTimer clears accumulated time and any pending drop.
func (d *DropScheduler) ResetTimer() {
	d.acc = 0
	d.due = false
}

// Elapsed is the time accumulated toward the next drop.
func (d *DropScheduler) Elapsed() float64 { return d.acc }
