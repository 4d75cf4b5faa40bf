package game

import (
	"time"

	"github.com/coder/quartz"
)

// Pacer spaces out the dealer's draws so the player can follow them
type Pacer interface {
	Pause()
}

// ClockPacer waits a fixed delay on a quartz clock between dealer draws
type ClockPacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer creates a pacer that waits delay on clock. A zero delay never waits.
func NewPacer(clock quartz.Clock, delay time.Duration) *ClockPacer {
	return &ClockPacer{clock: clock, delay: delay}
}

// Pause blocks until the delay has elapsed
func (p *ClockPacer) Pause() {
	if p.delay <= 0 {
		return
	}
	timer := p.clock.NewTimer(p.delay, "dealer", "pause")
	defer timer.Stop()
	<-timer.C
}
