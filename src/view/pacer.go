package view

import "time"

// Pacer runs simulation updates at a steady interval inside a faster frame loop
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer creates the Pacer, the first ShouldStep call always steps
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetInterval(interval)
	p.accumulator = p.step
	return p
}

// SetInterval changes the step interval, non-positive values step on every frame
func (p *Pacer) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	p.step = interval
}

// ShouldStep reports whether the simulation should advance by one tick
func (p *Pacer) ShouldStep() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		// don't try to catch up after a stall
		if p.accumulator > p.step {
			p.accumulator = p.step
		}
		return true
	}
	return false
}
