package core

import "time"

// Pacer throttles the free-running generation loop to a steady
// generations-per-second rate.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer targeting the given TPS. tps <= 0 disables
// pacing entirely, letting the loop run as fast as the engine allows.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		return &Pacer{}
	}
	return &Pacer{step: time.Second / time.Duration(tps)}
}

// Pace blocks until the next step is due. A nil or unpaced Pacer returns
// immediately.
func (p *Pacer) Pace() {
	if p == nil || p.step == 0 {
		return
	}
	now := time.Now()
	if !p.next.After(now) {
		p.next = now.Add(p.step)
		return
	}
	time.Sleep(p.next.Sub(now))
	p.next = p.next.Add(p.step)
}
