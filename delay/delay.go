// Package delay provides busy-wait delays calibrated from the core
// clock.
package delay

import (
	"log"
	"time"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/hal"
)

// loopCyclesPerIteration is the cost of one spin-loop iteration in core
// cycles.
const loopCyclesPerIteration = 3

// A Delay spins the core for a requested amount of time. It holds only
// the core frequency of the snapshot it was built from, so it keeps
// delaying at that calibration even if the tree is later reconfigured.
type Delay struct {
	core hal.Hertz
}

// New creates a Delay calibrated from the snapshot's core clock.
func New(clocks cmu.Clocks) *Delay {
	core, ok := clocks.Frequency(cmu.DomainCore)
	if !ok {
		log.Panicf("snapshot does not cover %v", cmu.DomainCore)
	}
	return &Delay{core: core}
}

// Iterations returns the number of spin-loop iterations for a duration,
// rounded up so the wait never falls short.
func (d *Delay) Iterations(dur time.Duration) uint64 {
	cycles := d.core.Cycles(dur)
	return (cycles + loopCyclesPerIteration - 1) / loopCyclesPerIteration
}

// Delay blocks for at least dur.
func (d *Delay) Delay(dur time.Duration) {
	spin(d.Iterations(dur))
}

// DelayUs blocks for at least us microseconds.
func (d *Delay) DelayUs(us uint32) {
	d.Delay(time.Duration(us) * time.Microsecond)
}

// DelayMs blocks for at least ms milliseconds.
func (d *Delay) DelayMs(ms uint32) {
	d.Delay(time.Duration(ms) * time.Millisecond)
}

//go:noinline
func spin(n uint64) {
	for i := uint64(0); i < n; i++ {
	}
}

var _ hal.Delayer = (*Delay)(nil)
