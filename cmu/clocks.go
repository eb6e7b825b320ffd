package cmu

import (
	"fmt"
	"log"
	"strings"

	"github.com/openmcu/gecko/hal"
)

// Clocks is an immutable snapshot of the resolved clock tree. It is
// produced by a successful Configure call and consumed by every
// peripheral driver constructor. A snapshot stays valid after the tree
// is reconfigured; a driver holding one simply keeps seeing the
// frequencies that were in force when it was built.
//
// Clocks is a small value type; share it by copying.
type Clocks struct {
	freqs   [NumDomains]hal.Hertz
	present [NumDomains]bool
}

// Frequency returns the resolved frequency of a domain. The second
// return value is false for domains the snapshot does not cover.
func (c Clocks) Frequency(d Domain) (hal.Hertz, bool) {
	if d >= NumDomains || !c.present[d] {
		return 0, false
	}
	return c.freqs[d], true
}

func (c Clocks) mustFrequency(d Domain) hal.Hertz {
	f, ok := c.Frequency(d)
	if !ok {
		log.Panicf("%v is not covered by this snapshot", d)
	}
	return f
}

// HF returns the HFCLK frequency.
func (c Clocks) HF() hal.Hertz { return c.mustFrequency(DomainHF) }

// Bus returns the HFBUSCLK frequency.
func (c Clocks) Bus() hal.Hertz { return c.mustFrequency(DomainBus) }

// Core returns the HFCORECLK frequency.
func (c Clocks) Core() hal.Hertz { return c.mustFrequency(DomainCore) }

// Per returns the HFPERCLK frequency.
func (c Clocks) Per() hal.Hertz { return c.mustFrequency(DomainPer) }

// Exp returns the HFEXPCLK frequency.
func (c Clocks) Exp() hal.Hertz { return c.mustFrequency(DomainExp) }

// Debug returns the DBGCLK frequency.
func (c Clocks) Debug() hal.Hertz { return c.mustFrequency(DomainDebug) }

func (c Clocks) String() string {
	var b strings.Builder
	for d := Domain(0); d < NumDomains; d++ {
		if !c.present[d] {
			continue
		}
		fmt.Fprintf(&b, "%-10v %v\n", d, c.freqs[d])
	}
	return b.String()
}

func newClocks(freqs [NumDomains]hal.Hertz) Clocks {
	c := Clocks{freqs: freqs}
	for d := range c.present {
		c.present[d] = true
	}
	return c
}
