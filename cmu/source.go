package cmu

import (
	"log"

	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// lfrcoFrequency is the fixed nominal output of the low-frequency RC
// oscillator.
const lfrcoFrequency = 32768 * hal.Hz

// A Source is one input a clock-domain multiplexer can be asked to
// select: an oscillator, or the output of the parent domain.
type Source struct {
	osc     regs.Oscillator
	freq    hal.Hertz
	derived bool
}

// HFRCO selects the high-frequency RC oscillator. Its frequency is
// whatever band the oscillator is tuned to.
func HFRCO() Source {
	return Source{osc: regs.HFRCO}
}

// HFXO selects the high-frequency crystal oscillator. The crystal on the
// board defines the frequency, so the caller must declare it.
func HFXO(f hal.Hertz) Source {
	if f == 0 {
		log.Panic("HFXO crystal frequency must be declared")
	}
	return Source{osc: regs.HFXO, freq: f}
}

// LFRCO selects the low-frequency RC oscillator (32.768 kHz).
func LFRCO() Source {
	return Source{osc: regs.LFRCO, freq: lfrcoFrequency}
}

// LFXO selects the low-frequency crystal oscillator with the declared
// crystal frequency.
func LFXO(f hal.Hertz) Source {
	if f == 0 {
		log.Panic("LFXO crystal frequency must be declared")
	}
	return Source{osc: regs.LFXO, freq: f}
}

// AUXHFRCO selects the auxiliary high-frequency RC oscillator. Only the
// debug domain's multiplexer is wired to it.
func AUXHFRCO() Source {
	return Source{osc: regs.AUXHFRCO}
}

// FromParent selects the parent domain's output, for multiplexers that
// have such a position.
func FromParent() Source {
	return Source{derived: true}
}

// Oscillator returns the oscillator behind the source. It must not be
// called on a derived source.
func (s Source) Oscillator() regs.Oscillator {
	if s.derived {
		log.Panic("a derived source has no oscillator")
	}
	return s.osc
}

func (s Source) String() string {
	if s.derived {
		return "parent"
	}
	return s.osc.String()
}

// sameSelection reports whether two sources would program the same
// multiplexer position.
func (s Source) sameSelection(other Source) bool {
	if s.derived || other.derived {
		return s.derived == other.derived
	}
	return s.osc == other.osc
}

// hfMuxValue maps the source onto the HFCLK multiplexer select field.
func (s Source) hfMuxValue() regs.HFClockSource {
	switch s.osc {
	case regs.HFRCO:
		return regs.HFSrcHFRCO
	case regs.HFXO:
		return regs.HFSrcHFXO
	case regs.LFRCO:
		return regs.HFSrcLFRCO
	case regs.LFXO:
		return regs.HFSrcLFXO
	}
	log.Panicf("%v is not wired to the HFCLK multiplexer", s.osc)
	return 0
}
