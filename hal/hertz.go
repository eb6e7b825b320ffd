package hal

import (
	"fmt"
	"log"
	"time"
)

// Hertz defines the type of clock frequency.
//
// Frequencies divide with hardware truncation semantics: the fractional
// part of a divided frequency is discarded, exactly as the silicon does.
type Hertz uint32

// Defines the unit of frequency.
const (
	Hz  Hertz = 1
	KHz Hertz = 1e3
	MHz Hertz = 1e6
)

// Div returns the frequency divided by an integer prescaler, truncated.
func (f Hertz) Div(presc uint32) Hertz {
	if presc == 0 {
		log.Panic("prescaler cannot be 0")
	}
	return f / Hertz(presc)
}

// Period returns the time between two consecutive clock edges.
func (f Hertz) Period() time.Duration {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}
	return time.Second / time.Duration(f)
}

// Cycles converts a duration to the number of whole clock cycles it spans,
// rounded up so that a wait of Cycles(d) never returns early.
func (f Hertz) Cycles(d time.Duration) uint64 {
	ns := uint64(d.Nanoseconds())
	return (ns*uint64(f) + uint64(time.Second) - 1) / uint64(time.Second)
}

func (f Hertz) String() string {
	switch {
	case f >= MHz && f%MHz == 0:
		return fmt.Sprintf("%d MHz", f/MHz)
	case f >= KHz && f%KHz == 0:
		return fmt.Sprintf("%d kHz", f/KHz)
	default:
		return fmt.Sprintf("%d Hz", uint32(f))
	}
}
