package regs

import (
	"log"

	"github.com/openmcu/gecko/hal"
)

// An Oscillator identifies one of the chip's physical or internal clock
// sources.
type Oscillator uint8

// The oscillators of the clock management unit.
const (
	HFRCO Oscillator = iota // high-frequency RC oscillator
	HFXO                    // high-frequency crystal oscillator
	LFRCO                   // low-frequency RC oscillator
	LFXO                    // low-frequency crystal oscillator
	AUXHFRCO                // auxiliary high-frequency RC oscillator

	NumOscillators = iota
)

func (o Oscillator) String() string {
	switch o {
	case HFRCO:
		return "HFRCO"
	case HFXO:
		return "HFXO"
	case LFRCO:
		return "LFRCO"
	case LFXO:
		return "LFXO"
	case AUXHFRCO:
		return "AUXHFRCO"
	}
	return "Oscillator(unknown)"
}

// An HFClockSource is a value the high-frequency clock multiplexer can
// select. Only the four main oscillators are wired to this multiplexer.
type HFClockSource uint8

// The selectable inputs of the HFCLK multiplexer.
const (
	HFSrcHFRCO HFClockSource = iota
	HFSrcHFXO
	HFSrcLFRCO
	HFSrcLFXO
)

// Oscillator returns the oscillator behind a multiplexer input.
func (s HFClockSource) Oscillator() Oscillator {
	switch s {
	case HFSrcHFRCO:
		return HFRCO
	case HFSrcHFXO:
		return HFXO
	case HFSrcLFRCO:
		return LFRCO
	case HFSrcLFXO:
		return LFXO
	}
	log.Panic("unknown HFCLK source")
	return 0
}

func (s HFClockSource) String() string {
	return s.Oscillator().String()
}

// A DebugClockSource is a value the debug clock multiplexer can select.
type DebugClockSource uint8

// The selectable inputs of the DBGCLK multiplexer.
const (
	DbgSrcAUXHFRCO DebugClockSource = iota
	DbgSrcHFCLK
)

// A PrescalerReg identifies one of the CMU prescaler registers. The value
// handled through the interface is the divide ratio itself (1-based); the
// hardware's ratio-minus-one encoding stays inside the implementation.
type PrescalerReg uint8

// The prescaler registers of the CMU.
const (
	PrescHF PrescalerReg = iota
	PrescCore
	PrescPer
	PrescExp

	NumPrescalers = iota
)

func (p PrescalerReg) String() string {
	switch p {
	case PrescHF:
		return "HFPRESC"
	case PrescCore:
		return "HFCOREPRESC"
	case PrescPer:
		return "HFPERPRESC"
	case PrescExp:
		return "HFEXPPRESC"
	}
	return "PrescalerReg(unknown)"
}

// An RCOBand is a calibrated frequency band of the HFRCO or AUXHFRCO.
type RCOBand uint8

// The calibrated RC oscillator bands.
const (
	Band4MHz RCOBand = iota
	Band7MHz
	Band13MHz
	Band16MHz
	Band19MHz
	Band26MHz
	Band32MHz
	Band38MHz
)

// Frequency returns the nominal output of an RC oscillator tuned to the
// band.
func (b RCOBand) Frequency() hal.Hertz {
	switch b {
	case Band4MHz:
		return 4 * hal.MHz
	case Band7MHz:
		return 7 * hal.MHz
	case Band13MHz:
		return 13 * hal.MHz
	case Band16MHz:
		return 16 * hal.MHz
	case Band19MHz:
		return 19 * hal.MHz
	case Band26MHz:
		return 26 * hal.MHz
	case Band32MHz:
		return 32 * hal.MHz
	case Band38MHz:
		return 38 * hal.MHz
	}
	log.Panic("unknown RCO band")
	return 0
}

// A ClockGate identifies a peripheral clock-enable bit.
type ClockGate uint8

// The peripheral clock gates.
const (
	GateGPIO ClockGate = iota
	GateUSART0
	GateUSART1
	GateTimer0
	GateTimer1

	NumClockGates = iota
)

func (g ClockGate) String() string {
	switch g {
	case GateGPIO:
		return "GPIO"
	case GateUSART0:
		return "USART0"
	case GateUSART1:
		return "USART1"
	case GateTimer0:
		return "TIMER0"
	case GateTimer1:
		return "TIMER1"
	}
	return "ClockGate(unknown)"
}

// CMU is the register interface of the clock management unit block.
//
// Setters take enum-constrained arguments so that only hardware-legal
// values can reach a register; there is no raw bit access at this
// boundary. Each call is a single read-modify-write of the underlying
// register.
type CMU interface {
	// EnableOscillator sets the oscillator's enable command bit.
	EnableOscillator(o Oscillator)

	// DisableOscillator sets the oscillator's disable command bit.
	DisableOscillator(o Oscillator)

	// OscillatorEnabled reads the oscillator's enable status bit.
	OscillatorEnabled(o Oscillator) bool

	// OscillatorReady reads the oscillator's ready status bit. The bit
	// stays clear until the source output is stable.
	OscillatorReady(o Oscillator) bool

	// SelectHFClock writes the HFCLK multiplexer select field.
	SelectHFClock(s HFClockSource)

	// HFClockSelected reads back the HFCLK multiplexer status field. It
	// reports the source that is actually driving HFCLK, which trails the
	// select field by the multiplexer's switching latency.
	HFClockSelected() HFClockSource

	// SelectDebugClock writes the DBGCLK multiplexer select field.
	SelectDebugClock(s DebugClockSource)

	// DebugClockSelected reads back the DBGCLK multiplexer select field.
	DebugClockSelected() DebugClockSource

	// SetPrescaler writes a prescaler register with the given divide
	// ratio.
	SetPrescaler(p PrescalerReg, div uint32)

	// Prescaler reads a prescaler register and returns the divide ratio.
	Prescaler(p PrescalerReg) uint32

	// HFRCOBand reads the tuned band of the HFRCO.
	HFRCOBand() RCOBand

	// AUXHFRCOBand reads the tuned band of the AUXHFRCO.
	AUXHFRCOBand() RCOBand

	// EnableClockGate sets a peripheral clock-enable bit.
	EnableClockGate(g ClockGate)

	// ClockGateEnabled reads a peripheral clock-enable bit.
	ClockGateEnabled(g ClockGate) bool
}
