package cmu

import (
	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// A Domain identifies one output of the clock tree.
type Domain uint8

// The clock domains, in dependency order. Domains later in the list can
// only depend on earlier ones, so a single forward walk resolves the
// whole tree.
const (
	DomainHF    Domain = iota // HFCLK: root of the high-frequency tree
	DomainBus                 // HFBUSCLK: bus and memory system clock
	DomainCore                // HFCORECLK: CPU core clock
	DomainPer                 // HFPERCLK: high-frequency peripheral clock
	DomainExp                 // HFEXPCLK: export clock pin
	DomainDebug               // DBGCLK: debug trace unit clock

	NumDomains = iota
)

func (d Domain) String() string {
	switch d {
	case DomainHF:
		return "HFCLK"
	case DomainBus:
		return "HFBUSCLK"
	case DomainCore:
		return "HFCORECLK"
	case DomainPer:
		return "HFPERCLK"
	case DomainExp:
		return "HFEXPCLK"
	case DomainDebug:
		return "DBGCLK"
	}
	return "Domain(unknown)"
}

// noParent marks the root of the domain dependency graph.
const noParent Domain = 0xFF

// hfMaxFrequency is the rated maximum of the high-frequency tree. Every
// domain in this chip's always-on tree shares it.
const hfMaxFrequency = 40 * hal.MHz

// A domainInfo describes one node of the fixed clock-domain graph: its
// parent, its multiplexer wiring, and its prescaler constraints.
type domainInfo struct {
	parent Domain

	// mux lists the oscillators wired to the domain's multiplexer. A nil
	// mux means the domain can only derive from its parent.
	mux []regs.Oscillator

	// canDerive reports whether the multiplexer has a position fed by the
	// parent domain.
	canDerive bool

	hasPresc bool
	prescReg regs.PrescalerReg
	maxPresc uint32

	maxFreq hal.Hertz
}

// domainTable is the clock-domain graph, ordered root to leaf.
var domainTable = [NumDomains]domainInfo{
	DomainHF: {
		parent:   noParent,
		mux:      []regs.Oscillator{regs.HFRCO, regs.HFXO, regs.LFRCO, regs.LFXO},
		hasPresc: true,
		prescReg: regs.PrescHF,
		maxPresc: 32,
		maxFreq:  hfMaxFrequency,
	},
	DomainBus: {
		parent:    DomainHF,
		canDerive: true,
		maxFreq:   hfMaxFrequency,
	},
	DomainCore: {
		parent:    DomainHF,
		canDerive: true,
		hasPresc:  true,
		prescReg:  regs.PrescCore,
		maxPresc:  512,
		maxFreq:   hfMaxFrequency,
	},
	DomainPer: {
		parent:    DomainHF,
		canDerive: true,
		hasPresc:  true,
		prescReg:  regs.PrescPer,
		maxPresc:  512,
		maxFreq:   hfMaxFrequency,
	},
	DomainExp: {
		parent:    DomainHF,
		canDerive: true,
		hasPresc:  true,
		prescReg:  regs.PrescExp,
		maxPresc:  512,
		maxFreq:   hfMaxFrequency,
	},
	DomainDebug: {
		parent:    DomainBus,
		mux:       []regs.Oscillator{regs.AUXHFRCO},
		canDerive: true,
		maxFreq:   hfMaxFrequency,
	},
}
