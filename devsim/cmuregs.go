package devsim

import (
	"log"

	"github.com/openmcu/gecko/regs"
)

// defaultStartupPolls is how many ready polls an oscillator needs before
// it reports stable. Real startup takes hundreds of microseconds for a
// crystal; a handful of polls keeps the same shape without slowing tests.
const defaultStartupPolls = 3

// neverReady marks an oscillator whose ready bit must stay clear, for
// exercising the dead-crystal path.
const neverReady = -1

// CMURegs is the simulated clock management unit block.
type CMURegs struct {
	dev *Device

	enabled      [regs.NumOscillators]bool
	ready        [regs.NumOscillators]bool
	pollsLeft    [regs.NumOscillators]int
	startupPolls [regs.NumOscillators]int

	hfSelect    regs.HFClockSource
	hfSelected  regs.HFClockSource
	switchDelay int
	switchLeft  int

	dbgSelect regs.DebugClockSource

	presc [regs.NumPrescalers]uint32

	hfrcoBand    regs.RCOBand
	auxhfrcoBand regs.RCOBand

	gates [regs.NumClockGates]bool
}

func newCMURegs(dev *Device) *CMURegs {
	c := &CMURegs{dev: dev}

	for o := range c.startupPolls {
		c.startupPolls[o] = defaultStartupPolls
	}

	// Documented reset state: HFRCO enabled, ready, tuned to 19 MHz, and
	// selected as the HFCLK source; every prescaler at divide-by-one; the
	// debug clock on the AUXHFRCO.
	c.enabled[regs.HFRCO] = true
	c.ready[regs.HFRCO] = true
	c.hfSelect = regs.HFSrcHFRCO
	c.hfSelected = regs.HFSrcHFRCO
	c.hfrcoBand = regs.Band19MHz
	c.auxhfrcoBand = regs.Band19MHz
	for p := range c.presc {
		c.presc[p] = 1
	}

	return c
}

// SetStartupPolls sets how many ready polls the oscillator takes to
// stabilize after being enabled.
func (c *CMURegs) SetStartupPolls(o regs.Oscillator, polls int) {
	c.startupPolls[o] = polls
}

// BreakOscillator makes the oscillator never report ready, simulating a
// dead or missing source.
func (c *CMURegs) BreakOscillator(o regs.Oscillator) {
	c.startupPolls[o] = neverReady
	c.ready[o] = false
	if c.enabled[o] {
		c.pollsLeft[o] = neverReady
	}
}

// SetSwitchDelay makes the HFCLK multiplexer status trail the select
// field by the given number of status reads.
func (c *CMURegs) SetSwitchDelay(reads int) {
	c.switchDelay = reads
}

// SetHFRCOBand retunes the simulated HFRCO.
func (c *CMURegs) SetHFRCOBand(b regs.RCOBand) {
	c.hfrcoBand = b
}

// EnableOscillator sets the oscillator's enable command bit.
func (c *CMURegs) EnableOscillator(o regs.Oscillator) {
	c.dev.write("CMU", "OSCENCMD."+o.String()+"EN", 1)

	if c.enabled[o] {
		return
	}

	c.enabled[o] = true
	c.pollsLeft[o] = c.startupPolls[o]
	if c.pollsLeft[o] == 0 {
		c.ready[o] = true
	}
}

// DisableOscillator sets the oscillator's disable command bit.
func (c *CMURegs) DisableOscillator(o regs.Oscillator) {
	c.dev.write("CMU", "OSCENCMD."+o.String()+"DIS", 1)

	c.enabled[o] = false
	c.ready[o] = false
}

// OscillatorEnabled reads the oscillator's enable status bit.
func (c *CMURegs) OscillatorEnabled(o regs.Oscillator) bool {
	v := uint32(0)
	if c.enabled[o] {
		v = 1
	}
	return c.dev.read("CMU", "STATUS."+o.String()+"ENS", v) != 0
}

// OscillatorReady reads the oscillator's ready status bit. Each poll of a
// starting oscillator brings it one step closer to stable.
func (c *CMURegs) OscillatorReady(o regs.Oscillator) bool {
	if c.enabled[o] && !c.ready[o] && c.pollsLeft[o] != neverReady {
		c.pollsLeft[o]--
		if c.pollsLeft[o] <= 0 {
			c.ready[o] = true
		}
	}

	v := uint32(0)
	if c.ready[o] {
		v = 1
	}
	return c.dev.read("CMU", "STATUS."+o.String()+"RDY", v) != 0
}

// SelectHFClock writes the HFCLK multiplexer select field.
func (c *CMURegs) SelectHFClock(s regs.HFClockSource) {
	c.dev.write("CMU", "HFCLKSEL.HF", uint32(s))

	if !c.ready[s.Oscillator()] {
		log.Panic("HFCLK switched to an oscillator that is not ready")
	}

	c.hfSelect = s
	c.switchLeft = c.switchDelay
	if c.switchLeft == 0 {
		c.hfSelected = s
	}
}

// HFClockSelected reads back the HFCLK multiplexer status field.
func (c *CMURegs) HFClockSelected() regs.HFClockSource {
	if c.hfSelected != c.hfSelect {
		c.switchLeft--
		if c.switchLeft <= 0 {
			c.hfSelected = c.hfSelect
		}
	}

	return regs.HFClockSource(c.dev.read(
		"CMU", "HFCLKSTATUS.SELECTED", uint32(c.hfSelected)))
}

// SelectDebugClock writes the DBGCLK multiplexer select field.
func (c *CMURegs) SelectDebugClock(s regs.DebugClockSource) {
	c.dev.write("CMU", "DBGCLKSEL.DBG", uint32(s))
	c.dbgSelect = s
}

// DebugClockSelected reads back the DBGCLK multiplexer select field.
func (c *CMURegs) DebugClockSelected() regs.DebugClockSource {
	return regs.DebugClockSource(c.dev.read(
		"CMU", "DBGCLKSEL.DBG", uint32(c.dbgSelect)))
}

// SetPrescaler writes a prescaler register with the given divide ratio.
func (c *CMURegs) SetPrescaler(p regs.PrescalerReg, div uint32) {
	if div == 0 {
		log.Panic("prescaler ratio cannot be 0")
	}

	// Registers hold ratio-minus-one.
	c.dev.write("CMU", p.String()+".PRESC", div-1)
	c.presc[p] = div
}

// Prescaler reads a prescaler register and returns the divide ratio.
func (c *CMURegs) Prescaler(p regs.PrescalerReg) uint32 {
	return c.dev.read("CMU", p.String()+".PRESC", c.presc[p]-1) + 1
}

// HFRCOBand reads the tuned band of the HFRCO.
func (c *CMURegs) HFRCOBand() regs.RCOBand {
	return regs.RCOBand(c.dev.read("CMU", "HFRCOCTRL.BAND", uint32(c.hfrcoBand)))
}

// AUXHFRCOBand reads the tuned band of the AUXHFRCO.
func (c *CMURegs) AUXHFRCOBand() regs.RCOBand {
	return regs.RCOBand(c.dev.read(
		"CMU", "AUXHFRCOCTRL.BAND", uint32(c.auxhfrcoBand)))
}

// EnableClockGate sets a peripheral clock-enable bit.
func (c *CMURegs) EnableClockGate(g regs.ClockGate) {
	c.dev.write("CMU", "HFPERCLKEN0."+g.String(), 1)
	c.gates[g] = true
}

// ClockGateEnabled reads a peripheral clock-enable bit.
func (c *CMURegs) ClockGateEnabled(g regs.ClockGate) bool {
	v := uint32(0)
	if c.gates[g] {
		v = 1
	}
	return c.dev.read("CMU", "HFPERCLKEN0."+g.String(), v) != 0
}
