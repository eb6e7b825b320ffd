// Package gpio configures pins and drives digital I/O.
package gpio

import (
	"log"

	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// A Mode selects what a pin is configured as.
type Mode uint8

// The pin modes.
const (
	ModeDisabled Mode = iota
	ModeInput
	ModeInputPull
	ModePushPull
	ModeWiredAnd
)

func (m Mode) regMode() regs.PinMode {
	switch m {
	case ModeDisabled:
		return regs.ModeDisabled
	case ModeInput:
		return regs.ModeInput
	case ModeInputPull:
		return regs.ModeInputPull
	case ModePushPull:
		return regs.ModePushPull
	case ModeWiredAnd:
		return regs.ModeWiredAnd
	}
	log.Panic("unknown pin mode")
	return 0
}

// A Controller owns the GPIO block. Creating it enables the block's bus
// clock, which must happen before any pin register is touched.
type Controller struct {
	regs regs.GPIO
}

// New creates a Controller and enables the GPIO clock gate.
func New(g regs.GPIO, c regs.CMU) *Controller {
	c.EnableClockGate(regs.GateGPIO)
	return &Controller{regs: g}
}

// Pin returns the pin at the given port position.
func (c *Controller) Pin(port regs.Port, n uint8) Pin {
	if port >= regs.NumPorts || n >= regs.PinsPerPort {
		log.Panicf("no such pin P%v%d", port, n)
	}
	return Pin{regs: c.regs, port: port, n: n}
}

// SetDriveStrength sets the output drive strength of a whole port.
func (c *Controller) SetDriveStrength(port regs.Port, d regs.DriveStrength) {
	c.regs.SetDriveStrength(port, d)
}

// A Pin is a single GPIO pin. It is a small value; copies refer to the
// same hardware pin.
type Pin struct {
	regs regs.GPIO
	port regs.Port
	n    uint8
}

// Configure sets the pin's mode.
func (p Pin) Configure(m Mode) {
	p.regs.SetPinMode(p.port, p.n, m.regMode())
}

// Mode reads back the pin's configured mode.
func (p Pin) Mode() Mode {
	switch p.regs.PinMode(p.port, p.n) {
	case regs.ModeInput:
		return ModeInput
	case regs.ModeInputPull:
		return ModeInputPull
	case regs.ModePushPull:
		return ModePushPull
	case regs.ModeWiredAnd:
		return ModeWiredAnd
	}
	return ModeDisabled
}

// Set drives the pin high.
func (p Pin) Set() {
	p.regs.SetOut(p.port, p.n)
}

// Clear drives the pin low.
func (p Pin) Clear() {
	p.regs.ClearOut(p.port, p.n)
}

// Toggle inverts the pin's output level.
func (p Pin) Toggle() {
	p.regs.ToggleOut(p.port, p.n)
}

// Get samples the pin's input level.
func (p Pin) Get() bool {
	return p.regs.InBit(p.port, p.n)
}

// IsSet reads back the pin's output latch.
func (p Pin) IsSet() bool {
	return p.regs.OutBit(p.port, p.n)
}

var _ hal.DigitalOut = Pin{}
var _ hal.DigitalIn = Pin{}
