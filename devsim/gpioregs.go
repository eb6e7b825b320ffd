package devsim

import (
	"fmt"
	"log"

	"github.com/openmcu/gecko/regs"
)

// GPIORegs is the simulated GPIO block.
type GPIORegs struct {
	dev *Device

	mode  [regs.NumPorts][regs.PinsPerPort]regs.PinMode
	out   [regs.NumPorts]uint16
	in    [regs.NumPorts]uint16
	drive [regs.NumPorts]regs.DriveStrength
}

func newGPIORegs(dev *Device) *GPIORegs {
	return &GPIORegs{dev: dev}
}

func checkPin(port regs.Port, pin uint8) {
	if port >= regs.NumPorts || pin >= regs.PinsPerPort {
		log.Panicf("no such pin P%v%d", port, pin)
	}
}

func pinReg(name string, port regs.Port, pin uint8) string {
	return fmt.Sprintf("P%v_%s.%d", port, name, pin)
}

// SetPinInput drives a pin's input from the outside world, the way a
// wire on the board would.
func (g *GPIORegs) SetPinInput(port regs.Port, pin uint8, high bool) {
	checkPin(port, pin)

	if high {
		g.in[port] |= 1 << pin
	} else {
		g.in[port] &^= 1 << pin
	}
}

// SetPinMode writes a pin's MODE field.
func (g *GPIORegs) SetPinMode(port regs.Port, pin uint8, mode regs.PinMode) {
	checkPin(port, pin)
	g.dev.write("GPIO", pinReg("MODE", port, pin), uint32(mode))
	g.mode[port][pin] = mode
}

// PinMode reads a pin's MODE field.
func (g *GPIORegs) PinMode(port regs.Port, pin uint8) regs.PinMode {
	checkPin(port, pin)
	return regs.PinMode(g.dev.read(
		"GPIO", pinReg("MODE", port, pin), uint32(g.mode[port][pin])))
}

// SetOut sets a pin's data-out bit through the set-only register.
func (g *GPIORegs) SetOut(port regs.Port, pin uint8) {
	checkPin(port, pin)
	g.dev.write("GPIO", pinReg("DOUTSET", port, pin), 1)
	g.out[port] |= 1 << pin
}

// ClearOut clears a pin's data-out bit through the clear-only register.
func (g *GPIORegs) ClearOut(port regs.Port, pin uint8) {
	checkPin(port, pin)
	g.dev.write("GPIO", pinReg("DOUTCLR", port, pin), 1)
	g.out[port] &^= 1 << pin
}

// ToggleOut toggles a pin's data-out bit through the toggle-only
// register.
func (g *GPIORegs) ToggleOut(port regs.Port, pin uint8) {
	checkPin(port, pin)
	g.dev.write("GPIO", pinReg("DOUTTGL", port, pin), 1)
	g.out[port] ^= 1 << pin
}

// OutBit reads back a pin's data-out bit.
func (g *GPIORegs) OutBit(port regs.Port, pin uint8) bool {
	checkPin(port, pin)
	v := uint32(g.out[port]>>pin) & 1
	return g.dev.read("GPIO", pinReg("DOUT", port, pin), v) != 0
}

// InBit reads a pin's input data bit. A push-pull output reads back its
// own data-out level, as on the real part.
func (g *GPIORegs) InBit(port regs.Port, pin uint8) bool {
	checkPin(port, pin)

	v := uint32(g.in[port]>>pin) & 1
	if g.mode[port][pin] == regs.ModePushPull {
		v = uint32(g.out[port]>>pin) & 1
	}
	return g.dev.read("GPIO", pinReg("DIN", port, pin), v) != 0
}

// SetDriveStrength writes a port's drive strength field.
func (g *GPIORegs) SetDriveStrength(port regs.Port, d regs.DriveStrength) {
	if port >= regs.NumPorts {
		log.Panicf("no such port %v", port)
	}
	g.dev.write("GPIO", fmt.Sprintf("P%v_CTRL.DRIVESTRENGTH", port), uint32(d))
	g.drive[port] = d
}
