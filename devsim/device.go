// Package devsim provides a behavioral simulation of the chip's
// peripheral register blocks.
//
// The simulated device implements every interface of the regs package
// with enough hardware behavior for drivers to run unmodified on a host:
// oscillators report ready only after a configurable number of status
// polls, the clock multiplexer status trails its select field the way the
// silicon's does, and the USART receiver loops back the transmit data.
// Every register access is delivered to registered hooks, which is what
// the recording and inspect packages build on.
package devsim

import "github.com/openmcu/gecko/regs"

// A Device is a simulated chip: one register file per peripheral block
// plus the access-hook machinery.
type Device struct {
	hookableBase

	CMU    *CMURegs
	GPIO   *GPIORegs
	USART0 *USARTRegs
	USART1 *USARTRegs
	Timer0 *TimerRegs
	Timer1 *TimerRegs
}

// NewDevice creates a device with every block in its documented reset
// state.
func NewDevice() *Device {
	d := new(Device)

	d.CMU = newCMURegs(d)
	d.GPIO = newGPIORegs(d)
	d.USART0 = newUSARTRegs(d, "USART0")
	d.USART1 = newUSARTRegs(d, "USART1")
	d.Timer0 = newTimerRegs(d, "TIMER0")
	d.Timer1 = newTimerRegs(d, "TIMER1")

	return d
}

// read records a register read and returns the value unchanged.
func (d *Device) read(block, register string, v uint32) uint32 {
	d.invokeHook(Access{Block: block, Register: register, Op: OpRead, Value: v})
	return v
}

// write records a register write.
func (d *Device) write(block, register string, v uint32) {
	d.invokeHook(Access{Block: block, Register: register, Op: OpWrite, Value: v})
}

var (
	_ regs.CMU   = (*CMURegs)(nil)
	_ regs.GPIO  = (*GPIORegs)(nil)
	_ regs.USART = (*USARTRegs)(nil)
	_ regs.Timer = (*TimerRegs)(nil)
)
