// Package hal defines the peripheral contracts shared by every driver in
// the module. Drivers return concrete structs; consumers that only need
// the behavior accept these interfaces.
package hal

import "time"

// A DigitalOut is a push-pull or open-drain output pin.
type DigitalOut interface {
	Set()
	Clear()
	Toggle()
}

// A DigitalIn is an input pin that can be sampled.
type DigitalIn interface {
	Get() bool
}

// An SPIBus is a blocking full-duplex SPI master.
//
// Transfer shifts out tx while shifting in rx. The two slices may differ
// in length; the bus clocks max(len(tx), len(rx)) bytes, sending a filler
// byte once tx is exhausted and discarding input once rx is full.
type SPIBus interface {
	Transfer(tx, rx []byte) error
	Write(tx []byte) error
	Read(rx []byte) error
}

// A Delayer blocks the caller for at least the requested amount of time.
type Delayer interface {
	DelayUs(us uint32)
	DelayMs(ms uint32)
	Delay(d time.Duration)
}

// A PWM is a single pulse-width-modulated output channel.
//
// Duty is expressed in counter ticks out of MaxDuty, not in percent, so
// callers keep the full hardware resolution.
type PWM interface {
	SetDuty(ticks uint16)
	Duty() uint16
	MaxDuty() uint16
	Frequency() Hertz
}
