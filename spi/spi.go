// Package spi drives a USART in synchronous mode as a blocking SPI
// master.
package spi

import (
	"fmt"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// fillerByte is shifted out when the caller wants to read more bytes
// than it writes.
const fillerByte = 0x00

// A Mode is a standard SPI clock mode.
type Mode uint8

// The SPI clock modes.
//
//	Mode0 => CLKPOL=0, CLKPHA=0
//	Mode1 => CLKPOL=0, CLKPHA=1
//	Mode2 => CLKPOL=1, CLKPHA=0
//	Mode3 => CLKPOL=1, CLKPHA=1
const (
	Mode0 Mode = iota
	Mode1
	Mode2
	Mode3
)

// A Config holds the parameters of an SPI bus.
type Config struct {
	// Baud is the target SCLK frequency. The actual frequency is the
	// closest one at or below it that the divider can produce.
	Baud hal.Hertz

	Mode Mode

	// LSBFirst shifts frames least significant bit first. The default is
	// MSB first.
	LSBFirst bool
}

// An SPI is a blocking SPI master over one USART instance.
type SPI struct {
	usart regs.USART

	perClk hal.Hertz
	baud   hal.Hertz
}

// New configures a USART as an SPI master.
//
// The gate must be the clock gate of the USART instance; clocks supplies
// the peripheral clock frequency the baud divider is computed from. The
// requested baud cannot exceed half the peripheral clock.
func New(
	u regs.USART,
	c regs.CMU,
	gate regs.ClockGate,
	clocks cmu.Clocks,
	cfg Config,
) (*SPI, error) {
	perClk, ok := clocks.Frequency(cmu.DomainPer)
	if !ok {
		return nil, fmt.Errorf("snapshot does not cover %v", cmu.DomainPer)
	}

	if cfg.Baud == 0 {
		return nil, fmt.Errorf("baud rate must be positive")
	}
	if cfg.Baud > perClk/2 {
		return nil, fmt.Errorf(
			"baud %v exceeds the maximum %v for a %v peripheral clock",
			cfg.Baud, perClk/2, perClk)
	}

	c.EnableClockGate(gate)
	u.Reset()

	u.SetSyncMode(regs.SyncConfig{
		ClockIdleHigh:    cfg.Mode == Mode2 || cfg.Mode == Mode3,
		SampleOnTrailing: cfg.Mode == Mode1 || cfg.Mode == Mode3,
		MSBFirst:         !cfg.LSBFirst,
	})
	u.SetFrameLength(regs.Frame8)

	// The divider register holds 256*(fperclk/(2*baud) - 1) in the
	// hardware's 8.6 fixed-point layout; integer math truncates exactly
	// like the reference manual's formula.
	div := 256 * (uint32(perClk)/(2*uint32(cfg.Baud)) - 1)
	u.SetClockDiv(div)

	u.Enable()

	return &SPI{
		usart:  u,
		perClk: perClk,
		baud:   perClk / (2 * (1 + hal.Hertz(div)/256)),
	}, nil
}

// Baud returns the actual SCLK frequency produced by the divider.
func (s *SPI) Baud() hal.Hertz {
	return s.baud
}

// Transfer shifts out tx while shifting in rx, clocking
// max(len(tx), len(rx)) bytes.
func (s *SPI) Transfer(tx, rx []byte) error {
	n := max(len(tx), len(rx))

	for i := 0; i < n; i++ {
		out := byte(fillerByte)
		if i < len(tx) {
			out = tx[i]
		}

		s.waitTxBufferLevel()
		s.usart.WriteTxData(out)

		s.waitRxDataValid()
		in := s.usart.ReadRxData()
		if i < len(rx) {
			rx[i] = in
		}
	}

	return nil
}

// Write shifts out tx, discarding the received bytes.
func (s *SPI) Write(tx []byte) error {
	return s.Transfer(tx, nil)
}

// Read fills rx, shifting out filler bytes.
func (s *SPI) Read(rx []byte) error {
	return s.Transfer(nil, rx)
}

func (s *SPI) waitTxBufferLevel() {
	for !s.usart.TxBufferLevel() {
	}
}

func (s *SPI) waitRxDataValid() {
	for !s.usart.RxDataValid() {
	}
}

var _ hal.SPIBus = (*SPI)(nil)
