package devsim

import "github.com/openmcu/gecko/regs"

// USARTRegs is a simulated USART block. In synchronous mode the receiver
// is looped back to the transmitter: every frame shifted out is also
// shifted in, which is what a MISO-to-MOSI jumper gives on real hardware.
type USARTRegs struct {
	dev   *Device
	block string

	sync    regs.SyncConfig
	frame   regs.FrameLength
	clkdiv  uint32
	enabled bool

	rx      byte
	rxValid bool
}

func newUSARTRegs(dev *Device, block string) *USARTRegs {
	return &USARTRegs{dev: dev, block: block}
}

// Reset returns every register of the block to its reset value.
func (u *USARTRegs) Reset() {
	u.dev.write(u.block, "CMD.CLEARTX", 1)

	u.sync = regs.SyncConfig{}
	u.frame = regs.Frame8
	u.clkdiv = 0
	u.enabled = false
	u.rxValid = false
}

// SetSyncMode writes CTRL with SYNC set and the given configuration.
func (u *USARTRegs) SetSyncMode(cfg regs.SyncConfig) {
	v := uint32(1) // SYNC
	if cfg.ClockIdleHigh {
		v |= 1 << 1
	}
	if cfg.SampleOnTrailing {
		v |= 1 << 2
	}
	if cfg.MSBFirst {
		v |= 1 << 3
	}
	u.dev.write(u.block, "CTRL", v)
	u.sync = cfg
}

// SetFrameLength writes the FRAME.DATABITS field.
func (u *USARTRegs) SetFrameLength(l regs.FrameLength) {
	u.dev.write(u.block, "FRAME.DATABITS", uint32(l))
	u.frame = l
}

// SetClockDiv writes the fractional clock divider register.
func (u *USARTRegs) SetClockDiv(div uint32) {
	u.dev.write(u.block, "CLKDIV.DIV", div)
	u.clkdiv = div
}

// ClockDiv reads the fractional clock divider register.
func (u *USARTRegs) ClockDiv() uint32 {
	return u.dev.read(u.block, "CLKDIV.DIV", u.clkdiv)
}

// Enable sets the receiver, transmitter, and master enable command bits.
func (u *USARTRegs) Enable() {
	u.dev.write(u.block, "CMD.RXEN_TXEN_MASTEREN", 1)
	u.enabled = true
}

// Disable clears the receiver and transmitter enable command bits.
func (u *USARTRegs) Disable() {
	u.dev.write(u.block, "CMD.RXDIS_TXDIS", 1)
	u.enabled = false
}

// Enabled reads the transmitter enable status bit.
func (u *USARTRegs) Enabled() bool {
	v := uint32(0)
	if u.enabled {
		v = 1
	}
	return u.dev.read(u.block, "STATUS.TXENS", v) != 0
}

// TxBufferLevel reads STATUS.TXBL. The simulated transmitter never backs
// up, so the buffer is free whenever the block is enabled.
func (u *USARTRegs) TxBufferLevel() bool {
	v := uint32(0)
	if u.enabled {
		v = 1
	}
	return u.dev.read(u.block, "STATUS.TXBL", v) != 0
}

// TxComplete reads STATUS.TXC.
func (u *USARTRegs) TxComplete() bool {
	v := uint32(0)
	if u.enabled && !u.rxValid {
		v = 1
	}
	return u.dev.read(u.block, "STATUS.TXC", v) != 0
}

// RxDataValid reads STATUS.RXDATAV.
func (u *USARTRegs) RxDataValid() bool {
	v := uint32(0)
	if u.rxValid {
		v = 1
	}
	return u.dev.read(u.block, "STATUS.RXDATAV", v) != 0
}

// WriteTxData writes a frame to the transmit buffer.
func (u *USARTRegs) WriteTxData(b byte) {
	u.dev.write(u.block, "TXDATA.TXDATA", uint32(b))

	if u.enabled {
		u.rx = b
		u.rxValid = true
	}
}

// ReadRxData pops a frame from the receive buffer.
func (u *USARTRegs) ReadRxData() byte {
	b := byte(u.dev.read(u.block, "RXDATA.RXDATA", uint32(u.rx)))
	u.rxValid = false
	return b
}
