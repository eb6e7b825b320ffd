package regs

// A FrameLength is a value of the USART FRAME.DATABITS field.
type FrameLength uint8

// The frame lengths used by this module.
const (
	Frame8 FrameLength = iota
	Frame16
)

// A SyncConfig holds the control bits of a USART running in synchronous
// (SPI) mode.
type SyncConfig struct {
	// ClockIdleHigh sets CLKPOL: the clock idles high instead of low.
	ClockIdleHigh bool

	// SampleOnTrailing sets CLKPHA: data is sampled on the trailing clock
	// edge instead of the leading one.
	SampleOnTrailing bool

	// MSBFirst sets MSBF: frames are shifted most significant bit first.
	MSBFirst bool
}

// USART is the register interface of a USART block.
//
// Only the synchronous-mode surface is exposed; asynchronous (UART)
// control fields are not part of this module.
type USART interface {
	// Reset returns every register of the block to its reset value.
	Reset()

	// SetSyncMode writes CTRL with SYNC set and the given clock and bit
	// order configuration.
	SetSyncMode(cfg SyncConfig)

	// SetFrameLength writes the FRAME.DATABITS field.
	SetFrameLength(l FrameLength)

	// SetClockDiv writes the fractional clock divider register. The value
	// uses the hardware's 8.6 fixed-point layout: div = 256*(fperclk/(2*br)-1).
	SetClockDiv(div uint32)

	// ClockDiv reads the fractional clock divider register.
	ClockDiv() uint32

	// Enable sets the receiver, transmitter, and master enable command
	// bits.
	Enable()

	// Disable clears the receiver and transmitter enable command bits.
	Disable()

	// Enabled reads the transmitter enable status bit.
	Enabled() bool

	// TxBufferLevel reads STATUS.TXBL: the transmit buffer can accept
	// another frame.
	TxBufferLevel() bool

	// TxComplete reads STATUS.TXC: the shift register has run dry.
	TxComplete() bool

	// RxDataValid reads STATUS.RXDATAV: a received frame is waiting.
	RxDataValid() bool

	// WriteTxData writes a frame to the transmit buffer.
	WriteTxData(b byte)

	// ReadRxData pops a frame from the receive buffer.
	ReadRxData() byte
}
