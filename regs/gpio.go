package regs

// A Port identifies a GPIO port.
type Port uint8

// The GPIO ports of the chip.
const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF

	NumPorts = iota
)

// PinsPerPort is the number of pins on each GPIO port.
const PinsPerPort = 16

func (p Port) String() string {
	if p >= NumPorts {
		return "Port(unknown)"
	}
	return string('A' + rune(p))
}

// A PinMode is a value of a pin's 4-bit MODE field.
type PinMode uint8

// The pin modes used by this module. The hardware defines more input
// filter and alternate-strength variants; they gate onto the same field.
const (
	ModeDisabled PinMode = iota
	ModeInput
	ModeInputPull
	ModePushPull
	ModeWiredAnd
)

func (m PinMode) String() string {
	switch m {
	case ModeDisabled:
		return "Disabled"
	case ModeInput:
		return "Input"
	case ModeInputPull:
		return "InputPull"
	case ModePushPull:
		return "PushPull"
	case ModeWiredAnd:
		return "WiredAnd"
	}
	return "PinMode(unknown)"
}

// A DriveStrength is a value of a port's drive strength field.
type DriveStrength uint8

// The drive strengths of a GPIO port.
const (
	DriveStrong DriveStrength = iota // 10 mA
	DriveWeak                        // 1 mA
)

// GPIO is the register interface of the GPIO block.
type GPIO interface {
	// SetPinMode writes a pin's MODE field.
	SetPinMode(port Port, pin uint8, mode PinMode)

	// PinMode reads a pin's MODE field.
	PinMode(port Port, pin uint8) PinMode

	// SetOut sets a pin's data-out bit through the set-only register.
	SetOut(port Port, pin uint8)

	// ClearOut clears a pin's data-out bit through the clear-only
	// register.
	ClearOut(port Port, pin uint8)

	// ToggleOut toggles a pin's data-out bit through the toggle-only
	// register.
	ToggleOut(port Port, pin uint8)

	// OutBit reads back a pin's data-out bit.
	OutBit(port Port, pin uint8) bool

	// InBit reads a pin's input data bit.
	InBit(port Port, pin uint8) bool

	// SetDriveStrength writes a port's drive strength field.
	SetDriveStrength(port Port, d DriveStrength)
}
