package regs

import "log"

// A TimerPrescale is a value of the timer CTRL.PRESC field.
type TimerPrescale uint8

// The timer prescale ratios, all powers of two.
const (
	TimerDiv1 TimerPrescale = iota
	TimerDiv2
	TimerDiv4
	TimerDiv8
	TimerDiv16
	TimerDiv32
	TimerDiv64
	TimerDiv128
	TimerDiv256
	TimerDiv512
	TimerDiv1024
)

// Ratio returns the divide ratio the prescale value stands for.
func (p TimerPrescale) Ratio() uint32 {
	if p > TimerDiv1024 {
		log.Panic("unknown timer prescale")
	}
	return 1 << p
}

// A CCMode is a value of a compare/capture channel's MODE field.
type CCMode uint8

// The compare/capture channel modes used by this module.
const (
	CCModeOff CCMode = iota
	CCModeCompare
	CCModePWM
)

// NumTimerChannels is the number of compare/capture channels per timer.
const NumTimerChannels = 4

// Timer is the register interface of a TIMER block.
type Timer interface {
	// SetUpCount writes CTRL with up-count mode and the given prescale.
	SetUpCount(p TimerPrescale)

	// Prescale reads the CTRL.PRESC field.
	Prescale() TimerPrescale

	// SetTop writes the counter wrap value.
	SetTop(v uint16)

	// Top reads the counter wrap value.
	Top() uint16

	// Start sets the CMD.START bit.
	Start()

	// Stop sets the CMD.STOP bit.
	Stop()

	// Running reads the STATUS.RUNNING bit.
	Running() bool

	// Count reads the free-running counter.
	Count() uint16

	// SetCCMode writes a channel's MODE field.
	SetCCMode(ch uint8, m CCMode)

	// CCMode reads a channel's MODE field.
	CCModeOf(ch uint8) CCMode

	// SetCompare writes a channel's compare value.
	SetCompare(ch uint8, v uint16)

	// Compare reads a channel's compare value.
	Compare(ch uint8) uint16
}
