package devsim

import (
	"fmt"
	"log"

	"github.com/openmcu/gecko/regs"
)

// TimerRegs is a simulated TIMER block. The counter does not advance on
// its own; tests that care about counting set it through Tick.
type TimerRegs struct {
	dev   *Device
	block string

	prescale regs.TimerPrescale
	top      uint16
	count    uint16
	running  bool

	ccMode    [regs.NumTimerChannels]regs.CCMode
	ccCompare [regs.NumTimerChannels]uint16
}

func newTimerRegs(dev *Device, block string) *TimerRegs {
	return &TimerRegs{dev: dev, block: block, top: 0xFFFF}
}

func (t *TimerRegs) checkChannel(ch uint8) {
	if ch >= regs.NumTimerChannels {
		log.Panicf("%s has no channel %d", t.block, ch)
	}
}

// Tick advances the counter by n prescaled ticks, wrapping at TOP.
func (t *TimerRegs) Tick(n uint32) {
	if !t.running {
		return
	}
	span := uint32(t.top) + 1
	t.count = uint16((uint32(t.count) + n) % span)
}

// SetUpCount writes CTRL with up-count mode and the given prescale.
func (t *TimerRegs) SetUpCount(p regs.TimerPrescale) {
	t.dev.write(t.block, "CTRL.MODE_PRESC", uint32(p))
	t.prescale = p
}

// Prescale reads the CTRL.PRESC field.
func (t *TimerRegs) Prescale() regs.TimerPrescale {
	return regs.TimerPrescale(t.dev.read(
		t.block, "CTRL.PRESC", uint32(t.prescale)))
}

// SetTop writes the counter wrap value.
func (t *TimerRegs) SetTop(v uint16) {
	t.dev.write(t.block, "TOP.TOP", uint32(v))
	t.top = v
}

// Top reads the counter wrap value.
func (t *TimerRegs) Top() uint16 {
	return uint16(t.dev.read(t.block, "TOP.TOP", uint32(t.top)))
}

// Start sets the CMD.START bit.
func (t *TimerRegs) Start() {
	t.dev.write(t.block, "CMD.START", 1)
	t.running = true
}

// Stop sets the CMD.STOP bit.
func (t *TimerRegs) Stop() {
	t.dev.write(t.block, "CMD.STOP", 1)
	t.running = false
}

// Running reads the STATUS.RUNNING bit.
func (t *TimerRegs) Running() bool {
	v := uint32(0)
	if t.running {
		v = 1
	}
	return t.dev.read(t.block, "STATUS.RUNNING", v) != 0
}

// Count reads the free-running counter.
func (t *TimerRegs) Count() uint16 {
	return uint16(t.dev.read(t.block, "CNT.CNT", uint32(t.count)))
}

// SetCCMode writes a channel's MODE field.
func (t *TimerRegs) SetCCMode(ch uint8, m regs.CCMode) {
	t.checkChannel(ch)
	t.dev.write(t.block, fmt.Sprintf("CC%d_CTRL.MODE", ch), uint32(m))
	t.ccMode[ch] = m
}

// CCModeOf reads a channel's MODE field.
func (t *TimerRegs) CCModeOf(ch uint8) regs.CCMode {
	t.checkChannel(ch)
	return regs.CCMode(t.dev.read(
		t.block, fmt.Sprintf("CC%d_CTRL.MODE", ch), uint32(t.ccMode[ch])))
}

// SetCompare writes a channel's compare value.
func (t *TimerRegs) SetCompare(ch uint8, v uint16) {
	t.checkChannel(ch)
	t.dev.write(t.block, fmt.Sprintf("CC%d_CCV.CCV", ch), uint32(v))
	t.ccCompare[ch] = v
}

// Compare reads a channel's compare value.
func (t *TimerRegs) Compare(ch uint8) uint16 {
	t.checkChannel(ch)
	return uint16(t.dev.read(
		t.block, fmt.Sprintf("CC%d_CCV.CCV", ch), uint32(t.ccCompare[ch])))
}
