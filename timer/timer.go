// Package timer drives the TIMER blocks: up-counting time base and
// pulse-width modulation on the compare/capture channels.
package timer

import (
	"log"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// defaultTop gives the counter its full 16-bit resolution.
const defaultTop = 0xFFFF

// A Timer is one TIMER block counting up at a prescaled fraction of the
// peripheral clock.
type Timer struct {
	regs regs.Timer

	tick hal.Hertz
	top  uint16
}

// New configures a TIMER block in up-count mode with the given prescale
// and enables its clock gate. The timer is left stopped; call Start.
func New(
	t regs.Timer,
	c regs.CMU,
	gate regs.ClockGate,
	clocks cmu.Clocks,
	p regs.TimerPrescale,
) *Timer {
	perClk, ok := clocks.Frequency(cmu.DomainPer)
	if !ok {
		log.Panicf("snapshot does not cover %v", cmu.DomainPer)
	}

	c.EnableClockGate(gate)

	t.SetUpCount(p)
	t.SetTop(defaultTop)

	return &Timer{
		regs: t,
		tick: perClk.Div(p.Ratio()),
		top:  defaultTop,
	}
}

// Start starts the counter.
func (t *Timer) Start() {
	t.regs.Start()
}

// Stop stops the counter.
func (t *Timer) Stop() {
	t.regs.Stop()
}

// Running reports whether the counter is running.
func (t *Timer) Running() bool {
	return t.regs.Running()
}

// TickFrequency returns the rate the counter advances at.
func (t *Timer) TickFrequency() hal.Hertz {
	return t.tick
}

// OverflowFrequency returns the rate the counter wraps at, which is also
// the PWM output frequency of every channel.
func (t *Timer) OverflowFrequency() hal.Hertz {
	return t.tick.Div(uint32(t.top) + 1)
}

// Count reads the current counter value.
func (t *Timer) Count() uint16 {
	return t.regs.Count()
}

// Channel returns one of the four compare/capture channels.
func (t *Timer) Channel(n uint8) *Channel {
	if n >= regs.NumTimerChannels {
		log.Panicf("timer has no channel %d", n)
	}
	return &Channel{timer: t, n: n}
}

// A Channel is one compare/capture channel of a timer.
type Channel struct {
	timer *Timer
	n     uint8
}

// EnablePWM puts the channel in PWM mode with zero duty. The output
// route must already be configured as a push-pull pin.
func (ch *Channel) EnablePWM(pin hal.DigitalOut) {
	pin.Clear()
	ch.timer.regs.SetCompare(ch.n, 0)
	ch.timer.regs.SetCCMode(ch.n, regs.CCModePWM)
}

// SetDuty sets the high time of the PWM output in counter ticks. Values
// above MaxDuty saturate.
func (ch *Channel) SetDuty(ticks uint16) {
	if ticks > ch.timer.top {
		ticks = ch.timer.top
	}
	ch.timer.regs.SetCompare(ch.n, ticks)
}

// Duty reads back the channel's high time in counter ticks.
func (ch *Channel) Duty() uint16 {
	return ch.timer.regs.Compare(ch.n)
}

// MaxDuty returns the tick count of a fully-high output.
func (ch *Channel) MaxDuty() uint16 {
	return ch.timer.top
}

// Frequency returns the PWM output frequency.
func (ch *Channel) Frequency() hal.Hertz {
	return ch.timer.OverflowFrequency()
}

var _ hal.PWM = (*Channel)(nil)
