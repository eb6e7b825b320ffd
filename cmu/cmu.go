// Package cmu models the clock management unit: oscillator selection,
// prescaling, and the derivation of every downstream clock frequency.
//
// The clock tree is a small fixed graph rooted at the oscillators. A
// Configure call validates the whole requested configuration against
// that graph before touching a single register, then commits the changes
// in the order the hardware mandates, and finally returns an immutable
// Clocks snapshot for the peripheral drivers to derive their timing
// from.
//
// The package assumes single-owner use: one goroutine configures the
// tree, typically once at startup. Snapshots, being values, are freely
// shareable afterwards.
package cmu

import (
	"log"

	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// hfrcoResetFrequency is the HFRCO band selected at power-on reset.
const hfrcoResetFrequency = 19 * hal.MHz

// auxhfrcoResetFrequency is the AUXHFRCO band selected at power-on
// reset.
const auxhfrcoResetFrequency = 19 * hal.MHz

// defaultPollBudget bounds the busy-wait on an oscillator ready flag and
// on the multiplexer switch status. The CMU is what calibrates the time
// base, so an iteration bound stands in for a wall-clock timeout.
const defaultPollBudget = 10000

// treeState mirrors the committed multiplexer and prescaler settings of
// the clock tree.
type treeState struct {
	hfSource Source
	dbg      Source
	presc    [regs.NumPrescalers]uint32
}

// resetState is the documented power-on state of the clock tree: HFRCO
// driving HFCLK, the debug clock on the AUXHFRCO, no prescaling.
func resetState() treeState {
	return treeState{
		hfSource: HFRCO(),
		dbg:      AUXHFRCO(),
		presc:    [regs.NumPrescalers]uint32{1, 1, 1, 1},
	}
}

// sourceOf returns the selection in force for a domain. Domains without
// a multiplexer always derive from their parent.
func (st *treeState) sourceOf(d Domain) Source {
	switch d {
	case DomainHF:
		return st.hfSource
	case DomainDebug:
		return st.dbg
	}
	return FromParent()
}

// uses reports whether the oscillator still drives some multiplexer in
// this state.
func (st *treeState) uses(o regs.Oscillator) bool {
	if !st.hfSource.derived && st.hfSource.osc == o {
		return true
	}
	if !st.dbg.derived && st.dbg.osc == o {
		return true
	}
	return false
}

// Default returns the Clocks snapshot of the chip's documented
// post-reset configuration. It involves no hardware access and is the
// safe fallback when nothing has been configured.
func Default() Clocks {
	var freqs [NumDomains]hal.Hertz

	for d := Domain(0); d < DomainDebug; d++ {
		freqs[d] = hfrcoResetFrequency
	}
	freqs[DomainDebug] = auxhfrcoResetFrequency

	return newClocks(freqs)
}

// A CMU is the clock tree resolver. It exclusively owns the CMU register
// block for the duration of each Configure call.
type CMU struct {
	regs       regs.CMU
	pollBudget int

	state treeState
	last  Clocks
}

// New creates a resolver over a CMU register block that is in its
// documented reset state.
func New(r regs.CMU) *CMU {
	return &CMU{
		regs:       r,
		pollBudget: defaultPollBudget,
		state:      resetState(),
		last:       Default(),
	}
}

// WithPollBudget sets the iteration bound for ready and switch-status
// polling.
func (c *CMU) WithPollBudget(polls int) *CMU {
	if polls < 1 {
		log.Panic("poll budget must be positive")
	}
	c.pollBudget = polls
	return c
}

// Clocks returns the last known-good snapshot. A failed Configure call
// does not change it.
func (c *CMU) Clocks() Clocks {
	return c.last
}

// Configure validates the requested configuration, programs the
// selection and prescaler registers in the hardware-mandated sequence,
// and returns the snapshot of the resolved tree.
//
// The whole request is validated before anything is committed: on an
// InvalidPrescalerError, UnreachableSourceError, or
// FrequencyOutOfRangeError no register has been written. An
// OscillatorStartTimeoutError can only follow oscillator enable
// commands; the multiplexers are untouched and the previous source keeps
// running.
func (c *CMU) Configure(cfg Config) (Clocks, error) {
	// Merge the request over the current settings, validating structure:
	// prescalers against each domain's legal set, sources against each
	// multiplexer's wiring.
	next, err := c.mergeRequest(cfg)
	if err != nil {
		return Clocks{}, err
	}

	// Resolve frequencies root to leaf using the new parent values, so a
	// domain reconfigured in the same call as its parent sees the parent's
	// new frequency. Nothing is committed if any domain lands out of
	// range.
	freqs, err := c.resolve(next)
	if err != nil {
		return Clocks{}, err
	}

	// Bring up every oscillator the new tree needs before any
	// multiplexer may switch to it.
	if err := c.startOscillator(next.hfSource); err != nil {
		return Clocks{}, err
	}
	if err := c.startOscillator(next.dbg); err != nil {
		return Clocks{}, err
	}

	c.commit(next)

	c.state = next
	c.last = newClocks(freqs)
	return c.last, nil
}

// mergeRequest overlays the request on the committed state. It is pure:
// no register access.
func (c *CMU) mergeRequest(cfg Config) (treeState, error) {
	next := c.state

	for d := Domain(0); d < NumDomains; d++ {
		info := &domainTable[d]

		if s := cfg.sources[d]; s != nil {
			if err := checkSource(d, info, *s); err != nil {
				return next, err
			}
			switch d {
			case DomainHF:
				next.hfSource = *s
			case DomainDebug:
				next.dbg = *s
			}
		}

		if p := cfg.prescs[d]; p != nil {
			if !info.hasPresc || *p < 1 || *p > info.maxPresc {
				return next, &InvalidPrescalerError{Domain: d, Value: *p}
			}
			next.presc[info.prescReg] = *p
		}
	}

	return next, nil
}

func checkSource(d Domain, info *domainInfo, s Source) error {
	if s.derived {
		if !info.canDerive || info.parent == noParent {
			return &UnreachableSourceError{Domain: d, Source: s}
		}
		return nil
	}

	for _, o := range info.mux {
		if o == s.osc {
			return nil
		}
	}
	return &UnreachableSourceError{Domain: d, Source: s}
}

// resolve walks the domain table root to leaf and computes every
// domain's frequency as parent frequency over prescaler, with hardware
// truncation.
func (c *CMU) resolve(st treeState) ([NumDomains]hal.Hertz, error) {
	var freqs [NumDomains]hal.Hertz

	for d := Domain(0); d < NumDomains; d++ {
		info := &domainTable[d]

		var f hal.Hertz
		if src := st.sourceOf(d); src.derived {
			f = freqs[info.parent]
		} else {
			f = c.oscillatorFrequency(src)
		}

		if info.hasPresc {
			f = f.Div(st.presc[info.prescReg])
		}

		if f > info.maxFreq {
			return freqs, &FrequencyOutOfRangeError{
				Domain:    d,
				Frequency: f,
				Max:       info.maxFreq,
			}
		}

		freqs[d] = f
	}

	return freqs, nil
}

// oscillatorFrequency resolves a source's nominal output. The RC
// oscillators are band-tuned, so their frequency comes from the tuning
// register, not from a constant.
func (c *CMU) oscillatorFrequency(s Source) hal.Hertz {
	switch s.osc {
	case regs.HFRCO:
		return c.regs.HFRCOBand().Frequency()
	case regs.AUXHFRCO:
		return c.regs.AUXHFRCOBand().Frequency()
	}
	return s.freq
}

// startOscillator enables the source's oscillator if needed and polls
// its ready flag within the budget. A source that is already ready is a
// no-op.
func (c *CMU) startOscillator(s Source) error {
	if s.derived {
		return nil
	}

	o := s.osc
	if c.regs.OscillatorReady(o) {
		return nil
	}

	if !c.regs.OscillatorEnabled(o) {
		c.regs.EnableOscillator(o)
	}

	for i := 0; i < c.pollBudget; i++ {
		if c.regs.OscillatorReady(o) {
			return nil
		}
	}

	return &OscillatorStartTimeoutError{Oscillator: o, Polls: c.pollBudget}
}

// commit programs the registers whose settings changed, in hardware
// order: for an HFCLK source switch, a safe prescaler is written before
// the multiplexer and the requested one after the switch is confirmed,
// so the downstream domains never see a transient overclock during the
// multiplexer's switching latency.
func (c *CMU) commit(next treeState) {
	cur := &c.state

	finalPresc := next.presc[regs.PrescHF]
	if !next.hfSource.sameSelection(cur.hfSource) {
		safePresc := max(finalPresc, cur.presc[regs.PrescHF])
		if safePresc != cur.presc[regs.PrescHF] {
			c.regs.SetPrescaler(regs.PrescHF, safePresc)
		}

		target := next.hfSource.hfMuxValue()
		c.regs.SelectHFClock(target)
		c.waitHFSwitch(target)

		if finalPresc != safePresc {
			c.regs.SetPrescaler(regs.PrescHF, finalPresc)
		}

		// The source switched away from is turned off unless something
		// else in the new tree still needs it.
		if prev := cur.hfSource.osc; !next.uses(prev) {
			c.regs.DisableOscillator(prev)
		}
	} else if finalPresc != cur.presc[regs.PrescHF] {
		c.regs.SetPrescaler(regs.PrescHF, finalPresc)
	}

	for _, p := range []regs.PrescalerReg{
		regs.PrescCore, regs.PrescPer, regs.PrescExp,
	} {
		if next.presc[p] != cur.presc[p] {
			c.regs.SetPrescaler(p, next.presc[p])
		}
	}

	if !next.dbg.sameSelection(cur.dbg) {
		if next.dbg.derived {
			c.regs.SelectDebugClock(regs.DbgSrcHFCLK)
		} else {
			c.regs.SelectDebugClock(regs.DbgSrcAUXHFRCO)
		}
	}
}

// waitHFSwitch polls the multiplexer status until the new source is
// reported as the one driving HFCLK. Dependent domains must not be
// touched before the switch has completed.
func (c *CMU) waitHFSwitch(target regs.HFClockSource) {
	for i := 0; i < c.pollBudget; i++ {
		if c.regs.HFClockSelected() == target {
			return
		}
	}
	log.Panic("HFCLK multiplexer switch did not complete")
}
