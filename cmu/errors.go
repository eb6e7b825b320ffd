package cmu

import (
	"fmt"

	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

// An InvalidPrescalerError reports a prescaler value outside the
// domain's legal set. The request is malformed; retrying it cannot
// succeed.
type InvalidPrescalerError struct {
	Domain Domain
	Value  uint32
}

func (e *InvalidPrescalerError) Error() string {
	return fmt.Sprintf("prescaler %d is not a legal ratio for %v",
		e.Value, e.Domain)
}

// An UnreachableSourceError reports a source that the domain's
// multiplexer is not wired to. The request is malformed; retrying it
// cannot succeed.
type UnreachableSourceError struct {
	Domain Domain
	Source Source
}

func (e *UnreachableSourceError) Error() string {
	return fmt.Sprintf("%v cannot be selected for %v", e.Source, e.Domain)
}

// An OscillatorStartTimeoutError reports an oscillator whose ready flag
// never set within the poll budget. This is the one hardware-dependent
// failure: a flaky crystal may well start on a retry, so callers can
// treat it as retryable, unlike the request-validation errors.
type OscillatorStartTimeoutError struct {
	Oscillator regs.Oscillator
	Polls      int
}

func (e *OscillatorStartTimeoutError) Error() string {
	return fmt.Sprintf("%v did not report ready within %d polls",
		e.Oscillator, e.Polls)
}

// A FrequencyOutOfRangeError reports a resolved domain frequency above
// the domain's rated maximum. Nothing has been committed to hardware
// when it is returned.
type FrequencyOutOfRangeError struct {
	Domain    Domain
	Frequency hal.Hertz
	Max       hal.Hertz
}

func (e *FrequencyOutOfRangeError) Error() string {
	return fmt.Sprintf("%v would run at %v, above its rated %v",
		e.Domain, e.Frequency, e.Max)
}
