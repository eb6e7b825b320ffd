package recording

import "github.com/openmcu/gecko/devsim"

// traceTable is the table register accesses are recorded into.
const traceTable = "register_accesses"

// A traceEntry is one row of the register-access table.
type traceEntry struct {
	Seq      uint64
	Block    string
	Register string
	Op       string
	Value    uint32
}

// A RegisterTrace is a device hook that records every register access
// into a Recorder table.
type RegisterTrace struct {
	rec Recorder
}

// NewRegisterTrace creates the trace and its table. Attach it with the
// device's AcceptHook.
func NewRegisterTrace(rec Recorder) *RegisterTrace {
	rec.CreateTable(traceTable, traceEntry{})
	return &RegisterTrace{rec: rec}
}

// Func records one access.
func (t *RegisterTrace) Func(a devsim.Access) {
	t.rec.Insert(traceTable, traceEntry{
		Seq:      a.Seq,
		Block:    a.Block,
		Register: a.Register,
		Op:       a.Op.String(),
		Value:    a.Value,
	})
}

var _ devsim.Hook = (*RegisterTrace)(nil)
