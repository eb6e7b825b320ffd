package devsim

// An AccessOp tells whether a register access was a read or a write.
type AccessOp uint8

// The register access operations.
const (
	OpRead AccessOp = iota
	OpWrite
)

func (o AccessOp) String() string {
	if o == OpRead {
		return "R"
	}
	return "W"
}

// An Access describes one register access performed on the simulated
// device.
type Access struct {
	Seq      uint64
	Block    string
	Register string
	Op       AccessOp
	Value    uint32
}

// A Hook is a short piece of program that the device invokes on every
// register access.
type Hook interface {
	// Func determines what to do when the hook is invoked.
	Func(a Access)
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(h Hook)
}

// A hookableBase provides the hook bookkeeping for the device.
type hookableBase struct {
	hooks []Hook
	seq   uint64
}

// AcceptHook registers a hook.
func (h *hookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// invokeHook delivers one access to every registered hook, stamping it
// with the next sequence number.
func (h *hookableBase) invokeHook(a Access) {
	h.seq++
	a.Seq = h.seq

	for _, hook := range h.hooks {
		hook.Func(a)
	}
}
