package reload

import "github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc"

// AffinityKind is the tag of an Affinity.
type AffinityKind uint8

const (
	// AffinityUnassigned means spill/register selection hasn't run yet; a
	// value must never reach the reload pass with this affinity.
	AffinityUnassigned AffinityKind = iota
	// AffinityReg means the value should live in a register of the given
	// class whenever it is live; the reload pass fills it out of its
	// stack slot on each use and spills it after its def.
	AffinityReg
	// AffinityStack means the value should live in its stack slot for its
	// entire lifetime; the reload pass never allocates it a register,
	// only fills it transiently for uses that require one.
	AffinityStack
)

// Affinity records the spill/register decision made for a value upstream
// of this pass (that decision itself is out of scope here; see spec §4.3).
type Affinity struct {
	Kind  AffinityKind
	Class regalloc.RegType // meaningful only when Kind == AffinityReg.
}

func RegAffinity(class regalloc.RegType) Affinity { return Affinity{Kind: AffinityReg, Class: class} }

func StackAffinity() Affinity { return Affinity{Kind: AffinityStack} }

func (a Affinity) IsReg() bool        { return a.Kind == AffinityReg }
func (a Affinity) IsStack() bool      { return a.Kind == AffinityStack }
func (a Affinity) IsUnassigned() bool { return a.Kind == AffinityUnassigned }

// ValueLocKind is the tag of a ValueLoc.
type ValueLocKind uint8

const (
	ValueLocUnassigned ValueLocKind = iota
	ValueLocReg
	ValueLocStack
)

// ValueLoc is the concrete location a value occupies at a particular
// program point, as opposed to Affinity's longer-lived policy decision. A
// stack-affinity value transiently has a register ValueLoc while filled for
// a single instruction; a register-affinity value has a register ValueLoc
// everywhere it's live.
type ValueLoc struct {
	Kind ValueLocKind
	Reg  regalloc.RealReg // meaningful only when Kind == ValueLocReg.
	Slot StackSlot        // meaningful only when Kind == ValueLocStack.
}

func RegLoc(r regalloc.RealReg) ValueLoc { return ValueLoc{Kind: ValueLocReg, Reg: r} }

func StackLoc(s StackSlot) ValueLoc { return ValueLoc{Kind: ValueLocStack, Slot: s} }

func (l ValueLoc) IsReg() bool   { return l.Kind == ValueLocReg }
func (l ValueLoc) IsStack() bool { return l.Kind == ValueLocStack }

// StackSlot names a function-frame storage location. The zero StackSlot is
// reserved as "invalid".
type StackSlot uint32

const StackSlotInvalid StackSlot = 0

// StackSlotCategory distinguishes the three kinds of stack slot a function
// frame holds, per spec.md §3's stack-slot taxonomy.
type StackSlotCategory uint8

const (
	// StackSlotIncomingArg is a caller-provided argument slot; requesting
	// the same (type, offset) pair twice returns the same slot.
	StackSlotIncomingArg StackSlotCategory = iota
	// StackSlotOutgoingArg is a callee-bound argument slot in this
	// function's own outgoing-call area; same dedup rule as incoming.
	StackSlotOutgoingArg
	// StackSlotSpill is a compiler-allocated spill slot for a
	// register-affinity value that has temporarily lost its register, or
	// for any stack-affinity value's permanent home. Each request
	// allocates a fresh slot.
	StackSlotSpill
)

type stackSlotKey struct {
	category StackSlotCategory
	typ      Type
	offset   int32
}

// StackSlotAllocator hands out StackSlots, deduplicating incoming/outgoing
// argument slot requests by (category, type, offset) and always minting a
// fresh slot for spill requests.
type StackSlotAllocator struct {
	keys      []stackSlotKey
	byArgKey  map[stackSlotKey]StackSlot
	nextSpill uint32
}

func NewStackSlotAllocator() *StackSlotAllocator {
	return &StackSlotAllocator{byArgKey: make(map[stackSlotKey]StackSlot)}
}

func (a *StackSlotAllocator) Incoming(typ Type, offset int32) StackSlot {
	return a.argSlot(stackSlotKey{StackSlotIncomingArg, typ, offset})
}

func (a *StackSlotAllocator) Outgoing(typ Type, offset int32) StackSlot {
	return a.argSlot(stackSlotKey{StackSlotOutgoingArg, typ, offset})
}

func (a *StackSlotAllocator) Spill(typ Type) StackSlot {
	a.nextSpill++
	return a.newSlot(stackSlotKey{StackSlotSpill, typ, int32(a.nextSpill)})
}

func (a *StackSlotAllocator) argSlot(k stackSlotKey) StackSlot {
	if s, ok := a.byArgKey[k]; ok {
		return s
	}
	s := a.newSlot(k)
	a.byArgKey[k] = s
	return s
}

func (a *StackSlotAllocator) newSlot(k stackSlotKey) StackSlot {
	a.keys = append(a.keys, k)
	return StackSlot(len(a.keys))
}

// Category and Type return the key a slot was allocated under.
func (a *StackSlotAllocator) Category(s StackSlot) StackSlotCategory { return a.keys[s-1].category }
func (a *StackSlotAllocator) Type(s StackSlot) Type                  { return a.keys[s-1].typ }

func (a *StackSlotAllocator) Len() int { return len(a.keys) }
