// Package reload implements a reload pass: given a function whose values
// already carry a spill/register decision (an Affinity) and whose live
// ranges are known, it walks the function in topological order and inserts
// the concrete fill/spill instructions an ISA backend needs, rewriting
// register-only encodings in place where a spilled value can be consumed
// directly from its stack slot.
//
// The pass itself is ISA-agnostic: it never emits bytes, and it knows
// nothing about any particular instruction set. It drives the function
// through a small set of collaborator interfaces defined in this file,
// mirroring the style of backend/regalloc's own Function/Block/Instr
// interfaces but shaped for what a reload pass (rather than a coloring
// allocator) needs: an instruction's operand list, per-operand encoding
// constraints, and the ability to insert fills ahead of an instruction or
// replace its opcode in place.
package reload

import (
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend"
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc"
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc/bforest"
)

type (
	// Value identifies an SSA-style value inside a Func. The zero Value is
	// never produced by a Func implementation and is reserved as "invalid".
	Value uint32

	// Block identifies a basic block inside a Func. The zero Block is
	// reserved as "invalid".
	Block uint32

	// Inst identifies an instruction inside a Func. The zero Inst is
	// reserved as "invalid" (e.g. "no definition yet", for a dead range).
	Inst uint32

	// Type is the value type carried by a Value; used only to size stack
	// slots and to pick an encoding-appropriate fill/spill opcode.
	Type uint8
)

const (
	ValueInvalid Value = 0
	BlockInvalid Block = 0
	InstInvalid  Inst  = 0
)

const (
	TypeInvalid Type = iota
	TypeI32
	TypeI64
	TypeF32
	TypeF64
	TypeV128
)

// ProgramPoint is an opaque, monotonically increasing position in program
// order: the disjoint union of block headers and instructions. Func
// implementations hand these out via ProgramOrder; callers never construct
// one directly and compare them only with <, <= , ==.
type ProgramPoint uint32

// ProgramOrder totally orders a function's blocks and instructions into a
// single increasing sequence of ProgramPoints, and answers the adjacency
// question the live-range coalescing rule needs.
type ProgramOrder interface {
	// BlockHeader returns the program point just before b's first
	// instruction.
	BlockHeader(b Block) ProgramPoint
	// InstPoint returns the program point of i.
	InstPoint(i Inst) ProgramPoint
	// BlockAt returns the block containing pp.
	BlockAt(pp ProgramPoint) Block
	// IsBlockGap reports whether pp is the last program point of the
	// unique layout predecessor of b, i.e. whether b immediately follows
	// pp's block with nothing in between.
	IsBlockGap(pp ProgramPoint, b Block) bool
}

// DomTree supplies the dominator-tree shape TopoOrder walks.
type DomTree interface {
	// EntryBlock returns the function's unique entry block.
	EntryBlock() Block
	// Children returns b's immediate children in the dominator tree.
	Children(b Block) []Block
}

// OperandConstraint describes how a single operand slot of an instruction
// may be satisfied.
type OperandConstraint uint8

const (
	// ConstraintAny means the operand may be read directly from a stack
	// slot or a register; no fill is required for a spilled value.
	ConstraintAny OperandConstraint = iota
	// ConstraintReg means the operand must be in a register; a spilled
	// value needs a fill inserted before the instruction.
	ConstraintReg
	// ConstraintFixedReg means the operand must be in a specific physical
	// register (e.g. a shift count, or a calling-convention register).
	ConstraintFixedReg
)

// EncInfo answers per-operand encoding questions for a single instruction:
// which use operands require a register and which defined values an
// encoding is capable of writing directly to a stack slot. Ghost
// instructions (no encoding, no ABI constraints) are reported so the pass
// can skip them entirely.
type EncInfo interface {
	// Constraint returns the constraint on the opIdx'th use operand of
	// inst (i.e. Func.Uses(inst)[opIdx]).
	Constraint(inst Inst, opIdx int) OperandConstraint
	// DefProducesRegister reports whether inst's encoding always writes
	// its defIdx'th defined value (Func.Defs(inst)[defIdx]) into a
	// register, i.e. whether a Stack-affinity result needs a spill
	// inserted after inst.
	DefProducesRegister(inst Inst, defIdx int) bool
	// IsGhost reports whether inst has no machine encoding and no ABI
	// constraints; the reload pass skips such instructions entirely.
	IsGhost(inst Inst) bool
}

// ABI supplies the calling-convention facts the reload pass needs at
// function- and call-boundary program points, reusing backend.ABIArg
// directly rather than inventing a parallel location-description type.
type ABI interface {
	// FuncArgs describes where this function's own incoming parameters
	// arrive, in signature order.
	FuncArgs() []backend.ABIArg
	// FuncRets describes where this function's own return values must be
	// placed ahead of a return instruction.
	FuncRets() []backend.ABIArg
	// CallArgs describes where call's arguments must be placed per the
	// callee's signature.
	CallArgs(call Inst) []backend.ABIArg
	// CallRets describes where call's results are produced per the
	// callee's signature.
	CallRets(call Inst) []backend.ABIArg
}

// Func is the top-level collaborator the reload pass drives. An ISA
// backend (or, for tests, the concrete IR in func_ir.go) implements this
// over its own instruction representation.
type Func interface {
	EntryBlock() Block
	ProgramOrder() ProgramOrder
	EncInfo() EncInfo
	ABI() ABI
	StackSlots() *StackSlotAllocator
	// Forest returns the B+-tree forest backing every live range's
	// live-in map in this function; one forest per function, per spec.md
	// §5's ownership model.
	Forest() *bforest.Forest

	// NewValue allocates a fresh value of the given type, used for the
	// pass's own inserted fills, spill sources, and ABI copies.
	NewValue(typ Type) Value
	// ValueType returns v's type.
	ValueType(v Value) Type

	// LiveRange returns the (already-computed) live range of v, or nil if
	// v has none yet.
	LiveRange(v Value) *LiveRange
	// SetLiveRange installs lr as v's live range, for values the pass
	// itself introduces.
	SetLiveRange(v Value, lr *LiveRange)
	// Affinity returns v's Affinity, as decided upstream of this pass
	// (spill/register selection is explicitly out of scope here).
	Affinity(v Value) Affinity
	// SetAffinity assigns v's Affinity; used only for values the pass
	// itself introduces.
	SetAffinity(v Value, a Affinity)
	// ValueLoc returns the concrete location a value occupies once the
	// pass has run (only meaningful after Reload.Run visits its def).
	ValueLoc(v Value) ValueLoc
	SetValueLoc(v Value, loc ValueLoc)

	// Params returns the entry block's formal parameter values, in
	// signature order.
	Params() []Value
	// ReplaceParam replaces the entry block's paramIdx'th parameter value
	// with v.
	ReplaceParam(paramIdx int, v Value)

	// Insts returns b's instructions, in layout order.
	Insts(b Block) []Inst
	// BlockOf returns the block containing i.
	BlockOf(i Inst) Block

	// Defs returns the values i defines (0, 1, or more for a call).
	Defs(i Inst) []Value
	// SetDef rewrites the defIdx'th value i defines to newVal.
	SetDef(i Inst, defIdx int, newVal Value)
	// Uses returns the values i reads, in operand order.
	Uses(i Inst) []Value
	// ReplaceUse rewrites i's opIdx'th use operand to read newVal instead.
	ReplaceUse(i Inst, opIdx int, newVal Value)

	// IsCopy reports whether i is a register-to-register (or
	// stack-to-stack) copy of src into Defs(i)[0].
	IsCopy(i Inst) (src Value, ok bool)
	// IsCall reports whether i is a call instruction.
	IsCall(i Inst) bool
	// IsReturn reports whether i is a function return instruction.
	IsReturn(i Inst) bool

	// ReplaceWithCopyNop rewrites a same-slot copy i into a zero-length
	// copy_nop in place (Step A).
	ReplaceWithCopyNop(i Inst)
	// ReplaceWithFill rewrites the unary copy i, whose single operand is
	// src, into a fill of src in place, preserving i's result slot.
	ReplaceWithFill(i Inst, src Value)
	// ReplaceWithSpill rewrites the unary copy i, whose single operand is
	// src, into a spill of src in place, preserving i's result slot.
	ReplaceWithSpill(i Inst, src Value)

	// InsertFillBefore inserts an instruction before i that loads src
	// (currently on the stack) into a fresh register-resident value, and
	// returns that new value together with the inserted instruction.
	InsertFillBefore(i Inst, src Value) (dst Value, fill Inst)
	// InsertSpillAfter inserts an instruction after i that stores v
	// (currently in a register, just defined by i) into its stack slot,
	// and returns the inserted instruction.
	InsertSpillAfter(i Inst, v Value) (spill Inst)
	// InsertSpillAtBlockHead inserts, as the first instruction of block,
	// an instruction that stores src into dst's stack slot, and returns
	// the inserted instruction. Used only for entry-block parameters that
	// arrive in a register but carry stack affinity.
	InsertSpillAtBlockHead(block Block, dst, src Value) (spill Inst)
	// InsertCopyBefore inserts a copy of src into a fresh, register-
	// resident value before i, and returns that new value together with
	// the inserted instruction. Used by the ABI boundary legalizer for
	// register-bound call arguments/returns.
	InsertCopyBefore(i Inst, src Value, dstReg regalloc.RealReg) (dst Value, copy Inst)
	// InsertStackCopyBefore inserts a copy of src into a fresh value
	// living in slot before i, and returns that new value together with
	// the inserted instruction. Used by the ABI boundary legalizer for
	// stack-bound call arguments/returns.
	InsertStackCopyBefore(i Inst, src Value, slot StackSlot) (dst Value, copy Inst)
}
