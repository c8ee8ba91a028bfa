package reload

import (
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend"
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/ssa"
)

func typeFromABI(t ssa.Type) Type {
	switch {
	case t == ssa.TypeI32:
		return TypeI32
	case t == ssa.TypeI64:
		return TypeI64
	case t == ssa.TypeF32:
		return TypeF32
	case t == ssa.TypeF64:
		return TypeF64
	default:
		return TypeInvalid
	}
}

// LegalizeEntryParams assigns each of f's entry-block parameters the
// Affinity and initial ValueLoc implied by f's own incoming-argument ABI:
// register-passed parameters start out register-resident, stack-passed
// parameters start out living in their incoming-argument stack slot. This
// is the reload pass's substitute for a dedicated "function prologue"
// instruction: the entry block's parameters simply already have a location
// by the time Reload.Run visits the entry block.
func LegalizeEntryParams(f Func) {
	args := f.ABI().FuncArgs()
	params := f.Params()
	slots := f.StackSlots()
	for i, v := range params {
		if i >= len(args) {
			continue
		}
		assignArgLoc(f, slots, v, args[i])
	}
}

func assignArgLoc(f Func, slots *StackSlotAllocator, v Value, arg backend.ABIArg) {
	if arg.Kind == backend.ABIArgKindReg {
		if f.Affinity(v).IsStack() {
			// v arrives in a register but is decided to live on the
			// stack for the rest of the function; visitEntryBlockHeader
			// splits this case by introducing a separate register-
			// resident value for the arrival register (see its
			// RegLoc(arg.Reg.RealReg()) assignment) and spilling it into
			// v's own stack slot. v's ValueLoc already names that slot
			// and must not be overwritten here.
			return
		}
		f.SetValueLoc(v, RegLoc(arg.Reg.RealReg()))
	} else {
		slot := slots.Incoming(typeFromABI(arg.Type), int32(arg.Offset))
		f.SetValueLoc(v, StackLoc(slot))
	}
}

// CallBoundary walks a call instruction's callee-signature argument
// locations, per spec.md §4.5.2 Step B's requirement that call
// instructions have their callee signature's arguments walked alongside
// their ordinary register uses. Shared by LegalizeCall (the full legalize)
// and the reload pass's own candidate collection (the register-bound
// subset only).
func CallBoundary(f Func, call Inst) []backend.ABIArg {
	return f.ABI().CallArgs(call)
}

// ReturnBoundary is CallBoundary's counterpart for a return instruction's
// signature-assigned result locations, per spec.md §4.5.2 Step B's last
// sentence.
func ReturnBoundary(f Func, ret Inst) []backend.ABIArg {
	return f.ABI().FuncRets()
}

// LegalizeCall rewrites call's logical argument list into the ABI's
// concrete sequence: every argument the callee's signature places on the
// stack is copied into this function's outgoing-argument area ahead of the
// call, and every argument placed in a register is moved there directly
// (the reload pass's ordinary fill machinery still applies to
// register-bound arguments that are spilled at the point of call).
func LegalizeCall(f Func, order ProgramOrder, block Block, call Inst) {
	args := CallBoundary(f, call)
	uses := f.Uses(call)
	slots := f.StackSlots()
	for i, u := range uses {
		if i >= len(args) {
			break
		}
		legalizeArg(f, order, block, slots, call, i, u, args[i])
	}
}

// LegalizeReturn splits a logical multi-result return instruction's
// operands across the ABI's concrete return locations, mirroring
// LegalizeCall on the producing side: every returned value the function's
// own signature places in a register is moved there, and every value
// placed on the stack is copied into the return-value area ahead of the
// return.
func LegalizeReturn(f Func, order ProgramOrder, block Block, ret Inst) {
	rets := ReturnBoundary(f, ret)
	uses := f.Uses(ret)
	slots := f.StackSlots()
	for i, u := range uses {
		if i >= len(rets) {
			break
		}
		legalizeArg(f, order, block, slots, ret, i, u, rets[i])
	}
}

// legalizeArg inserts, immediately before boundary, a copy of u into the
// location arg demands, rewrites boundary's opIdx'th use to the copy, and
// gives the copy a fresh live range spanning from the copy to boundary.
func legalizeArg(f Func, order ProgramOrder, block Block, slots *StackSlotAllocator, boundary Inst, opIdx int, u Value, arg backend.ABIArg) {
	var copied Value
	var copyInst Inst
	if arg.Kind == backend.ABIArgKindStack {
		slot := slots.Outgoing(typeFromABI(arg.Type), int32(arg.Offset))
		copied, copyInst = f.InsertStackCopyBefore(boundary, u, slot)
		f.SetValueLoc(copied, StackLoc(slot))
		f.SetAffinity(copied, StackAffinity())
	} else {
		copied, copyInst = f.InsertCopyBefore(boundary, u, arg.Reg.RealReg())
		f.SetValueLoc(copied, RegLoc(arg.Reg.RealReg()))
		f.SetAffinity(copied, RegAffinity(arg.Reg.RegType()))
	}
	copyPP := order.InstPoint(copyInst)
	f.SetLiveRange(copied, NewLiveRange(copied, copyPP, block))
	f.LiveRange(copied).ExtendInBlock(block, order.InstPoint(boundary), order, f.Forest())
	f.ReplaceUse(boundary, opIdx, copied)
}
