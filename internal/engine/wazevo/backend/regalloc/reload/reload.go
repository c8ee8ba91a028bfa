package reload

import (
	"fmt"

	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend"
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc"
)

// reloadCandidate is an input operand whose current argument is
// stack-valued but whose encoding requires a register (spec.md §4.5.2
// Step B).
type reloadCandidate struct {
	opIdx int
	value Value
}

// Reload runs the reload pass over a single function at a time. A single
// Reload may be reused across many functions in the same compilation job
// via Clear, amortizing its internal scratch buffers.
type Reload struct {
	topo       *TopoOrder
	reuse      *ReuseMap
	candidates []reloadCandidate
}

func NewReload() *Reload {
	return &Reload{topo: NewTopoOrder()}
}

// Clear resets Reload's reusable internal buffers between functions.
func (r *Reload) Clear() {
	r.candidates = r.candidates[:0]
	if r.reuse != nil {
		r.reuse.Clear()
	}
}

// Run drives the reload pass over f, per spec.md §4.5: visits every block
// in topological order, handling the entry block's header specially, then
// every non-ghost instruction in layout order.
func (r *Reload) Run(f Func, dom DomTree) error {
	order := f.ProgramOrder()
	if r.reuse == nil {
		r.reuse = NewReuseMap(f.Forest())
	}

	// ABI boundary legalization: assign the entry block's parameters the
	// ValueLoc their incoming-argument ABI implies, ahead of everything
	// else, since visitEntryBlockHeader's register/stack split below
	// depends on it.
	LegalizeEntryParams(f)

	entry := dom.EntryBlock()
	r.topo.Reset(dom)
	for {
		block, ok := r.topo.Next()
		if !ok {
			break
		}
		if block == entry {
			if err := r.visitEntryBlockHeader(f, order); err != nil {
				return err
			}
		}
		if err := r.visitBlock(f, order, block); err != nil {
			return err
		}
	}
	return nil
}

// visitEntryBlockHeader implements spec.md §4.5.1's entry-block handling.
func (r *Reload) visitEntryBlockHeader(f Func, order ProgramOrder) error {
	entry := f.EntryBlock()
	args := f.ABI().FuncArgs()
	params := f.Params()
	if len(params) != len(args) {
		return fmt.Errorf("reload: entry block has %d parameters, signature has %d", len(params), len(args))
	}

	for i, v := range params {
		affinity := f.Affinity(v)
		if affinity.IsUnassigned() {
			return fmt.Errorf("reload: entry parameter %d has unassigned affinity", i)
		}
		arg := args[i]
		if arg.Kind != backend.ABIArgKindReg || !affinity.IsStack() {
			// Reg-with-reg-affinity and Stack-with-stack-affinity both
			// need no rewrite; other combinations are the upstream
			// legalizer's responsibility, not this pass's.
			continue
		}

		typ := f.ValueType(v)
		reg := f.NewValue(typ)
		f.SetAffinity(reg, RegAffinity(arg.Reg.RegType()))
		f.SetValueLoc(reg, RegLoc(arg.Reg.RealReg()))
		bh := order.BlockHeader(entry)
		f.SetLiveRange(reg, NewLiveRange(reg, bh, entry))
		f.ReplaceParam(i, reg)

		spill := f.InsertSpillAtBlockHead(entry, v, reg)
		spillPP := order.InstPoint(spill)

		if err := moveDef(f, v, spillPP); err != nil {
			return fmt.Errorf("reload: entry parameter %d: %w", i, err)
		}
		f.LiveRange(reg).ExtendInBlock(entry, spillPP, order, f.Forest())
	}
	return nil
}

func (r *Reload) visitBlock(f Func, order ProgramOrder, block Block) error {
	for _, inst := range f.Insts(block) {
		if err := r.visitInst(f, order, block, inst); err != nil {
			return err
		}
	}
	return nil
}

// visitInst implements spec.md §4.5.2's per-instruction protocol, Steps
// A through E.
func (r *Reload) visitInst(f Func, order ProgramOrder, block Block, inst Inst) error {
	enc := f.EncInfo()
	if enc.IsGhost(inst) {
		return nil
	}

	// Step A: copy-to-same-slot elision.
	if src, ok := f.IsCopy(inst); ok {
		if defs := f.Defs(inst); len(defs) == 1 {
			dst := defs[0]
			sl, dl := f.ValueLoc(src), f.ValueLoc(dst)
			if sl.IsStack() && dl.IsStack() && sl.Slot == dl.Slot {
				f.ReplaceWithCopyNop(inst)
				return nil
			}
		}
	}

	// ABI boundary legalization: materialize a call's or return's logical
	// arguments/results at their ABI-mandated locations ahead of
	// candidate collection, so Step B only ever sees the legalized
	// operands. This is the data flow LegalizeCall/LegalizeReturn are
	// built for (see abi.go).
	switch {
	case f.IsCall(inst):
		LegalizeCall(f, order, block, inst)
	case f.IsReturn(inst):
		LegalizeReturn(f, order, block, inst)
	}

	// Step B: find reload candidates.
	r.collectCandidates(f, inst)

	// Step C: materialize reloads.
	if err := r.materializeReloads(f, order, block, inst); err != nil {
		return err
	}
	r.reuse.Clear()

	// Steps D & E: spilled defs, including spilled call results.
	return r.handleDefs(f, order, block, inst)
}

func (r *Reload) collectCandidates(f Func, inst Inst) {
	r.candidates = r.candidates[:0]
	uses := f.Uses(inst)
	switch {
	case f.IsCall(inst):
		for i, a := range CallBoundary(f, inst) {
			if i >= len(uses) {
				break
			}
			if a.Kind == backend.ABIArgKindReg && f.Affinity(uses[i]).IsStack() {
				r.candidates = append(r.candidates, reloadCandidate{i, uses[i]})
			}
		}
	case f.IsReturn(inst):
		for i, a := range ReturnBoundary(f, inst) {
			if i >= len(uses) {
				break
			}
			if a.Kind == backend.ABIArgKindReg && f.Affinity(uses[i]).IsStack() {
				r.candidates = append(r.candidates, reloadCandidate{i, uses[i]})
			}
		}
	default:
		enc := f.EncInfo()
		for i, v := range uses {
			if enc.Constraint(inst, i) == ConstraintReg && f.Affinity(v).IsStack() {
				r.candidates = append(r.candidates, reloadCandidate{i, v})
			}
		}
	}
}

func (r *Reload) materializeReloads(f Func, order ProgramOrder, block Block, inst Inst) error {
	if len(r.candidates) == 0 {
		return nil
	}

	// Opportunistic rewrite: a unary copy with exactly one candidate
	// becomes a fill outright.
	if src, ok := f.IsCopy(inst); ok && len(r.candidates) == 1 && r.candidates[0].value == src {
		f.ReplaceWithFill(inst, src)
		return nil
	}

	instPP := order.InstPoint(inst)
	for _, c := range r.candidates {
		filled, ok := r.reuse.Lookup(c.value)
		if !ok {
			var fill Inst
			filled, fill = f.InsertFillBefore(inst, c.value)
			fillPP := order.InstPoint(fill)
			f.SetAffinity(filled, RegAffinity(regClassForType(f.ValueType(c.value))))
			f.SetLiveRange(filled, NewLiveRange(filled, fillPP, block))
			f.LiveRange(filled).ExtendInBlock(block, instPP, order, f.Forest())
			r.reuse.Record(c.value, filled)
		}
		f.ReplaceUse(inst, c.opIdx, filled)
	}
	return nil
}

// handleDefs implements Steps D and E together: a defined value whose
// affinity is Stack but whose encoding (Step D, non-call instructions) or
// ABI-assigned result location (Step E, call instructions) produces it
// directly in a register gets a fresh register-affinity result spliced in
// and spilled immediately afterward.
func (r *Reload) handleDefs(f Func, order ProgramOrder, block Block, inst Inst) error {
	defs := f.Defs(inst)
	isCall := f.IsCall(inst)
	var callRets []backend.ABIArg
	if isCall {
		callRets = f.ABI().CallRets(inst)
	}

	for di, v := range defs {
		if !f.Affinity(v).IsStack() {
			continue
		}

		var regClass regalloc.RegType
		switch {
		case isCall:
			if di >= len(callRets) || callRets[di].Kind != backend.ABIArgKindReg {
				continue
			}
			regClass = callRets[di].Reg.RegType()
		default:
			if !f.EncInfo().DefProducesRegister(inst, di) {
				continue
			}
			regClass = regClassForType(f.ValueType(v))
		}

		if src, ok := f.IsCopy(inst); ok && di == 0 && !isCall {
			f.ReplaceWithSpill(inst, src)
			continue
		}

		typ := f.ValueType(v)
		reg := f.NewValue(typ)
		f.SetAffinity(reg, RegAffinity(regClass))
		instPP := order.InstPoint(inst)
		f.SetLiveRange(reg, NewLiveRange(reg, instPP, block))
		f.SetDef(inst, di, reg)

		spill := f.InsertSpillAfter(inst, reg)
		spillPP := order.InstPoint(spill)

		if err := moveDef(f, v, spillPP); err != nil {
			return fmt.Errorf("reload: def %d of instruction: %w", di, err)
		}
		f.LiveRange(reg).ExtendInBlock(block, spillPP, order, f.Forest())
	}
	return nil
}

// moveDef relocates v's def to newPP, the program point of a spill that
// now produces it, per spec.md §4.3's move_def_locally; a dead value's
// trivial [pp, pp) interval simply follows it.
func moveDef(f Func, v Value, newPP ProgramPoint) error {
	lr := f.LiveRange(v)
	if lr == nil {
		return fmt.Errorf("value %d has no live range", v)
	}
	if lr.IsDead() {
		lr.DefBegin, lr.DefEnd = newPP, newPP
		return nil
	}
	lr.MoveDefLocally(newPP)
	return nil
}

func regClassForType(t Type) regalloc.RegType {
	switch t {
	case TypeF32, TypeF64, TypeV128:
		return regalloc.RegTypeFloat
	default:
		return regalloc.RegTypeInt
	}
}
