package reload

import (
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend"
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc"
	"github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc/bforest"
)

// testValue, testInst and testBlock back testFunc, a minimal, in-package
// IR implementing Func, ProgramOrder, EncInfo, ABI and DomTree. It exists
// solely for this package's own tests, mirroring how backend/regalloc's
// own tests build a throwaway mockFunction/mockBlock/mockInstr rather than
// share a real ISA machine's implementation.
type testValue struct {
	typ      Type
	affinity Affinity
	loc      ValueLoc
	lr       *LiveRange
}

type testInst struct {
	opcode string

	defs []Value
	uses []Value

	isCopy   bool
	isCall   bool
	isReturn bool
	ghost    bool

	useConstraints []OperandConstraint
	defProducesReg []bool

	callArgs []backend.ABIArg
	callRets []backend.ABIArg
}

type testBlock struct {
	insts   []Inst
	domKids []Block
}

type testFunc struct {
	forest *bforest.Forest
	slots  *StackSlotAllocator

	values []testValue
	insts  []testInst
	blocks []testBlock

	blockOfInst     []Block
	blockOrdinal    []int
	blocksByOrdinal []Block

	entry  Block
	params []Value

	funcArgs []backend.ABIArg
	funcRets []backend.ABIArg
}

const (
	blockStride = 100000
	instStride  = 10
)

func newTestFunc() *testFunc {
	return &testFunc{
		forest: bforest.NewForest(),
		slots:  NewStackSlotAllocator(),
		values: make([]testValue, 1), // Value 0 is reserved as invalid.
		insts:  make([]testInst, 1),  // Inst 0 is reserved as invalid.
		blocks: make([]testBlock, 1), // Block 0 is reserved as invalid.
	}
}

// --- construction helpers (test-only builder API) ---

func (f *testFunc) addBlock() Block {
	f.blocks = append(f.blocks, testBlock{})
	b := Block(len(f.blocks) - 1)
	f.blockOrdinal = append(f.blockOrdinal, 0)
	f.blockOrdinal[b] = len(f.blocksByOrdinal)
	f.blocksByOrdinal = append(f.blocksByOrdinal, b)
	return b
}

func (f *testFunc) setEntry(b Block) { f.entry = b }

func (f *testFunc) setDomKids(b Block, kids ...Block) { f.blocks[b].domKids = kids }

func (f *testFunc) newValue(typ Type) Value {
	f.values = append(f.values, testValue{typ: typ})
	return Value(len(f.values) - 1)
}

func (f *testFunc) regValue(typ Type, class regalloc.RegType, loc regalloc.RealReg) Value {
	v := f.newValue(typ)
	f.values[v].affinity = RegAffinity(class)
	f.values[v].loc = RegLoc(loc)
	return v
}

func (f *testFunc) stackValue(typ Type) Value {
	v := f.newValue(typ)
	slot := f.slots.Spill(typ)
	f.values[v].affinity = StackAffinity()
	f.values[v].loc = StackLoc(slot)
	return v
}

func (f *testFunc) defineAt(v Value, block Block, inst Inst) {
	f.values[v].lr = NewLiveRange(v, f.InstPoint(inst), block)
}

func (f *testFunc) defineAtHeader(v Value, block Block) {
	f.values[v].lr = NewLiveRange(v, f.BlockHeader(block), block)
}

// use records, as a test-setup step standing in for a prior liveness
// analysis pass, that v is used by inst inside block.
func (f *testFunc) use(v Value, block Block, inst Inst) {
	lr := f.values[v].lr
	if lr == nil {
		panic("reload/test: value used before it was defined")
	}
	lr.ExtendInBlock(block, f.InstPoint(inst), f, f.forest)
}

func (f *testFunc) newInstRaw(opcode string, block Block, defs, uses []Value) Inst {
	f.insts = append(f.insts, testInst{opcode: opcode, defs: defs, uses: uses})
	id := Inst(len(f.insts) - 1)
	f.blockOfInst = append(f.blockOfInst, block)
	return id
}

func (f *testFunc) addInst(block Block, opcode string, defs, uses []Value) Inst {
	id := f.newInstRaw(opcode, block, defs, uses)
	f.blocks[block].insts = append(f.blocks[block].insts, id)
	return id
}

func (f *testFunc) setUseConstraints(i Inst, cs ...OperandConstraint) {
	f.insts[i].useConstraints = cs
}

func (f *testFunc) setDefProducesReg(i Inst, flags ...bool) {
	f.insts[i].defProducesReg = flags
}

func (f *testFunc) markCopy(i Inst)   { f.insts[i].isCopy = true }
func (f *testFunc) markCall(i Inst)   { f.insts[i].isCall = true }
func (f *testFunc) markReturn(i Inst) { f.insts[i].isReturn = true }
func (f *testFunc) markGhost(i Inst)  { f.insts[i].ghost = true }

func (f *testFunc) setCallABI(i Inst, args, rets []backend.ABIArg) {
	f.insts[i].callArgs, f.insts[i].callRets = args, rets
}

// --- ProgramOrder ---

func (f *testFunc) BlockHeader(b Block) ProgramPoint {
	return ProgramPoint(f.blockOrdinal[b] * blockStride)
}

func (f *testFunc) instIndexInBlock(i Inst) int {
	b := f.blockOfInst[i]
	for idx, ii := range f.blocks[b].insts {
		if ii == i {
			return idx
		}
	}
	panic("reload/test: instruction not found in its recorded block")
}

func (f *testFunc) InstPoint(i Inst) ProgramPoint {
	b := f.blockOfInst[i]
	idx := f.instIndexInBlock(i)
	return ProgramPoint(f.blockOrdinal[b]*blockStride + (idx+1)*instStride)
}

func (f *testFunc) BlockAt(pp ProgramPoint) Block {
	return f.blocksByOrdinal[int(pp)/blockStride]
}

func (f *testFunc) IsBlockGap(pp ProgramPoint, b Block) bool {
	ord := f.blockOrdinal[b]
	if ord == 0 {
		return false
	}
	pred := f.blocksByOrdinal[ord-1]
	predInsts := f.blocks[pred].insts
	if len(predInsts) == 0 {
		return pp == f.BlockHeader(pred)
	}
	return pp == f.InstPoint(predInsts[len(predInsts)-1])
}

// --- DomTree ---

func (f *testFunc) EntryBlock() Block      { return f.entry }
func (f *testFunc) Children(b Block) []Block { return f.blocks[b].domKids }

// --- EncInfo ---

func (f *testFunc) Constraint(inst Inst, opIdx int) OperandConstraint {
	cs := f.insts[inst].useConstraints
	if opIdx < len(cs) {
		return cs[opIdx]
	}
	return ConstraintAny
}

func (f *testFunc) DefProducesRegister(inst Inst, defIdx int) bool {
	ds := f.insts[inst].defProducesReg
	if defIdx < len(ds) {
		return ds[defIdx]
	}
	return false
}

func (f *testFunc) IsGhost(inst Inst) bool { return f.insts[inst].ghost }

// --- ABI ---

func (f *testFunc) FuncArgs() []backend.ABIArg            { return f.funcArgs }
func (f *testFunc) FuncRets() []backend.ABIArg            { return f.funcRets }
func (f *testFunc) CallArgs(call Inst) []backend.ABIArg   { return f.insts[call].callArgs }
func (f *testFunc) CallRets(call Inst) []backend.ABIArg   { return f.insts[call].callRets }

// --- Func ---

func (f *testFunc) ProgramOrder() ProgramOrder           { return f }
func (f *testFunc) EncInfo() EncInfo                     { return f }
func (f *testFunc) ABI() ABI                             { return f }
func (f *testFunc) StackSlots() *StackSlotAllocator      { return f.slots }
func (f *testFunc) Forest() *bforest.Forest              { return f.forest }

func (f *testFunc) NewValue(typ Type) Value { return f.newValue(typ) }
func (f *testFunc) ValueType(v Value) Type  { return f.values[v].typ }

func (f *testFunc) LiveRange(v Value) *LiveRange        { return f.values[v].lr }
func (f *testFunc) SetLiveRange(v Value, lr *LiveRange) { f.values[v].lr = lr }
func (f *testFunc) Affinity(v Value) Affinity           { return f.values[v].affinity }
func (f *testFunc) SetAffinity(v Value, a Affinity)     { f.values[v].affinity = a }
func (f *testFunc) ValueLoc(v Value) ValueLoc           { return f.values[v].loc }
func (f *testFunc) SetValueLoc(v Value, loc ValueLoc)   { f.values[v].loc = loc }

func (f *testFunc) Params() []Value                { return f.params }
func (f *testFunc) ReplaceParam(idx int, v Value)   { f.params[idx] = v }

func (f *testFunc) Insts(b Block) []Inst  { return f.blocks[b].insts }
func (f *testFunc) BlockOf(i Inst) Block  { return f.blockOfInst[i] }

func (f *testFunc) Defs(i Inst) []Value             { return f.insts[i].defs }
func (f *testFunc) SetDef(i Inst, idx int, v Value) { f.insts[i].defs[idx] = v }
func (f *testFunc) Uses(i Inst) []Value             { return f.insts[i].uses }
func (f *testFunc) ReplaceUse(i Inst, idx int, v Value) { f.insts[i].uses[idx] = v }

func (f *testFunc) IsCopy(i Inst) (Value, bool) {
	in := &f.insts[i]
	if in.isCopy && len(in.uses) == 1 {
		return in.uses[0], true
	}
	return ValueInvalid, false
}

func (f *testFunc) IsCall(i Inst) bool   { return f.insts[i].isCall }
func (f *testFunc) IsReturn(i Inst) bool { return f.insts[i].isReturn }

func (f *testFunc) ReplaceWithCopyNop(i Inst) {
	in := &f.insts[i]
	in.opcode, in.isCopy, in.ghost = "copy_nop", false, true
}

func (f *testFunc) ReplaceWithFill(i Inst, src Value) {
	in := &f.insts[i]
	in.opcode, in.uses, in.isCopy = "fill", []Value{src}, false
}

func (f *testFunc) ReplaceWithSpill(i Inst, src Value) {
	in := &f.insts[i]
	in.opcode, in.uses, in.isCopy = "spill", []Value{src}, false
}

func (f *testFunc) insertInstAt(block Block, idx int, id Inst) {
	insts := f.blocks[block].insts
	insts = append(insts, 0)
	copy(insts[idx+1:], insts[idx:])
	insts[idx] = id
	f.blocks[block].insts = insts
}

func (f *testFunc) indexOf(block Block, target Inst) int {
	for idx, v := range f.blocks[block].insts {
		if v == target {
			return idx
		}
	}
	panic("reload/test: instruction not found in its block")
}

func (f *testFunc) InsertFillBefore(i Inst, src Value) (Value, Inst) {
	block := f.blockOfInst[i]
	dst := f.newValue(f.values[src].typ)
	id := f.newInstRaw("fill", block, []Value{dst}, []Value{src})
	f.insertInstAt(block, f.indexOf(block, i), id)
	return dst, id
}

// InsertSpillAfter stores v, a register value just defined by i, into its
// stack slot. The spill itself defines nothing: the original stack-affinity
// value's live range is relocated separately by the caller (moveDef), since
// this IR tracks a value's def site through its LiveRange, not through a
// back-pointer from value to defining instruction.
func (f *testFunc) InsertSpillAfter(i Inst, v Value) Inst {
	block := f.blockOfInst[i]
	id := f.newInstRaw("spill", block, nil, []Value{v})
	f.insertInstAt(block, f.indexOf(block, i)+1, id)
	return id
}

func (f *testFunc) InsertSpillAtBlockHead(block Block, dst, src Value) Inst {
	id := f.newInstRaw("spill", block, []Value{dst}, []Value{src})
	f.insertInstAt(block, 0, id)
	return id
}

func (f *testFunc) InsertCopyBefore(i Inst, src Value, _ regalloc.RealReg) (Value, Inst) {
	block := f.blockOfInst[i]
	dst := f.newValue(f.values[src].typ)
	id := f.newInstRaw("copy", block, []Value{dst}, []Value{src})
	f.insts[id].isCopy = true
	f.insertInstAt(block, f.indexOf(block, i), id)
	return dst, id
}

func (f *testFunc) InsertStackCopyBefore(i Inst, src Value, _ StackSlot) (Value, Inst) {
	block := f.blockOfInst[i]
	dst := f.newValue(f.values[src].typ)
	id := f.newInstRaw("copy", block, []Value{dst}, []Value{src})
	f.insts[id].isCopy = true
	f.insertInstAt(block, f.indexOf(block, i), id)
	return dst, id
}
