package reload

import "github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc/bforest"

// LiveRange is the liveness record of a single value: a single local
// interval [defBegin, defEnd) in the value's defining block, plus a
// bforest.Map of "coalesced runs" recording every other block the value is
// live through or into, keyed by the run's starting block and valued by
// the run's local end point in its last block.
//
// A run spanning blocks B1, B2, B3 (the value flows through B2 live the
// whole time and is last used partway through B3) is stored as a single
// entry {key: B1, value: <point in B3>} rather than three separate
// entries - see ExtendInBlock's coalescing rule, ported from the
// liveness-interval representation used by cranelift's register allocator.
type LiveRange struct {
	Value    Value
	Affinity Affinity

	DefBegin ProgramPoint
	DefEnd   ProgramPoint

	defBlock Block
	liveins  bforest.Map
}

// NewLiveRange starts a new, initially-dead live range for v, defined at
// definedAt inside block.
func NewLiveRange(v Value, definedAt ProgramPoint, block Block) *LiveRange {
	return &LiveRange{Value: v, DefBegin: definedAt, DefEnd: definedAt, defBlock: block}
}

// IsDead reports whether v's def is never used: its def interval is empty.
func (lr *LiveRange) IsDead() bool { return lr.DefBegin == lr.DefEnd }

func liveInComparator(order ProgramOrder) bforest.Comparator {
	return func(a, b uint32) int {
		pa, pb := order.BlockHeader(Block(a)), order.BlockHeader(Block(b))
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	}
}

// ExtendInBlock records that v is live up to toInst somewhere in block,
// growing the live range as needed. It reports whether a brand new
// live-in interval was created (as opposed to extending an existing one),
// which the reload pass uses to decide whether block's predecessors still
// need to be visited to propagate the extension further back.
func (lr *LiveRange) ExtendInBlock(block Block, toInst ProgramPoint, order ProgramOrder, forest *bforest.Forest) bool {
	cmp := liveInComparator(order)
	blockKey := uint32(block)

	// Case 1: toInst falls inside the defining block, at or after the def.
	if block == lr.defBlock && toInst >= lr.DefBegin {
		if toInst > lr.DefEnd {
			lr.DefEnd = toInst
		}
		return false
	}

	// Case 2: an interval is already keyed exactly at this block.
	if end, ok := forest.Get(lr.liveins, blockKey, cmp); ok {
		if toInst > ProgramPoint(end) {
			lr.liveins = forest.Insert(lr.liveins, blockKey, uint32(toInst), cmp)
		}
		return false
	}

	priorKey, priorEnd, havePrior := forest.GetOrLess(lr.liveins, blockKey, cmp)

	// Case 3: an existing coalesced run starting before block already
	// reaches into it (its local end is past block's header).
	if havePrior && ProgramPoint(priorEnd) >= order.BlockHeader(block) {
		if toInst > ProgramPoint(priorEnd) {
			lr.liveins = forest.Insert(lr.liveins, priorKey, uint32(toInst), cmp)
		}
		return false
	}

	// Case 4: a genuinely new interval. Coalesce backward into the prior
	// run if it ends exactly at the layout gap before block, and forward
	// into the next run if our new end lands exactly at the gap before
	// it.
	key, end := blockKey, toInst
	if havePrior && order.IsBlockGap(ProgramPoint(priorEnd), block) {
		key = priorKey
	}

	c := forest.Cursor(lr.liveins, cmp)
	c.Goto(blockKey)
	if nextKey, ok := c.Key(); ok {
		nextEnd, _ := c.Value()
		if order.IsBlockGap(toInst, Block(nextKey)) {
			if ProgramPoint(nextEnd) > end {
				end = ProgramPoint(nextEnd)
			}
			lr.liveins, _, _ = forest.Remove(lr.liveins, nextKey, cmp)
		}
	}

	lr.liveins = forest.Insert(lr.liveins, key, uint32(end), cmp)
	return true
}

// IsLiveIn reports whether v is live at the top of block, i.e. block lies
// strictly inside some live-in run (not just abutting its start).
func (lr *LiveRange) IsLiveIn(block Block, order ProgramOrder, forest *bforest.Forest) bool {
	end, ok := lr.LiveInLocalEnd(block, order, forest)
	return ok && end > order.BlockHeader(block)
}

// LiveInLocalEnd returns the local end point of the live-in run covering
// block, if any.
func (lr *LiveRange) LiveInLocalEnd(block Block, order ProgramOrder, forest *bforest.Forest) (ProgramPoint, bool) {
	cmp := liveInComparator(order)
	_, end, ok := forest.GetOrLess(lr.liveins, uint32(block), cmp)
	if !ok {
		return 0, false
	}
	return ProgramPoint(end), true
}

// OverlapsDef reports whether pp, inside block, falls within v's def
// interval (a dead range overlaps only its exact def point).
func (lr *LiveRange) OverlapsDef(pp ProgramPoint, block Block) bool {
	if block != lr.defBlock {
		return false
	}
	if lr.IsDead() {
		return pp == lr.DefBegin
	}
	return pp >= lr.DefBegin && pp < lr.DefEnd
}

// ReachesUse reports whether v is live at program point user inside block:
// either user falls strictly after the def point and at or before the def
// end (a use in the defining block), or block is covered by a live-in run
// reaching at least as far as user.
func (lr *LiveRange) ReachesUse(user ProgramPoint, block Block, order ProgramOrder, forest *bforest.Forest) bool {
	if block == lr.defBlock && user > lr.DefBegin && user <= lr.DefEnd {
		return true
	}
	end, ok := lr.LiveInLocalEnd(block, order, forest)
	return ok && user <= end
}

// KilledAt reports whether user is exactly the last point v is live at,
// inside block.
func (lr *LiveRange) KilledAt(user ProgramPoint, block Block, order ProgramOrder, forest *bforest.Forest) bool {
	if block == lr.defBlock && user == lr.DefEnd {
		return true
	}
	end, ok := lr.LiveInLocalEnd(block, order, forest)
	return ok && user == end
}

// MoveDefLocally relocates v's def point within its own defining block,
// used when the reload pass rewrites a def in place (e.g. legalizing a
// multi-value call's results). newPP must not be later than the current
// def end.
func (lr *LiveRange) MoveDefLocally(newPP ProgramPoint) {
	if newPP > lr.DefEnd {
		panic("reload: MoveDefLocally requires newPP <= DefEnd")
	}
	lr.DefBegin = newPP
}
