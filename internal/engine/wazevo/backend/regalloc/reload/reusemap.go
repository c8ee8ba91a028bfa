package reload

import "github.com/wazevosystems/wazero-core/internal/engine/wazevo/backend/regalloc/bforest"

// ReuseMap remembers, within the scope of a single instruction, which fill
// each spilled operand value was already reloaded into, so a second use of
// the same spilled value by the same instruction reuses the first fill's
// destination instead of emitting a duplicate identical fill (spec's
// "Two uses of one spilled value in the same instruction" scenario). It is
// deliberately per-instruction, not block- or function-scoped: cleared
// after every instruction, per spec's explicit choice not to pursue the
// cross-instruction reuse optimization.
type ReuseMap struct {
	forest *bforest.Forest
	m      bforest.Map
}

func NewReuseMap(forest *bforest.Forest) *ReuseMap {
	return &ReuseMap{forest: forest}
}

// Lookup returns the fill destination previously recorded for src within
// the current instruction, if any.
func (r *ReuseMap) Lookup(src Value) (Value, bool) {
	v, ok := r.forest.Get(r.m, uint32(src), bforest.Natural)
	return Value(v), ok
}

// Record remembers that src was just filled into dst.
func (r *ReuseMap) Record(src, dst Value) {
	r.m = r.forest.Insert(r.m, uint32(src), uint32(dst), bforest.Natural)
}

// Clear empties the map; called once after each instruction is fully
// processed.
func (r *ReuseMap) Clear() {
	r.m = r.forest.Clear(r.m)
}
