package bforest

// Get returns the value stored for key, if any.
func (f *Forest) Get(m Map, key uint32, cmp Comparator) (uint32, bool) {
	ref := uint32(m)
	for ref != 0 {
		n := &f.nodes[ref-1]
		if n.kind == kindLeaf {
			idx, found := leafSearch(n.leafKeys[:n.size], key, cmp)
			if !found {
				return 0, false
			}
			return n.leafVals[idx], true
		}
		ref = n.children[childIndex(n.innerKeys[:n.size], key, cmp)]
	}
	return 0, false
}

// Contains reports whether key is present in m.
func (f *Forest) Contains(m Map, key uint32, cmp Comparator) bool {
	_, ok := f.Get(m, key, cmp)
	return ok
}

// GetOrLess returns the entry with the largest key <= key, if one exists.
func (f *Forest) GetOrLess(m Map, key uint32, cmp Comparator) (gotKey, val uint32, ok bool) {
	ref := uint32(m)
	var fallback uint32
	haveFallback := false
	for ref != 0 {
		n := &f.nodes[ref-1]
		if n.kind == kindLeaf {
			idx, found := leafSearch(n.leafKeys[:n.size], key, cmp)
			if found {
				return n.leafKeys[idx], n.leafVals[idx], true
			}
			if idx > 0 {
				return n.leafKeys[idx-1], n.leafVals[idx-1], true
			}
			if haveFallback {
				v, _ := f.Get(m, fallback, cmp)
				return fallback, v, true
			}
			return 0, 0, false
		}
		idx := childIndex(n.innerKeys[:n.size], key, cmp)
		if idx > 0 {
			fallback = n.innerKeys[idx-1]
			haveFallback = true
		}
		ref = n.children[idx]
	}
	return 0, 0, false
}

// Insert adds or overwrites the value stored for key, returning the
// (possibly new) root handle; the caller must retain this return value.
func (f *Forest) Insert(m Map, key, val uint32, cmp Comparator) Map {
	if m == 0 {
		ref := f.allocNode(kindLeaf)
		n := &f.nodes[ref-1]
		n.size = 1
		n.leafKeys[0] = key
		n.leafVals[0] = val
		return Map(ref)
	}
	sk, sr, split := f.insert(uint32(m), key, val, cmp)
	if !split {
		return m
	}
	newRoot := f.allocNode(kindInner)
	n := &f.nodes[newRoot-1]
	n.size = 1
	n.innerKeys[0] = sk
	n.children[0] = uint32(m)
	n.children[1] = sr
	return Map(newRoot)
}

// Remove deletes key from m if present, returning the (possibly new) root
// handle, the removed value, and whether it was found.
func (f *Forest) Remove(m Map, key uint32, cmp Comparator) (Map, uint32, bool) {
	if m == 0 {
		return m, 0, false
	}
	val, found, _ := f.remove(uint32(m), key, cmp, true)
	if !found {
		return m, 0, false
	}
	ref := uint32(m)
	for {
		n := &f.nodes[ref-1]
		if n.kind == kindInner && n.size == 0 {
			child := n.children[0]
			f.freeNode(ref)
			ref = child
			if ref == 0 {
				break
			}
			continue
		}
		break
	}
	if ref != 0 {
		n := &f.nodes[ref-1]
		if n.kind == kindLeaf && n.size == 0 {
			f.freeNode(ref)
			ref = 0
		}
	}
	return Map(ref), val, true
}

// Clear discards m's storage, returning the empty Map.
func (f *Forest) Clear(m Map) Map {
	f.free(uint32(m))
	return Map(0)
}

func (f *Forest) free(ref uint32) {
	if ref == 0 {
		return
	}
	n := &f.nodes[ref-1]
	if n.kind == kindInner {
		size := int(n.size)
		children := make([]uint32, size+1)
		copy(children, n.children[:size+1])
		for _, c := range children {
			f.free(c)
		}
	}
	f.freeNode(ref)
}

// Iterate calls fn for every (key, value) pair in m in ascending key
// order. fn must not mutate f.
func (f *Forest) Iterate(m Map, fn func(key, val uint32) bool) {
	f.iterate(uint32(m), fn)
}

func (f *Forest) iterate(ref uint32, fn func(key, val uint32) bool) bool {
	if ref == 0 {
		return true
	}
	n := &f.nodes[ref-1]
	if n.kind == kindLeaf {
		for i := 0; i < int(n.size); i++ {
			if !fn(n.leafKeys[i], n.leafVals[i]) {
				return false
			}
		}
		return true
	}
	for i := 0; i <= int(n.size); i++ {
		if !f.iterate(n.children[i], fn) {
			return false
		}
	}
	return true
}

// Retain rebuilds m keeping only entries for which keep returns a true
// second result, using newVal as the (possibly updated) stored value.
func (f *Forest) Retain(m Map, cmp Comparator, keep func(key, val uint32) (newVal uint32, ok bool)) Map {
	type pair struct{ k, v uint32 }
	var kept []pair
	f.Iterate(m, func(k, v uint32) bool {
		if nv, ok := keep(k, v); ok {
			kept = append(kept, pair{k, nv})
		}
		return true
	})
	f.Clear(m)
	var out Map
	for _, p := range kept {
		out = f.Insert(out, p.k, p.v, cmp)
	}
	return out
}

// Len returns the number of entries in m. This walks the whole tree and
// is O(n); callers on a hot path should track counts themselves.
func (f *Forest) Len(m Map) int {
	n := 0
	f.Iterate(m, func(uint32, uint32) bool { n++; return true })
	return n
}
