package bforest

// Cursor provides ordered, position-based traversal and in-place value
// updates over a Map, on top of the same node storage Get/Insert/Remove
// use. It is the building block for ordered iteration and for callers
// (such as a per-instruction reload candidate map) that repeatedly
// revisit and update the same small ordered set of keys.
type Cursor struct {
	forest *Forest
	root   Map
	cmp    Comparator
	path   []pathEntry
	leaf   uint32
	leafIdx int
}

type pathEntry struct {
	ref uint32
	idx int
}

// Cursor returns a new Cursor over m. The cursor holds onto f and m; call
// Root after any Insert/Remove through the cursor to retrieve the
// (possibly new) root handle.
func (f *Forest) Cursor(m Map, cmp Comparator) *Cursor {
	return &Cursor{forest: f, root: m, cmp: cmp}
}

// Root returns the cursor's current root handle, which may have changed
// from the handle it was constructed with if Insert or Remove caused a
// split, merge, or root collapse.
func (c *Cursor) Root() Map { return c.root }

func (c *Cursor) reset() {
	c.path = c.path[:0]
	c.leaf = 0
	c.leafIdx = 0
}

// GotoFirst positions the cursor at the smallest key, returning false if
// the map is empty.
func (c *Cursor) GotoFirst() bool {
	c.reset()
	ref := uint32(c.root)
	for ref != 0 {
		n := &c.forest.nodes[ref-1]
		if n.kind == kindLeaf {
			c.leaf = ref
			c.leafIdx = 0
			return n.size > 0
		}
		c.path = append(c.path, pathEntry{ref, 0})
		ref = n.children[0]
	}
	return false
}

// Goto positions the cursor at key, returning whether it was found. On a
// miss the cursor is left at the position key would occupy (the smallest
// key greater than it, or invalid if key is greater than everything).
func (c *Cursor) Goto(key uint32) bool {
	c.reset()
	ref := uint32(c.root)
	for ref != 0 {
		n := &c.forest.nodes[ref-1]
		if n.kind == kindLeaf {
			idx, found := leafSearch(n.leafKeys[:n.size], key, c.cmp)
			c.leaf = ref
			c.leafIdx = idx
			return found
		}
		idx := childIndex(n.innerKeys[:n.size], key, c.cmp)
		c.path = append(c.path, pathEntry{ref, idx})
		ref = n.children[idx]
	}
	return false
}

// Valid reports whether the cursor is positioned on an entry.
func (c *Cursor) Valid() bool {
	if c.leaf == 0 {
		return false
	}
	n := &c.forest.nodes[c.leaf-1]
	return c.leafIdx < int(n.size)
}

// Key returns the key at the cursor's current position.
func (c *Cursor) Key() (uint32, bool) {
	if !c.Valid() {
		return 0, false
	}
	n := &c.forest.nodes[c.leaf-1]
	return n.leafKeys[c.leafIdx], true
}

// Value returns the value at the cursor's current position.
func (c *Cursor) Value() (uint32, bool) {
	if !c.Valid() {
		return 0, false
	}
	n := &c.forest.nodes[c.leaf-1]
	return n.leafVals[c.leafIdx], true
}

// SetValue overwrites the value at the cursor's current position without
// touching the key or tree shape.
func (c *Cursor) SetValue(v uint32) bool {
	if !c.Valid() {
		return false
	}
	n := &c.forest.nodes[c.leaf-1]
	n.leafVals[c.leafIdx] = v
	return true
}

// Next advances the cursor to the next key in ascending order, returning
// false if there is none.
func (c *Cursor) Next() bool {
	if c.leaf == 0 {
		return false
	}
	n := &c.forest.nodes[c.leaf-1]
	if c.leafIdx+1 < int(n.size) {
		c.leafIdx++
		return true
	}
	for len(c.path) > 0 {
		top := &c.path[len(c.path)-1]
		top.idx++
		pn := &c.forest.nodes[top.ref-1]
		if top.idx > int(pn.size) {
			c.path = c.path[:len(c.path)-1]
			continue
		}
		ref := pn.children[top.idx]
		for ref != 0 {
			rn := &c.forest.nodes[ref-1]
			if rn.kind == kindLeaf {
				c.leaf = ref
				c.leafIdx = 0
				if rn.size > 0 {
					return true
				}
				ref = 0
				break
			}
			c.path = append(c.path, pathEntry{ref, 0})
			ref = rn.children[0]
		}
		if c.leaf != 0 && c.leafIdx < int(c.forest.nodes[c.leaf-1].size) {
			return true
		}
	}
	c.leaf = 0
	return false
}

// Prev moves the cursor to the previous key in ascending order, returning
// false if there is none.
func (c *Cursor) Prev() bool {
	if c.leaf == 0 {
		return false
	}
	if c.leafIdx > 0 {
		c.leafIdx--
		return true
	}
	for len(c.path) > 0 {
		top := &c.path[len(c.path)-1]
		if top.idx == 0 {
			c.path = c.path[:len(c.path)-1]
			continue
		}
		top.idx--
		pn := &c.forest.nodes[top.ref-1]
		ref := pn.children[top.idx]
		for ref != 0 {
			rn := &c.forest.nodes[ref-1]
			if rn.kind == kindLeaf {
				c.leaf = ref
				c.leafIdx = int(rn.size) - 1
				if rn.size > 0 {
					return true
				}
				ref = 0
				break
			}
			c.path = append(c.path, pathEntry{ref, int(rn.size)})
			ref = rn.children[rn.size]
		}
		if c.leaf != 0 && c.leafIdx >= 0 {
			return true
		}
	}
	c.leaf = 0
	return false
}

// Insert adds or overwrites key/val through the cursor's forest and
// repositions the cursor onto key.
func (c *Cursor) Insert(key, val uint32) {
	c.root = c.forest.Insert(c.root, key, val, c.cmp)
	c.Goto(key)
}

// Remove deletes the entry at the cursor's current key, leaving the
// cursor positioned where that key used to be (i.e. on its successor, or
// invalid if it was the largest key).
func (c *Cursor) Remove() (uint32, bool) {
	key, ok := c.Key()
	if !ok {
		return 0, false
	}
	var val uint32
	c.root, val, ok = c.forest.Remove(c.root, key, c.cmp)
	if !ok {
		return 0, false
	}
	c.Goto(key)
	return val, true
}
