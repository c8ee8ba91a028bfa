package bforest

// This file implements the node-level split/merge/redistribute primitives.
// Every helper here operates on node refs (1+index into Forest.nodes) and
// assumes the caller already re-fetches any *node pointer after a call
// that might grow f.nodes (allocNode), since append can move the backing
// array.

// leafInsert inserts (key, val) into the leaf at ref, splitting it if full.
// If the key is already present, its value is overwritten and split is
// false. On split, the returned node is the new right sibling and
// splitKey is its first key (the separator to insert into the parent).
func (f *Forest) leafInsert(ref uint32, key, val uint32, cmp Comparator) (splitKey uint32, splitRef uint32, split bool) {
	n := &f.nodes[ref-1]
	idx, found := leafSearch(n.leafKeys[:n.size], key, cmp)
	if found {
		n.leafVals[idx] = val
		return
	}
	size := int(n.size)
	if size < leafFanout {
		copy(n.leafKeys[idx+1:size+1], n.leafKeys[idx:size])
		copy(n.leafVals[idx+1:size+1], n.leafVals[idx:size])
		n.leafKeys[idx] = key
		n.leafVals[idx] = val
		n.size++
		return
	}

	var allKeys [leafFanout + 1]uint32
	var allVals [leafFanout + 1]uint32
	copy(allKeys[:idx], n.leafKeys[:idx])
	copy(allVals[:idx], n.leafVals[:idx])
	allKeys[idx] = key
	allVals[idx] = val
	copy(allKeys[idx+1:], n.leafKeys[idx:leafFanout])
	copy(allVals[idx+1:], n.leafVals[idx:leafFanout])

	pos := splitPos(leafFanout, idx)
	newRef := f.allocNode(kindLeaf)
	n = &f.nodes[ref-1]
	nn := &f.nodes[newRef-1]

	n.size = uint8(pos)
	copy(n.leafKeys[:pos], allKeys[:pos])
	copy(n.leafVals[:pos], allVals[:pos])

	nn.size = uint8(leafFanout + 1 - pos)
	copy(nn.leafKeys[:nn.size], allKeys[pos:])
	copy(nn.leafVals[:nn.size], allVals[pos:])

	return nn.leafKeys[0], newRef, true
}

// innerInsertAt inserts separator key at position idx and child ref at
// position idx+1 into the inner node at ref (the child at idx itself is
// the left half of a just-split subtree; child is its new right half),
// splitting ref if it is already full.
func (f *Forest) innerInsertAt(ref uint32, idx int, key, child uint32) (splitKey uint32, splitRef uint32, split bool) {
	n := &f.nodes[ref-1]
	size := int(n.size)
	if size < innerFanout-1 {
		copy(n.innerKeys[idx+1:size+1], n.innerKeys[idx:size])
		copy(n.children[idx+2:size+2], n.children[idx+1:size+1])
		n.innerKeys[idx] = key
		n.children[idx+1] = child
		n.size++
		return
	}

	var allKeys [innerFanout]uint32
	var allChildren [innerFanout + 1]uint32
	copy(allKeys[:idx], n.innerKeys[:idx])
	allKeys[idx] = key
	copy(allKeys[idx+1:], n.innerKeys[idx:size])

	copy(allChildren[:idx+1], n.children[:idx+1])
	allChildren[idx+1] = child
	copy(allChildren[idx+2:], n.children[idx+1:size+1])

	totalKeys := size + 1 // == innerFanout
	pos := splitPos(totalKeys, idx)
	newRef := f.allocNode(kindInner)
	n = &f.nodes[ref-1]
	nn := &f.nodes[newRef-1]

	n.size = uint8(pos)
	copy(n.innerKeys[:pos], allKeys[:pos])
	copy(n.children[:pos+1], allChildren[:pos+1])

	rightKeys := totalKeys - pos - 1
	nn.size = uint8(rightKeys)
	copy(nn.innerKeys[:rightKeys], allKeys[pos+1:totalKeys])
	copy(nn.children[:rightKeys+1], allChildren[pos+1:pos+1+rightKeys+1])

	return allKeys[pos], newRef, true
}

// insert recursively descends to the correct leaf and inserts (key, val),
// propagating any split back up. ref must be non-zero.
func (f *Forest) insert(ref uint32, key, val uint32, cmp Comparator) (splitKey uint32, splitRef uint32, split bool) {
	n := &f.nodes[ref-1]
	if n.kind == kindLeaf {
		return f.leafInsert(ref, key, val, cmp)
	}
	idx := childIndex(n.innerKeys[:n.size], key, cmp)
	child := n.children[idx]
	csk, csr, csplit := f.insert(child, key, val, cmp)
	if !csplit {
		return 0, 0, false
	}
	return f.innerInsertAt(ref, idx, csk, csr)
}

// innerRemoveAt removes the separator key at idx and the child pointer at
// idx+1 from the inner node at ref (used after idx and idx+1's children
// are merged into a single node left in place at idx).
func (f *Forest) innerRemoveAt(ref uint32, idx int) {
	n := &f.nodes[ref-1]
	size := int(n.size)
	copy(n.innerKeys[idx:size-1], n.innerKeys[idx+1:size])
	copy(n.children[idx+1:size], n.children[idx+2:size+1])
	n.size--
}

// balanceLeaves repairs an underflowed leaf among children[leftIdx] and
// children[leftIdx+1] of the inner node at ref, merging the pair into one
// node if they fit, or otherwise rotating exactly one element across the
// separator (sufficient because a child underflows by exactly one element
// per removal).
func (f *Forest) balanceLeaves(ref uint32, leftIdx int) {
	n := &f.nodes[ref-1]
	leftRef := n.children[leftIdx]
	rightRef := n.children[leftIdx+1]
	left := &f.nodes[leftRef-1]
	right := &f.nodes[rightRef-1]

	if int(left.size)+int(right.size) <= leafFanout {
		ls := int(left.size)
		rs := int(right.size)
		copy(left.leafKeys[ls:ls+rs], right.leafKeys[:rs])
		copy(left.leafVals[ls:ls+rs], right.leafVals[:rs])
		left.size = uint8(ls + rs)
		f.freeNode(rightRef)
		f.innerRemoveAt(ref, leftIdx)
		return
	}

	if int(left.size) < leafMin {
		ls := int(left.size)
		left.leafKeys[ls] = right.leafKeys[0]
		left.leafVals[ls] = right.leafVals[0]
		left.size++
		rs := int(right.size)
		copy(right.leafKeys[:rs-1], right.leafKeys[1:rs])
		copy(right.leafVals[:rs-1], right.leafVals[1:rs])
		right.size--
	} else {
		ls := int(left.size)
		rs := int(right.size)
		copy(right.leafKeys[1:rs+1], right.leafKeys[:rs])
		copy(right.leafVals[1:rs+1], right.leafVals[:rs])
		right.leafKeys[0] = left.leafKeys[ls-1]
		right.leafVals[0] = left.leafVals[ls-1]
		right.size++
		left.size--
	}
	n = &f.nodes[ref-1]
	n.innerKeys[leftIdx] = right.leafKeys[0]
}

// balanceInners is balanceLeaves' counterpart for inner-node children,
// rotating a child (and its subtree) across the separator key in ref
// rather than a bare key/value pair.
func (f *Forest) balanceInners(ref uint32, leftIdx int) {
	n := &f.nodes[ref-1]
	sepKey := n.innerKeys[leftIdx]
	leftRef := n.children[leftIdx]
	rightRef := n.children[leftIdx+1]
	left := &f.nodes[leftRef-1]
	right := &f.nodes[rightRef-1]

	leftChildren := int(left.size) + 1
	rightChildren := int(right.size) + 1
	if leftChildren+rightChildren <= innerFanout {
		ls := int(left.size)
		rs := int(right.size)
		left.innerKeys[ls] = sepKey
		copy(left.innerKeys[ls+1:ls+1+rs], right.innerKeys[:rs])
		copy(left.children[ls+1:ls+1+rs+1], right.children[:rs+1])
		left.size = uint8(ls + 1 + rs)
		f.freeNode(rightRef)
		f.innerRemoveAt(ref, leftIdx)
		return
	}

	if leftChildren < innerMin {
		ls := int(left.size)
		rs := int(right.size)
		left.innerKeys[ls] = sepKey
		left.children[ls+1] = right.children[0]
		left.size++
		newSep := right.innerKeys[0]
		copy(right.innerKeys[:rs-1], right.innerKeys[1:rs])
		copy(right.children[:rs], right.children[1:rs+1])
		right.size--
		n = &f.nodes[ref-1]
		n.innerKeys[leftIdx] = newSep
	} else {
		ls := int(left.size)
		rs := int(right.size)
		copy(right.innerKeys[1:rs+1], right.innerKeys[:rs])
		copy(right.children[1:rs+2], right.children[:rs+1])
		right.innerKeys[0] = sepKey
		right.children[0] = left.children[ls]
		right.size++
		newSep := left.innerKeys[ls-1]
		left.size--
		n = &f.nodes[ref-1]
		n.innerKeys[leftIdx] = newSep
	}
}

// fixChildUnderflow repairs the child at position idx of the inner node
// at ref, which has just reported underflow, by balancing it against a
// sibling within the same parent. A sibling always exists: a child is
// only reported underflowed when it is not rightmost at its level, and
// every non-root inner node held at least innerMin children before this
// removal, so if idx is the last local child position there is still a
// left sibling (idx-1) to use.
func (f *Forest) fixChildUnderflow(ref uint32, idx int) {
	n := &f.nodes[ref-1]
	size := int(n.size)
	childKind := f.nodes[n.children[idx]-1].kind

	var leftIdx int
	if idx < size {
		leftIdx = idx
	} else {
		leftIdx = idx - 1
	}
	if childKind == kindLeaf {
		f.balanceLeaves(ref, leftIdx)
	} else {
		f.balanceInners(ref, leftIdx)
	}
}

// remove recursively removes key from the subtree at ref. rightmost is
// true when ref is reached via an all-last-child path from the tree
// root, i.e. it (and everything on its own rightmost spine) is permitted
// to be underfull. underflow reports whether ref itself fell below
// minimum occupancy and its parent must rebalance it.
func (f *Forest) remove(ref uint32, key uint32, cmp Comparator, rightmost bool) (val uint32, found bool, underflow bool) {
	n := &f.nodes[ref-1]
	if n.kind == kindLeaf {
		idx, ok := leafSearch(n.leafKeys[:n.size], key, cmp)
		if !ok {
			return 0, false, false
		}
		val = n.leafVals[idx]
		size := int(n.size)
		copy(n.leafKeys[idx:size-1], n.leafKeys[idx+1:size])
		copy(n.leafVals[idx:size-1], n.leafVals[idx+1:size])
		n.size--
		return val, true, !rightmost && int(n.size) < leafMin
	}

	idx := childIndex(n.innerKeys[:n.size], key, cmp)
	childRef := n.children[idx]
	childRightmost := rightmost && idx == int(n.size)
	val, found, childUnderflow := f.remove(childRef, key, cmp, childRightmost)
	if !found {
		return 0, false, false
	}
	if !childUnderflow {
		return val, true, false
	}
	f.fixChildUnderflow(ref, idx)
	n = &f.nodes[ref-1]
	return val, true, !rightmost && int(n.size) < innerMin
}
