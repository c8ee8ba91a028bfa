// Package entitylist implements small lists of 32-bit entity references
// allocated from a shared LIFO pool.
//
// A List is a 4-byte handle into a Pool, instead of an owning slice. This
// keeps instruction argument lists (and similar variable-length fields)
// small when embedded in compact instruction payloads: tens of thousands
// of short lists, most with four or fewer entries, share one backing
// array and are freed in bulk when the pool is cleared.
package entitylist

import "math/bits"

// Pool is the backing storage for many Lists. Non-empty lists are stored
// as three contiguous regions: [length | elements... | spare capacity...].
// Allocation sizes are always a power of two >= 4 (measured in slots,
// including the length slot); size class s allocates 4<<s slots. Freed
// blocks of a given size class are threaded onto a per-class intrusive
// free list through their (unused) length slot.
type Pool struct {
	data []uint32
	free []uint32 // free[sclass] is 1+index of the free block's length slot, or 0.
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// List is a handle to a (possibly empty) sequence of uint32 entity
// references stored in a Pool. The zero value is the empty list, which
// requires no backing storage. Cloning a List (simple Go assignment)
// aliases the same storage; use Pool.DeepClone for an independent copy.
type List struct {
	index uint32 // 0 means empty; otherwise points at the first element.
}

// sclassSize returns the number of slots (including the length slot) in
// size class sclass.
func sclassSize(sclass uint8) int {
	return 4 << sclass
}

// isSclassMinLength returns true if length is the smallest length that
// requires its size class, i.e. growing by one more element would force
// a reallocation.
func isSclassMinLength(length int) bool {
	return length > 3 && length&(length-1) == 0
}

// sclassForLengthImpl returns the smallest size class s such that
// 4<<s >= length+1, i.e. large enough to additionally hold the length
// slot. Using n = length|3 avoids special-casing length<4.
func sclassForLengthImpl(length int) uint8 {
	n := uint32(length) | 3
	return uint8(bits.Len32(n) - 2)
}

func (p *Pool) lenOf(l List) (int, bool) {
	if l.index == 0 {
		return 0, false
	}
	idx := int(l.index) - 1
	if idx < 0 || idx >= len(p.data) {
		return 0, false
	}
	return int(p.data[idx]), true
}

// alloc returns the index of the length slot of a fresh block of the
// given size class, reusing a freed block if one is available.
func (p *Pool) alloc(sclass uint8) int {
	for len(p.free) <= int(sclass) {
		p.free = append(p.free, 0)
	}
	if head := p.free[sclass]; head > 0 {
		block := int(head) - 1
		p.free[sclass] = p.data[block+1]
		return block
	}
	block := len(p.data)
	p.data = append(p.data, make([]uint32, sclassSize(sclass))...)
	return block
}

// free returns block (the index of its length slot) to the free list for
// sclass.
func (p *Pool) free_(block int, sclass uint8) {
	for len(p.free) <= int(sclass) {
		p.free = append(p.free, 0)
	}
	p.data[block] = 0
	p.data[block+1] = p.free[sclass]
	p.free[sclass] = uint32(block + 1)
}

func (p *Pool) realloc(block int, from, to uint8, elemsToCopy int) int {
	newBlock := p.alloc(to)
	if elemsToCopy > 0 {
		copy(p.data[newBlock:newBlock+elemsToCopy], p.data[block:block+elemsToCopy])
	}
	p.free_(block, from)
	return newBlock
}

// FromSlice allocates a new List containing a copy of s.
func FromSlice(s []uint32, p *Pool) List {
	if len(s) == 0 {
		return List{}
	}
	block := p.alloc(sclassForLengthImpl(len(s)))
	p.data[block] = uint32(len(s))
	copy(p.data[block+1:block+1+len(s)], s)
	return List{index: uint32(block + 1)}
}

// IsEmpty reports whether l has zero elements.
func (l List) IsEmpty() bool { return l.index == 0 }

// Len returns the number of elements in l.
func (l List) Len(p *Pool) int {
	n, _ := p.lenOf(l)
	return n
}

// IsValid reports whether l is either empty, or backed by live storage in p.
func (l List) IsValid(p *Pool) bool {
	if l.IsEmpty() {
		return true
	}
	_, ok := p.lenOf(l)
	return ok
}

// AsSlice returns the elements of l. The returned slice aliases the pool's
// backing array and is invalidated by any mutating operation on l or by
// Pool.Clear.
func (l List) AsSlice(p *Pool) []uint32 {
	n, ok := p.lenOf(l)
	if !ok {
		return nil
	}
	idx := int(l.index)
	return p.data[idx : idx+n]
}

// AsMutSlice is like AsSlice but the returned slice may be written through
// to mutate l's elements in place.
func (l List) AsMutSlice(p *Pool) []uint32 {
	return l.AsSlice(p)
}

// Get returns the element at index, or (0, false) if index is out of range.
func (l List) Get(index int, p *Pool) (uint32, bool) {
	s := l.AsSlice(p)
	if index < 0 || index >= len(s) {
		return 0, false
	}
	return s[index], true
}

// First returns the first element of l, or (0, false) if l is empty.
func (l List) First(p *Pool) (uint32, bool) {
	return l.Get(0, p)
}

// DeepClone allocates fresh storage and copies l's elements into it; the
// result does not alias l.
func (l List) DeepClone(p *Pool) List {
	n, ok := p.lenOf(l)
	if !ok {
		return List{}
	}
	src := int(l.index)
	block := p.alloc(sclassForLengthImpl(n))
	p.data[block] = uint32(n)
	copy(p.data[block+1:block+1+n], p.data[src:src+n])
	return List{index: uint32(block + 1)}
}

// Clear returns l's storage to the pool's free list and resets l to empty.
func (l *List) Clear(p *Pool) {
	n, ok := p.lenOf(*l)
	if ok && n > 0 {
		p.free_(int(l.index)-1, sclassForLengthImpl(n))
	}
	l.index = 0
}

// Push appends element to the end of l, reallocating if the new length
// crosses a size-class boundary, and returns the index it was inserted at.
func (l *List) Push(element uint32, p *Pool) int {
	n, ok := p.lenOf(*l)
	if !ok {
		block := p.alloc(sclassForLengthImpl(1))
		p.data[block] = 1
		p.data[block+1] = element
		l.index = uint32(block + 1)
		return 0
	}
	block := int(l.index) - 1
	newLen := n + 1
	if isSclassMinLength(newLen) {
		sclass := sclassForLengthImpl(n)
		block = p.realloc(block, sclass, sclass+1, n+1)
		l.index = uint32(block + 1)
	}
	p.data[block+newLen] = element
	p.data[block] = uint32(newLen)
	return n
}

// grow appends count reserved (zero-valued) elements to l and returns a
// mutable slice of l's whole contents.
func (l *List) grow(count int, p *Pool) []uint32 {
	n, ok := p.lenOf(*l)
	var block, newLen int
	if !ok {
		if count == 0 {
			return nil
		}
		newLen = count
		block = p.alloc(sclassForLengthImpl(newLen))
		l.index = uint32(block + 1)
	} else {
		block = int(l.index) - 1
		sclass := sclassForLengthImpl(n)
		newLen = n + count
		newSclass := sclassForLengthImpl(newLen)
		if newSclass != sclass {
			block = p.realloc(block, sclass, newSclass, n+1)
			l.index = uint32(block + 1)
		}
	}
	p.data[block] = uint32(newLen)
	return p.data[block+1 : block+1+newLen]
}

// Extend appends elements to the end of l. If len(elements) is known
// up-front this performs a single grow; callers with an unknown-length
// iterator should repeatedly call Push instead.
func (l *List) Extend(elements []uint32, p *Pool) {
	if len(elements) == 0 {
		return
	}
	data := l.grow(len(elements), p)
	copy(data[len(data)-len(elements):], elements)
}

// Insert inserts element at position index, shifting subsequent elements
// right. index must be in [0, l.Len(p)].
func (l *List) Insert(index int, element uint32, p *Pool) {
	l.Push(element, p) // grow by one; placeholder value doesn't matter
	seq := l.AsMutSlice(p)
	if index >= len(seq) {
		return
	}
	for i := len(seq) - 1; i > index; i-- {
		seq[i] = seq[i-1]
	}
	seq[index] = element
}

// removeLast shrinks l by one element, which must already have been
// logically removed from the backing storage (callers shift first).
func (l *List) removeLast(length int, p *Pool) {
	if length == 1 {
		l.Clear(p)
		return
	}
	block := int(l.index) - 1
	if isSclassMinLength(length) {
		sclass := sclassForLengthImpl(length)
		block = p.realloc(block, sclass, sclass-1, length)
		l.index = uint32(block + 1)
	}
	p.data[block] = uint32(length - 1)
}

// Remove removes the element at index, shifting subsequent elements left.
// This is O(n) in the list length.
func (l *List) Remove(index int, p *Pool) {
	seq := l.AsMutSlice(p)
	n := len(seq)
	if index < 0 || index >= n {
		panic("entitylist: index out of range")
	}
	copy(seq[index:n-1], seq[index+1:n])
	l.removeLast(n, p)
}

// SwapRemove removes the element at index in O(1) by swapping it with the
// last element before shrinking the list. Does not preserve order.
func (l *List) SwapRemove(index int, p *Pool) {
	seq := l.AsMutSlice(p)
	n := len(seq)
	if index < 0 || index >= n {
		panic("entitylist: index out of range")
	}
	if index != n-1 {
		seq[index], seq[n-1] = seq[n-1], seq[index]
	}
	l.removeLast(n, p)
}

// Truncate shortens l to at most newLen elements; a no-op if l is already
// shorter.
func (l *List) Truncate(newLen int, p *Pool) {
	if newLen == 0 {
		l.Clear(p)
		return
	}
	n, ok := p.lenOf(*l)
	if !ok || n <= newLen {
		return
	}
	block := int(l.index) - 1
	sclass := sclassForLengthImpl(n)
	newSclass := sclassForLengthImpl(newLen)
	if sclass != newSclass {
		block = p.realloc(block, sclass, newSclass, newLen+1)
		l.index = uint32(block + 1)
	}
	p.data[block] = uint32(newLen)
}

// GrowAt inserts count uninitialized elements at index, shifting existing
// elements at and after index to the right. The newly inserted slots'
// contents are unspecified (whatever was previously in pool storage).
func (l *List) GrowAt(index, count int, p *Pool) {
	data := l.grow(count, p)
	for i := len(data) - 1; i >= index+count; i-- {
		data[i] = data[i-count]
	}
}

// ClearPool discards all storage in p. Every outstanding List handle into
// p becomes invalid; reading through one afterward returns length 0 and
// never corrupts memory, but writing through one corrupts whatever now
// occupies that slot.
func (p *Pool) ClearPool() {
	p.data = p.data[:0]
	p.free = p.free[:0]
}
