// Package namedvec provides Vec, an ordered collection of named elements
// addressable by name or by position.
//
// Names are unique: pushing an element whose name is already present
// replaces that element in place. Insertion order is kept, and positions are
// always dense.
//
// Basic usage:
//
//	v := namedvec.Of(Field{"id"}, Field{"email"})
//	v.Push(Field{"name"})
//	f, ok := v.Get(namedvec.ByName("email"))
//	v.Swap(namedvec.ByIndex(0), namedvec.ByName("name"))
//
// Operations that require a reference to resolve (Remove, Swap, MustGet,
// Replace) and positional writes with a bad index panic with an error that
// matches ErrInvalidReference or ErrOutOfBounds under errors.Is. Use Get
// first when a reference may be stale.
package namedvec

import (
	"iter"
	"slices"
	"strings"
)

// Vec is an insertion-ordered collection of uniquely named elements with
// O(1) average lookup by name or position.
//
// The positional sequence is the source of truth; the name index is derived
// and kept in step by every mutating method. The zero value is an empty Vec
// ready to use. A Vec is not safe for concurrent use when any goroutine
// mutates it.
type Vec[T Named] struct {
	items []T
	index map[string]int
	// size hint the index was last allocated with; Go maps don't report capacity
	indexCap int
}

// New returns an empty Vec.
func New[T Named]() *Vec[T] {
	return &Vec[T]{index: make(map[string]int)}
}

// WithCapacity returns an empty Vec sized to hold n elements without
// reallocating.
func WithCapacity[T Named](n int) *Vec[T] {
	n = max(n, 0)
	return &Vec[T]{
		items:    make([]T, 0, n),
		index:    make(map[string]int, n),
		indexCap: n,
	}
}

// Of builds a Vec by pushing items in order. Later items replace earlier
// ones with the same name, keeping the earlier position.
func Of[T Named](items ...T) *Vec[T] {
	v := WithCapacity[T](len(items))
	for _, item := range items {
		v.Push(item)
	}
	return v
}

func (v *Vec[T]) init() {
	if v.index == nil {
		v.index = make(map[string]int)
	}
}

// Push appends item, or overwrites the element with the same name in place.
func (v *Vec[T]) Push(item T) {
	v.init()
	name := item.Name()
	if i, ok := v.index[name]; ok {
		v.items[i] = item
		return
	}
	v.items = append(v.items, item)
	v.index[name] = len(v.items) - 1
}

// Insert places item before position i, shifting later elements right.
// If item's name is already present the existing element is overwritten in
// place and nothing shifts; i is not checked in that case.
// Panics with ErrOutOfBounds if i < 0 or i > Len().
func (v *Vec[T]) Insert(i int, item T) {
	v.init()
	name := item.Name()
	if j, ok := v.index[name]; ok {
		v.items[j] = item
		return
	}
	if i < 0 || i > len(v.items) {
		fault(&BoundsError{Op: "insert", Index: i, Len: len(v.items)})
	}

	v.items = slices.Insert(v.items, i, item)
	v.reindex(i)
}

// Remove deletes the element addressed by l and returns it.
// Panics with ErrInvalidReference if l does not resolve.
func (v *Vec[T]) Remove(l Lookup) T {
	i := v.mustResolve("remove", l)
	item := v.items[i]

	delete(v.index, item.Name())
	v.items = slices.Delete(v.items, i, i+1)
	v.reindex(i)
	return item
}

// Pop removes and returns the last element, or false if the Vec is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	n := len(v.items)
	if n == 0 {
		return zero, false
	}
	item := v.items[n-1]
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	delete(v.index, item.Name())
	return item, true
}

// Swap exchanges the positions of the elements addressed by a and b.
// Panics with ErrInvalidReference if either does not resolve.
func (v *Vec[T]) Swap(a, b Lookup) {
	i := v.mustResolve("swap", a)
	j := v.mustResolve("swap", b)
	if i == j {
		return
	}

	v.index[v.nameAt(a, i)] = j
	v.index[v.nameAt(b, j)] = i
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Truncate keeps the first n elements and drops the rest. It is a no-op when
// n >= Len(). Panics with ErrOutOfBounds if n < 0.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		fault(&BoundsError{Op: "truncate", Index: n, Len: len(v.items)})
	}
	if n >= len(v.items) {
		return
	}
	for _, item := range v.items[n:] {
		delete(v.index, item.Name())
	}
	clear(v.items[n:])
	v.items = v.items[:n]
}

// Clear removes every element, keeping allocated capacity.
func (v *Vec[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
	clear(v.index)
}

// Set overwrites the content at position i without renaming it.
// Panics with ErrOutOfBounds for a bad index, and with ErrNameMismatch if
// item's name differs from the element it replaces; use Replace to rename.
func (v *Vec[T]) Set(i int, item T) {
	if i < 0 || i >= len(v.items) {
		fault(&BoundsError{Op: "set", Index: i, Len: len(v.items)})
	}
	if have, want := v.items[i].Name(), item.Name(); have != want {
		fault(&NameError{Op: "set", Index: i, Have: have, Want: want, cause: ErrNameMismatch})
	}
	v.items[i] = item
}

// Replace puts item in the slot addressed by l, re-keying the name index,
// and returns the element it displaced.
// Panics with ErrInvalidReference if l does not resolve, and with
// ErrDuplicateName if item's name belongs to another element.
func (v *Vec[T]) Replace(l Lookup, item T) T {
	i := v.mustResolve("replace", l)
	old := v.items[i]
	name := item.Name()
	if j, ok := v.index[name]; ok && j != i {
		fault(&NameError{Op: "replace", Index: j, Have: old.Name(), Want: name, cause: ErrDuplicateName})
	}

	delete(v.index, old.Name())
	v.index[name] = i
	v.items[i] = item
	return old
}

// Get returns the element addressed by l. A missing name or out of range
// index reports false.
func (v *Vec[T]) Get(l Lookup) (T, bool) {
	if i, ok := v.resolve(l); ok {
		return v.items[i], true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the slot addressed by l. The pointer is valid
// until the next call that changes Len. Changing what Name returns through
// it desynchronizes the index; use Replace to rename.
func (v *Vec[T]) GetMut(l Lookup) (*T, bool) {
	if i, ok := v.resolve(l); ok {
		return &v.items[i], true
	}
	return nil, false
}

// MustGet is like Get but panics with ErrInvalidReference on a miss.
func (v *Vec[T]) MustGet(l Lookup) T {
	return v.items[v.mustResolve("get", l)]
}

// IndexOf returns the position of the element with the given name.
func (v *Vec[T]) IndexOf(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}

func (v *Vec[T]) Contains(name string) bool {
	_, ok := v.index[name]
	return ok
}

func (v *Vec[T]) Len() int      { return len(v.items) }
func (v *Vec[T]) IsEmpty() bool { return len(v.items) == 0 }

// Cap reports how many elements fit before either the sequence or the name
// index has to grow.
func (v *Vec[T]) Cap() int {
	return min(cap(v.items), max(v.indexCap, len(v.index)))
}

// Reserve makes room for at least n more elements.
func (v *Vec[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	want := len(v.items) + n
	v.items = slices.Grow(v.items, n)
	if want > max(v.indexCap, len(v.index)) {
		v.rebuildIndex(want)
	}
}

// ShrinkToFit releases spare capacity held by the sequence and the index.
func (v *Vec[T]) ShrinkToFit() {
	items := make([]T, len(v.items))
	copy(items, v.items)
	v.items = items
	v.rebuildIndex(len(items))
}

// Items returns the live elements. The slice shares storage with v and its
// capacity is clipped, so appending to it never writes into v. Writing an
// element with a different name through it bypasses the name index.
func (v *Vec[T]) Items() []T { return v.Slice(0, len(v.items)) }

// SliceTo returns the live view of positions [0, hi).
func (v *Vec[T]) SliceTo(hi int) []T { return v.Slice(0, hi) }

// SliceFrom returns the live view of positions [lo, Len()).
func (v *Vec[T]) SliceFrom(lo int) []T { return v.Slice(lo, len(v.items)) }

// Slice returns the live view of positions [lo, hi).
// Panics with ErrOutOfBounds unless 0 <= lo <= hi <= Len().
func (v *Vec[T]) Slice(lo, hi int) []T {
	if hi < 0 || hi > len(v.items) {
		fault(&BoundsError{Op: "slice", Index: hi, Len: len(v.items)})
	}
	if lo < 0 || lo > hi {
		fault(&BoundsError{Op: "slice", Index: lo, Len: hi})
	}
	return v.items[lo:hi:hi]
}

// All iterates positions and elements in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Names iterates element names in order.
func (v *Vec[T]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range v.items {
			if !yield(item.Name()) {
				return
			}
		}
	}
}

// Drain moves every element out of v, which is empty when Drain returns.
// The sequence yields (name, element) pairs in order and can be ranged over
// once; later passes yield nothing. Elements not reached before the loop
// stops are dropped.
func (v *Vec[T]) Drain() iter.Seq2[string, T] {
	items := v.items
	v.items = nil
	v.index = make(map[string]int)
	v.indexCap = 0

	return func(yield func(string, T) bool) {
		rest := items
		items = nil
		for _, item := range rest {
			if !yield(item.Name(), item) {
				return
			}
		}
	}
}

// EqualFunc reports whether v and o hold the same number of elements and
// eq holds pairwise in order. The name index is not compared.
func (v *Vec[T]) EqualFunc(o *Vec[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.items, o.items, eq)
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T interface {
	Named
	comparable
}](a, b *Vec[T]) bool {
	return slices.Equal(a.items, b.items)
}

// String lists the element names in order, e.g. [foo bar].
func (v *Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range v.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.Name())
	}
	b.WriteByte(']')
	return b.String()
}

func (v *Vec[T]) resolve(l Lookup) (int, bool) {
	if l.byName {
		i, ok := v.index[l.name]
		return i, ok
	}
	if l.index < 0 || l.index >= len(v.items) {
		return 0, false
	}
	return l.index, true
}

func (v *Vec[T]) mustResolve(op string, l Lookup) int {
	i, ok := v.resolve(l)
	if !ok {
		fault(&LookupError{Op: op, Lookup: l, Len: len(v.items)})
	}
	return i
}

// nameAt returns the name l refers to; i is l already resolved.
func (v *Vec[T]) nameAt(l Lookup, i int) string {
	if l.byName {
		return l.name
	}
	return v.items[i].Name()
}

// reindex rewrites the index entries for positions [from, Len()).
func (v *Vec[T]) reindex(from int) {
	for i := from; i < len(v.items); i++ {
		v.index[v.items[i].Name()] = i
	}
}

func (v *Vec[T]) rebuildIndex(size int) {
	index := make(map[string]int, size)
	for i, item := range v.items {
		index[item.Name()] = i
	}
	v.index = index
	v.indexCap = size
}
