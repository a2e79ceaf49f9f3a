package namedvec

import "strconv"

// Named is the only capability an element needs: a name that stays the same
// while the element is stored in a Vec.
type Named interface {
	Name() string
}

// Lookup addresses an element either by name or by position.
// Build one with ByName or ByIndex; the zero value is ByIndex(0).
type Lookup struct {
	name   string
	index  int
	byName bool
}

// ByName returns a Lookup that resolves through the name index.
func ByName(name string) Lookup { return Lookup{name: name, byName: true} }

// ByIndex returns a Lookup that resolves to position i.
func ByIndex(i int) Lookup { return Lookup{index: i} }

// Name returns the name and true for a ByName lookup.
func (l Lookup) Name() (string, bool) { return l.name, l.byName }

// Index returns the position and true for a ByIndex lookup.
func (l Lookup) Index() (int, bool) { return l.index, !l.byName }

func (l Lookup) String() string {
	if l.byName {
		return strconv.Quote(l.name)
	}
	return strconv.Itoa(l.index)
}
