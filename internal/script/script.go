// Package script decodes a YAML description of a starting set of entries and
// a list of operations, so a namedvec.Vec can be driven from outside Go.
//
//	items:
//	  - {name: foo, value: 1}
//	  - {name: bar, value: 2}
//	ops:
//	  - {op: swap, a: foo, b: 1}
//	  - {op: insert, at: 0, item: {name: baz, value: 3}}
//	  - {op: remove, ref: bar}
//
// References (ref, a, b) are names when given as strings and positions when
// given as integers.
package script

import (
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/mibar/namedvec/pkg/namedvec"
)

// Entry is a named value held by the script's container.
type Entry struct {
	Key   string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
}

func (e Entry) Name() string { return e.Key }

type Kind string

const (
	KindPush     Kind = "push"
	KindInsert   Kind = "insert"
	KindRemove   Kind = "remove"
	KindPop      Kind = "pop"
	KindSwap     Kind = "swap"
	KindTruncate Kind = "truncate"
	KindClear    Kind = "clear"
	KindGet      Kind = "get"
	KindReplace  Kind = "replace"
	KindSet      Kind = "set"
	KindReserve  Kind = "reserve"
	KindShrink   Kind = "shrink"
)

// Op is one step of a script. Which fields are read depends on Kind.
type Op struct {
	Kind Kind   `yaml:"op"`
	Item *Entry `yaml:"item"`
	Ref  *Ref   `yaml:"ref"`
	A    *Ref   `yaml:"a"`
	B    *Ref   `yaml:"b"`
	At   *int   `yaml:"at"`
	Len  *int   `yaml:"len"`
	N    int    `yaml:"n"`
}

type Script struct {
	Items []Entry `yaml:"items"`
	Ops   []Op    `yaml:"ops"`
}

// Ref is a namedvec.Lookup as written in a script.
type Ref struct {
	namedvec.Lookup
}

func (r *Ref) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		r.Lookup = namedvec.ByName(v)
	case int64:
		r.Lookup = namedvec.ByIndex(int(v))
	case uint64:
		if v > math.MaxInt {
			return errors.Errorf("reference %d overflows int", v)
		}
		r.Lookup = namedvec.ByIndex(int(v))
	default:
		return errors.Errorf("reference must be a name or an index, got %T", raw)
	}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if name, ok := r.Name(); ok {
		return json.Marshal(name)
	}
	i, _ := r.Index()
	return json.Marshal(i)
}

// Load decodes a script from r and checks that every op carries the fields
// its kind needs.
func Load(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, errors.Wrap(err, "decode script")
	}
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return nil, errors.Wrapf(err, "op %d", i)
		}
	}
	return &s, nil
}

func (op Op) validate() error {
	need := func(ok bool, field string) error {
		if !ok {
			return errors.Errorf("%s requires %q", op.Kind, field)
		}
		return nil
	}
	switch op.Kind {
	case KindPush:
		return need(op.Item != nil, "item")
	case KindInsert, KindSet:
		if err := need(op.At != nil, "at"); err != nil {
			return err
		}
		return need(op.Item != nil, "item")
	case KindRemove, KindGet:
		return need(op.Ref != nil, "ref")
	case KindReplace:
		if err := need(op.Ref != nil, "ref"); err != nil {
			return err
		}
		return need(op.Item != nil, "item")
	case KindSwap:
		if err := need(op.A != nil, "a"); err != nil {
			return err
		}
		return need(op.B != nil, "b")
	case KindTruncate:
		return need(op.Len != nil, "len")
	case KindPop, KindClear, KindReserve, KindShrink:
		return nil
	case "":
		return errors.New("missing op kind")
	default:
		return errors.Errorf("unknown op kind %q", op.Kind)
	}
}
