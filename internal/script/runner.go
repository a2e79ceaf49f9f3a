package script

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mibar/namedvec/pkg/namedvec"
)

// OpError wraps a fault raised while applying an op.
type OpError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Lookup records the outcome of a get op.
type Lookup struct {
	Ref   Ref    `json:"ref"`
	Entry *Entry `json:"entry"`
}

// Result is the state left by a run. Removed holds what remove, pop and
// replace handed back, in the order they did.
type Result struct {
	Items   *namedvec.Vec[Entry]
	Removed []Entry
	Lookups []Lookup
}

func (r *Result) MarshalJSON() ([]byte, error) {
	items := []Entry{}
	if r.Items != nil && !r.Items.IsEmpty() {
		items = r.Items.Items()
	}
	return json.Marshal(struct {
		Items   []Entry  `json:"items"`
		Removed []Entry  `json:"removed,omitempty"`
		Lookups []Lookup `json:"lookups,omitempty"`
	}{items, r.Removed, r.Lookups})
}

type Runner struct {
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run builds a container from s.Items and applies s.Ops in order. It stops
// at the first op that faults and returns the state reached so far together
// with an *OpError.
func (r *Runner) Run(s *Script) (*Result, error) {
	res := &Result{Items: namedvec.Of(s.Items...)}
	r.logger.Debug("script loaded",
		zap.Int("items", res.Items.Len()),
		zap.Int("ops", len(s.Ops)),
	)

	for i, op := range s.Ops {
		if err := r.apply(res, op); err != nil {
			return res, &OpError{Index: i, Kind: op.Kind, Err: err}
		}
		r.logger.Debug("op applied",
			zap.Int("op", i),
			zap.String("kind", string(op.Kind)),
			zap.Stringer("items", res.Items),
		)
	}
	return res, nil
}

func (r *Runner) apply(res *Result, op Op) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e, ok := rec.(error)
			if !ok || !namedvec.IsFault(e) {
				panic(rec)
			}
			err = e
		}
	}()

	v := res.Items
	switch op.Kind {
	case KindPush:
		v.Push(*op.Item)
	case KindInsert:
		v.Insert(*op.At, *op.Item)
	case KindRemove:
		res.Removed = append(res.Removed, v.Remove(op.Ref.Lookup))
	case KindPop:
		if e, ok := v.Pop(); ok {
			res.Removed = append(res.Removed, e)
		}
	case KindSwap:
		v.Swap(op.A.Lookup, op.B.Lookup)
	case KindTruncate:
		v.Truncate(*op.Len)
	case KindClear:
		v.Clear()
	case KindGet:
		l := Lookup{Ref: *op.Ref}
		if e, ok := v.Get(op.Ref.Lookup); ok {
			l.Entry = &e
		}
		res.Lookups = append(res.Lookups, l)
	case KindReplace:
		res.Removed = append(res.Removed, v.Replace(op.Ref.Lookup, *op.Item))
	case KindSet:
		v.Set(*op.At, *op.Item)
	case KindReserve:
		v.Reserve(op.N)
	case KindShrink:
		v.ShrinkToFit()
	default:
		return errors.Errorf("unknown op kind %q", op.Kind)
	}
	return nil
}
