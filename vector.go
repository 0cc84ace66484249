package vector

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Vector is a growable array of T that exclusively owns one storage block.
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are allocated
// but hold T's zero value.
//
// The zero value is an empty vector using plain Go value semantics.
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	data  []T // len(data) is the capacity; nil iff the capacity is 0
	size  int
	cfg   config[T]
	stats stats
}

// New returns an empty vector. No storage is allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	return &Vector[T]{cfg: newConfig(opts)}
}

// NewSize returns a vector of n default-constructed elements, with capacity n.
func NewSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.build(n, func(slot *T, _ int) error {
		return v.cfg.construct(slot)
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFilled returns a vector of n copies of value, with capacity n.
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.build(n, func(slot *T, _ int) error {
		return v.cfg.copyTo(slot, &value)
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding copies of values in order, with
// capacity len(values).
func FromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.build(len(values), func(slot *T, i int) error {
		return v.cfg.copyTo(slot, &values[i])
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// FromRange returns a vector holding copies of the elements in [first, last).
// Both positions must come from the same traversal of the same block.
func FromRange[T any](first, last ConstIterator[T], opts ...Option[T]) (*Vector[T], error) {
	n, err := first.Distance(last)
	if err != nil {
		return nil, err
	}
	v := New(opts...)
	it := first
	if err := v.build(n, func(slot *T, _ int) error {
		src := it.it.ref()
		it.Next()
		return v.cfg.copyTo(slot, src)
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSeq returns a vector holding copies of the values yielded by seq. The
// sequence is traversed twice, once to size the block and once to fill it,
// so it must yield the same values on every traversal.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	n := 0
	for range seq {
		n++
	}
	v := New(opts...)
	next, stop := iter.Pull(seq)
	defer stop()
	if err := v.build(n, func(slot *T, i int) error {
		x, ok := next()
		if !ok {
			return errors.AssertionFailedf("sequence ended at %d of %d values", i, n)
		}
		return v.cfg.copyTo(slot, &x)
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding values, using plain value semantics.
func Of[T any](values ...T) *Vector[T] {
	return Must(FromSlice(values))
}

// Must returns v, panicking if err is non-nil. It is intended for
// initializing variables from the constructors above.
func Must[T any](v *Vector[T], err error) *Vector[T] {
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns an independent copy of v with the same configuration and
// capacity equal to v.Len(). Elements are duplicated with the Copy hook.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{cfg: v.cfg}
	if err := c.copyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// copyFrom builds src's elements into the empty receiver.
func (v *Vector[T]) copyFrom(src *Vector[T]) error {
	return v.build(src.size, func(slot *T, i int) error {
		return v.cfg.copyTo(slot, &src.data[i])
	})
}

// Move transfers v's storage to a new vector and leaves v empty. No element
// is touched and nothing is allocated.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{cfg: v.cfg}
	m.takeStorage(v)
	return m
}

// takeStorage adopts src's block and resets src to the empty state.
func (v *Vector[T]) takeStorage(src *Vector[T]) {
	v.data, v.size = src.data, src.size
	src.data, src.size = nil, 0
}

func (v *Vector[T]) swapStorage(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// Assign replaces v's contents with copies of src's elements. The copy is
// built completely before anything in v changes, so on error v is exactly
// as it was. Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp := &Vector[T]{cfg: v.cfg}
	if err := tmp.copyFrom(src); err != nil {
		v.logRollback("assign", err)
		return err
	}
	v.swapStorage(tmp)
	tmp.Clear()
	return nil
}

// MoveAssign replaces v's contents with src's storage and leaves src empty.
// v's previous elements are destroyed. Assigning a vector to itself does
// nothing.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := &Vector[T]{cfg: v.cfg}
	tmp.takeStorage(src)
	v.swapStorage(tmp)
	tmp.Clear()
}

// Swap exchanges the entire state of v and other. It never touches an
// element and cannot fail.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}
