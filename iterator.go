package vector

import (
	"iter"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Iterator is a mutable position in a vector's live range, moving either
// forward or backward. Like a pointer into the block, it is invalidated by
// any reallocation; stepping outside [begin, end] is not checked.
type Iterator[T any] struct {
	block   []T
	pos     int // forward: slot index; reverse: one past the slot index
	reverse bool
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Begin returns a position at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{block: v.data}
}

// End returns the position one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{block: v.data, pos: v.size}
}

// RBegin returns a reverse position at the last element.
func (v *Vector[T]) RBegin() Iterator[T] {
	return Iterator[T]{block: v.data, pos: v.size, reverse: true}
}

// REnd returns the reverse position one before the first element.
func (v *Vector[T]) REnd() Iterator[T] {
	return Iterator[T]{block: v.data, reverse: true}
}

// CBegin is the read-only form of Begin.
func (v *Vector[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{v.Begin()} }

// CEnd is the read-only form of End.
func (v *Vector[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{v.End()} }

// CRBegin is the read-only form of RBegin.
func (v *Vector[T]) CRBegin() ConstIterator[T] { return ConstIterator[T]{v.RBegin()} }

// CREnd is the read-only form of REnd.
func (v *Vector[T]) CREnd() ConstIterator[T] { return ConstIterator[T]{v.REnd()} }

func (it *Iterator[T]) slot() int {
	if it.reverse {
		return it.pos - 1
	}
	return it.pos
}

func (it *Iterator[T]) ref() *T {
	return &it.block[it.slot()]
}

// Next advances one element in the iterator's direction.
func (it *Iterator[T]) Next() {
	if it.reverse {
		it.pos--
	} else {
		it.pos++
	}
}

// Prev steps back one element.
func (it *Iterator[T]) Prev() {
	if it.reverse {
		it.pos++
	} else {
		it.pos--
	}
}

// Get returns the element at the position.
func (it Iterator[T]) Get() T { return *it.ref() }

// Ref returns a pointer to the element at the position.
func (it Iterator[T]) Ref() *T { return it.ref() }

// Set overwrites the element at the position.
func (it Iterator[T]) Set(x T) { *it.ref() = x }

// Index returns the slot index the position refers to.
func (it Iterator[T]) Index() int { return it.slot() }

// Equal reports whether both positions refer to the same place in the same
// block and walk in the same direction.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos && it.reverse == other.reverse &&
		unsafe.SliceData(it.block) == unsafe.SliceData(other.block)
}

// Distance returns how many Next calls take it to last.
func (it Iterator[T]) Distance(last Iterator[T]) (int, error) {
	if it.reverse != last.reverse || unsafe.SliceData(it.block) != unsafe.SliceData(last.block) {
		return 0, errors.AssertionFailedf("iterators belong to different traversals")
	}
	n := last.pos - it.pos
	if it.reverse {
		n = -n
	}
	if n < 0 {
		return 0, errors.AssertionFailedf("iterator range is inverted by %d", -n)
	}
	return n, nil
}

// Const returns the read-only form of it.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it} }

// Next advances one element in the iterator's direction.
func (c *ConstIterator[T]) Next() { c.it.Next() }

// Prev steps back one element.
func (c *ConstIterator[T]) Prev() { c.it.Prev() }

// Get returns the element at the position.
func (c ConstIterator[T]) Get() T { return c.it.Get() }

// Index returns the slot index the position refers to.
func (c ConstIterator[T]) Index() int { return c.it.slot() }

// Equal reports whether both positions are the same.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

// Distance returns how many Next calls take c to last.
func (c ConstIterator[T]) Distance(last ConstIterator[T]) (int, error) {
	return c.it.Distance(last.it)
}

// All yields index/value pairs in ascending order over the elements live
// when iteration starts.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.data[:v.size]
		for i := range live {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Backward yields index/value pairs in descending order.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.data[:v.size]
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Values yields the elements in ascending order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}
