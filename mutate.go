package vector

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Reserve makes room for at least n elements. It does nothing when n does
// not exceed the current capacity; otherwise it relocates the live elements
// into a block of exactly n slots. On error v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	return v.reallocate("reserve", n, v.size, nil)
}

// Resize changes the length to n. Growing default-constructs the new
// elements; shrinking destroys the tail and cannot fail. Either v ends with
// n live elements or it is left exactly as it was.
func (v *Vector[T]) Resize(n int) error {
	return v.resize("resize", n, func(slot *T, _ int) error {
		return v.cfg.construct(slot)
	})
}

// ResizeFill is like Resize but fills new slots with copies of value.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	return v.resize("resize", n, func(slot *T, _ int) error {
		return v.cfg.copyTo(slot, &value)
	})
}

func (v *Vector[T]) resize(op string, n int, ctor ctorFunc[T]) error {
	switch {
	case n < 0:
		return errors.Wrapf(ErrAllocation, "negative length %d", n)
	case n == v.size:
		return nil
	case n < v.size:
		v.destroyRange(v.data, n, v.size)
		v.size = n
		return nil
	case n <= len(v.data):
		if err := v.constructRange(v.data, v.size, n, ctor); err != nil {
			v.logRollback(op, err)
			return err
		}
		v.size = n
		return nil
	}

	newCap := n
	if c := len(v.data); c <= math.MaxInt/2 && 2*c > n {
		newCap = 2 * c
	}
	from := v.size
	return v.reallocate(op, newCap, n, func(block []T) error {
		return v.constructRange(block, from, n, ctor)
	})
}

// ShrinkToFit releases unused capacity. An empty vector drops its block;
// otherwise the live elements are relocated into a block of exactly Len()
// slots. On error v is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case len(v.data) == v.size:
		return nil
	case v.size == 0:
		v.deallocate()
		return nil
	}
	return v.reallocate("shrink", v.size, v.size, nil)
}

// Clear destroys every element in ascending order and releases the block,
// leaving an empty vector with zero capacity. It is also how a vector's
// elements are torn down when the vector is no longer needed.
func (v *Vector[T]) Clear() {
	v.destroyRange(v.data, 0, v.size)
	v.deallocate()
}

// PushBack appends a copy of value.
//
// When the block is full the capacity doubles (starting at 1). Any failure,
// whether allocating, relocating or copying value, leaves v as it was.
func (v *Vector[T]) PushBack(value T) error {
	return v.emplace("push", func(slot *T, _ int) error {
		return v.cfg.copyTo(slot, &value)
	})
}

// PushBackMove appends an element move-constructed from *value and takes
// over what *value owned. On success the moved-from value is reset to T's
// zero value; value may point into v itself, in which case that element is
// the one reset. On error *value is untouched and still owns its resources.
func (v *Vector[T]) PushBackMove(value *T) error {
	i, aliased := v.indexOf(value)
	if err := v.emplace("push", func(slot *T, _ int) error {
		return v.cfg.moveTo(slot, value)
	}); err != nil {
		return err
	}
	var zero T
	*value = zero
	if aliased {
		v.data[i] = zero
	}
	return nil
}

// EmplaceBack appends an element built in place by init. init receives the
// new slot holding T's zero value; if it fails the slot is discarded and v
// is unchanged.
func (v *Vector[T]) EmplaceBack(init func(slot *T) error) error {
	return v.emplace("emplace", func(slot *T, _ int) error {
		return init(slot)
	})
}

func (v *Vector[T]) emplace(op string, ctor ctorFunc[T]) error {
	at := v.size
	if at < len(v.data) {
		if err := v.constructRange(v.data, at, at+1, ctor); err != nil {
			v.logRollback(op, err)
			return err
		}
		v.size++
		return nil
	}
	newCap, err := v.growCap()
	if err != nil {
		v.logRollback(op, err)
		return err
	}
	return v.reallocate(op, newCap, at+1, func(block []T) error {
		return v.constructRange(block, at, at+1, ctor)
	})
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.cfg.destroy(&v.data[v.size])
}
