package vector

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// maxBlockBytes bounds a single block: 128 TiB on 64-bit platforms, 1 GiB on
// 32-bit ones. Larger requests are rejected before reaching the runtime.
const maxBlockBytes = 1 << (30 + 17*(^uint(0)>>63))

// ctorFunc builds the element for slot i of a batch into slot.
type ctorFunc[T any] func(slot *T, i int) error

// maxLen returns the largest block, in elements, this vector may request.
func (v *Vector[T]) maxLen() int {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	n := math.MaxInt
	if elemSize > 0 {
		n = maxBlockBytes / elemSize
	}
	if v.cfg.maxCap > 0 && v.cfg.maxCap < n {
		n = v.cfg.maxCap
	}
	return n
}

// allocate returns a block of n unconstructed slots. It never touches the
// vector's current block, size or capacity.
func (v *Vector[T]) allocate(n int) (block []T, err error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative length %d", n)
	}
	if limit := v.maxLen(); n > limit {
		return nil, errors.Wrapf(ErrAllocation, "%d elements exceeds limit of %d", n, limit)
	}
	defer func() {
		// make panics on lengths the runtime cannot satisfy
		if r := recover(); r != nil {
			block = nil
			err = errors.Wrapf(ErrAllocation, "%d elements: %v", n, r)
		}
	}()
	block = make([]T, n)
	v.stats.allocations++
	return block, nil
}

// constructRange builds block[from:to] one slot at a time in ascending order.
// If a slot fails, that slot is reset and every slot built by this call is
// destroyed in reverse before the error (or panic) propagates.
func (v *Vector[T]) constructRange(block []T, from, to int, ctor ctorFunc[T]) (err error) {
	i := from
	defer func() {
		if i < to {
			var zero T
			block[i] = zero
			v.unwindRange(block, from, i)
		}
	}()
	for ; i < to; i++ {
		if err = ctor(&block[i], i); err != nil {
			return markConstruction(err, i)
		}
	}
	return nil
}

// destroyRange destroys block[from:to] in ascending order.
func (v *Vector[T]) destroyRange(block []T, from, to int) {
	for i := from; i < to; i++ {
		v.cfg.destroy(&block[i])
	}
}

// unwindRange destroys block[from:to] in descending order.
func (v *Vector[T]) unwindRange(block []T, from, to int) {
	for i := to - 1; i >= from; i-- {
		v.cfg.destroy(&block[i])
	}
}

// relocateRange moves old[0:n] into block[0:n] in ascending order. Relocation
// transfers ownership, so a failure hands every element back to old by
// zeroing the partial copies in block without destroying them.
func (v *Vector[T]) relocateRange(block, old []T, n int) (err error) {
	i := 0
	defer func() {
		if i < n {
			clear(block[:i+1])
		}
	}()
	for ; i < n; i++ {
		if err = v.cfg.moveTo(&block[i], &old[i]); err != nil {
			return markConstruction(err, i)
		}
	}
	return nil
}

// deallocate drops the vector's block. All live elements must already be
// destroyed or relocated.
func (v *Vector[T]) deallocate() {
	v.data = nil
	v.size = 0
}

// build fills an empty vector with n elements produced by ctor into a block
// of exactly n slots. On failure the vector stays empty.
func (v *Vector[T]) build(n int, ctor ctorFunc[T]) error {
	if n == 0 {
		return nil
	}
	block, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err := v.constructRange(block, 0, n, ctor); err != nil {
		return err
	}
	v.data, v.size = block, n
	return nil
}

// reallocate moves the live elements into a fresh block of newCap slots,
// lets tail construct slots [size, newSize) of that block, then adopts the new
// block. Nothing in the vector changes until every step has succeeded; a
// failure discards the new block and leaves the old one in place.
//
// Moving is an ownership transfer: Destroy never runs on a moved-from slot.
// On commit the old slots are zeroed; on rollback the relocated slots in the
// new block are zeroed and the old elements remain the owners.
func (v *Vector[T]) reallocate(op string, newCap, newSize int, tail func(block []T) error) (err error) {
	block, err := v.allocate(newCap)
	if err != nil {
		v.logRollback(op, err)
		return err
	}
	old := v.data
	relocated := 0
	committed := false
	defer func() {
		if committed {
			return
		}
		clear(block[:relocated])
		v.stats.rollbacks++
		v.logRollback(op, err)
	}()

	if err = v.relocateRange(block, old, v.size); err != nil {
		return err
	}
	relocated = v.size
	if tail != nil {
		if err = tail(block); err != nil {
			return err
		}
	}
	committed = true

	clear(old[:v.size])
	v.stats.reallocations++
	v.stats.relocated += v.size
	v.logRealloc(len(old), newCap)
	v.data, v.size = block, newSize
	return nil
}

// indexOf reports whether p addresses one of v's live slots, and which.
func (v *Vector[T]) indexOf(p *T) (int, bool) {
	size := unsafe.Sizeof(*p)
	if size == 0 || v.size == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))
	off := uintptr(unsafe.Pointer(p)) - base
	if off >= uintptr(v.size)*size || off%size != 0 {
		return 0, false
	}
	return int(off / size), true
}

// growCap returns the capacity used when back-insertion finds no spare slot.
func (v *Vector[T]) growCap() (int, error) {
	c := len(v.data)
	if c == 0 {
		return 1, nil
	}
	if c > math.MaxInt/2 {
		return 0, errors.Wrapf(ErrAllocation, "doubling capacity %d overflows", c)
	}
	return 2 * c, nil
}
