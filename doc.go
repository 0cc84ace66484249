// Package vector implements a growable array that manages its own storage
// block.
//
// # Overview
//
// A Vector owns a single contiguous block. Len() slots at the front hold live
// elements; the remaining Cap()-Len() slots are allocated but unconstructed
// (they hold T's zero value). Every mutation goes through a small storage
// engine that allocates blocks, constructs and destroys elements in place,
// and relocates elements between blocks.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Clear() // destroys elements, releases the block
//
//	for i := range 10 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//
//	x, err := v.At(3)         // bounds-checked
//	for i, x := range v.All() // range-over-func traversal
//
// # Element Hooks
//
// By default elements follow Go value semantics. Types that own resources,
// or whose construction can fail, describe themselves with Traits:
//
//	v := vector.New(vector.WithTraits(vector.Traits[*File]{
//		Copy:    func(dst, src **File) error { f, err := (*src).Dup(); *dst = f; return err },
//		Destroy: func(slot **File) { (*slot).Close() },
//	}))
//
// # Failure Guarantees
//
// Every fallible operation is all-or-nothing. When an allocation is refused
// or a hook fails part-way through a batch, the elements built so far are
// destroyed in reverse order and the vector is left with the block, length
// and elements it had before the call. Relocating into a new block moves
// ownership rather than duplicating it: Destroy never runs on a moved-from
// slot, so a type with only Copy and Destroy hooks is released exactly once. Constructors return no vector at all.
// Errors match ErrAllocation, ErrConstruction or ErrOutOfRange under
// errors.Is; hook errors stay reachable through the wrapping.
//
// Swap, Move, MoveAssign, Clear, PopBack and shrinking Resize cannot fail.
//
// # Growth
//
// Back-insertion into a full block doubles the capacity, starting from 1, so
// pushing into an empty vector yields capacities 1, 2, 4, 8, ... Capacity
// only shrinks through ShrinkToFit or Clear.
//
// # Thread Safety
//
// Vector is not synchronized. Callers sharing a vector between goroutines
// must provide their own mutual exclusion.
package vector
