package vector

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

var errInjected = errors.New("injected failure")

// item is an element whose lifetime is tracked by a probe.
type item struct {
	val  int
	live bool
}

// probe counts constructions and destructions of items and can fail (or
// panic on) the n-th construction or move attempt.
type probe struct {
	attempts  int
	live      int
	failAt    int // attempt number that returns errInjected; 0 disables
	panicAt   int // attempt number that panics; 0 disables
	destroyed []int
}

func (p *probe) make(slot *item, val int) error {
	p.attempts++
	// Scribble on the slot first so a failed construction is not invisible.
	slot.val = -val - 1
	if p.attempts == p.failAt {
		return errInjected
	}
	if p.attempts == p.panicAt {
		panic(errInjected)
	}
	*slot = item{val: val, live: true}
	p.live++
	return nil
}

// move transfers src into dst. It counts as an attempt, so relocations can
// be failed like constructions, but it creates no new live item.
func (p *probe) move(dst, src *item) error {
	p.attempts++
	dst.val = -src.val - 1
	if p.attempts == p.failAt {
		return errInjected
	}
	if p.attempts == p.panicAt {
		panic(errInjected)
	}
	*dst = *src
	return nil
}

// failAfter arms the probe to fail the k-th construction from now.
func (p *probe) failAfter(k int) {
	p.failAt = p.attempts + k
}

// panicAfter arms the probe to panic on the k-th construction from now.
func (p *probe) panicAfter(k int) {
	p.panicAt = p.attempts + k
}

func (p *probe) disarm() {
	p.failAt, p.panicAt = 0, 0
}

func (p *probe) traits() Traits[item] {
	return Traits[item]{
		Construct: func(slot *item) error {
			return p.make(slot, 0)
		},
		Copy: func(dst, src *item) error {
			if !src.live {
				panic("copy from dead item")
			}
			return p.make(dst, src.val)
		},
		Move: func(dst, src *item) error {
			if !src.live {
				panic("move from dead item")
			}
			return p.move(dst, src)
		},
		Destroy: func(slot *item) {
			if !slot.live {
				panic("destroying dead item")
			}
			p.live--
			p.destroyed = append(p.destroyed, slot.val)
		},
	}
}

func items(vals ...int) []item {
	out := make([]item, len(vals))
	for i, v := range vals {
		out[i] = item{val: v, live: true}
	}
	return out
}

func valuesOf(v *Vector[item]) []int {
	out := make([]int, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x.val)
	}
	return out
}

// newTracked returns a vector of the given values built with p's traits.
func newTracked(p *probe, vals ...int) *Vector[item] {
	return Must(FromSlice(items(vals...), WithTraits(p.traits())))
}

// snapshot captures what a rollback must restore.
type snapshot struct {
	size, capacity int
	block          uintptr
	vals           []int
}

func snap(v *Vector[item]) snapshot {
	block := uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))
	return snapshot{size: v.Len(), capacity: v.Cap(), block: block, vals: valuesOf(v)}
}

// tailIsZero reports whether every slot past the live range holds the zero
// value.
func tailIsZero(v *Vector[item]) bool {
	for _, x := range v.data[v.size:] {
		if x != (item{}) {
			return false
		}
	}
	return true
}
