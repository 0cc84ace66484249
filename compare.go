package vector

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same length and equal elements in
// index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a orders before b lexicographically: the first index
// where the elements differ decides, and when one vector is a prefix of the
// other the shorter one is less.
//
// Elements are ordered as by cmp.Compare, so a floating-point NaN sorts
// before every other value and equal to itself. The ordering functions
// therefore form a total order even for float elements, while Equal keeps
// the == semantics under which NaN differs from everything.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a is less than or equal to b.
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports whether a is greater than or equal to b.
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// LessFunc is like Less for element types ordered by less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		x, y := a.data[i], b.data[i]
		if less(x, y) {
			return true
		}
		if less(y, x) {
			return false
		}
	}
	return a.size < b.size
}

// CompareFunc is like Compare for element types compared by cmp, which
// returns a negative, zero or positive result.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp(a.data[i], b.data[i]); c != 0 {
			if c < 0 {
				return -1
			}
			return +1
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return +1
	}
	return 0
}
