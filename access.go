package vector

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index i, or an error matching ErrOutOfRange when
// i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.AtRef(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef is like At but returns a pointer to the element.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.data[i], nil
}

// Get returns the element at index i. It panics if i is outside [0, Len()).
func (v *Vector[T]) Get(i int) T {
	return v.data[:v.size][i]
}

// Ref returns a pointer to the element at index i. It panics if i is outside
// [0, Len()). The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[:v.size][i]
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	return *v.FrontRef()
}

// FrontRef returns a pointer to the first element. It panics on an empty
// vector.
func (v *Vector[T]) FrontRef() *T {
	if v.size == 0 {
		panic("vector: front of empty vector")
	}
	return &v.data[0]
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	return *v.BackRef()
}

// BackRef returns a pointer to the last element. It panics on an empty
// vector.
func (v *Vector[T]) BackRef() *T {
	if v.size == 0 {
		panic("vector: back of empty vector")
	}
	return &v.data[v.size-1]
}

// Data returns the live elements as a slice aliasing v's block. Writes
// through it modify v. It is nil when v has no storage, and it is
// invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	if v.data == nil {
		return nil
	}
	return v.data[:v.size:v.size]
}

// Slice returns a copy of the live elements made with plain assignment,
// independent of v's storage and hooks.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.size)
	copy(out, v.data[:v.size])
	return out
}
