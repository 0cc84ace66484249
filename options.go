package vector

import "go.uber.org/zap"

// Traits describes how elements of T are built, duplicated, relocated and
// torn down inside a vector's storage block. Every hook is optional; a nil
// hook falls back to plain Go value semantics.
//
// Construct, Copy and Move build into a slot that holds T's zero value. When
// one of them returns an error (or panics), the slot is reset to the zero
// value and the enclosing operation rolls back.
//
// Move transfers ownership of whatever *src owns to dst; it must not acquire
// new resources or release any held by src. Relocation relies on this: once
// every element has reached the new block the old slots are zeroed without
// Destroy, and if relocation rolls back the new slots are zeroed without
// Destroy while src remains the owner. A nil Move is a shallow copy, which
// satisfies the contract for any T.
//
// Destroy must not fail, and must accept T's zero value, which is what a
// moved-from element holds. A panicking Destroy is a precondition violation and
// leaves the vector in an unspecified state.
type Traits[T any] struct {
	// Construct default-constructs a value in slot.
	Construct func(slot *T) error
	// Copy copy-constructs *src into dst.
	Copy func(dst, src *T) error
	// Move moves *src into dst, transferring ownership.
	Move func(dst, src *T) error
	// Destroy releases whatever the value in slot owns.
	Destroy func(slot *T)
}

type config[T any] struct {
	traits Traits[T]
	maxCap int // 0 means no ceiling
	logger *zap.Logger
}

// Option configures a vector at construction time.
type Option[T any] func(*config[T])

// WithTraits sets the element hooks used for every construction, copy,
// relocation and destruction.
func WithTraits[T any](t Traits[T]) Option[T] {
	return func(c *config[T]) {
		c.traits = t
	}
}

// WithMaxCapacity caps the number of slots any single block may hold.
// Requests above the cap fail with ErrAllocation. n <= 0 removes the cap.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n < 0 {
			n = 0
		}
		c.maxCap = n
	}
}

// WithLogger sets the logger that receives reallocation and rollback events.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = l
	}
}

func newConfig[T any](opts []Option[T]) config[T] {
	var c config[T]
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c *config[T]) construct(slot *T) error {
	if c.traits.Construct == nil {
		return nil
	}
	return c.traits.Construct(slot)
}

func (c *config[T]) copyTo(dst, src *T) error {
	if c.traits.Copy == nil {
		*dst = *src
		return nil
	}
	return c.traits.Copy(dst, src)
}

func (c *config[T]) moveTo(dst, src *T) error {
	if c.traits.Move == nil {
		*dst = *src
		return nil
	}
	return c.traits.Move(dst, src)
}

func (c *config[T]) destroy(slot *T) {
	if c.traits.Destroy != nil {
		c.traits.Destroy(slot)
	}
	var zero T
	*slot = zero
}
