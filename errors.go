package vector

import "github.com/cockroachdb/errors"

// ErrAllocation is the cause of every error returned when a storage block
// cannot be obtained. The vector is left as it was before the call.
var ErrAllocation = errors.New("vector: allocation failed")

// ErrConstruction marks errors returned by a Construct, Copy or Move hook.
// The hook's own error stays reachable through errors.Is and errors.As.
var ErrConstruction = errors.New("vector: element construction failed")

// ErrOutOfRange is returned by checked access when the index is outside the
// live range.
var ErrOutOfRange = errors.New("vector: index out of range")

// IsAllocationError reports whether err was caused by a rejected block request.
func IsAllocationError(err error) bool {
	return errors.Is(err, ErrAllocation)
}

// IsConstructionError reports whether err came from an element hook.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrConstruction)
}

// IsOutOfRange reports whether err is a checked-access bounds failure.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func markConstruction(err error, slot int) error {
	return errors.Mark(errors.Wrapf(err, "slot %d", slot), ErrConstruction)
}

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d with length %d", index, size)
}
