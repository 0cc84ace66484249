package vector

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the package logger used by vectors created without
// WithLogger. It is a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. A nil logger restores the no-op
// logger. Vectors without their own logger pick the change up immediately.
// It is safe to call concurrently with vector operations.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func (v *Vector[T]) log() *zap.Logger {
	if v.cfg.logger != nil {
		return v.cfg.logger
	}
	return Logger()
}

func (v *Vector[T]) logRealloc(oldCap, newCap int) {
	if ce := v.log().Check(zap.DebugLevel, "vector reallocated"); ce != nil {
		ce.Write(
			zap.Int("size", v.size),
			zap.Int("old_capacity", oldCap),
			zap.Int("new_capacity", newCap),
		)
	}
}

func (v *Vector[T]) logRollback(op string, err error) {
	if ce := v.log().Check(zap.DebugLevel, "vector rolled back"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("size", v.size),
			zap.Int("capacity", len(v.data)),
			zap.Error(err),
		)
	}
}
