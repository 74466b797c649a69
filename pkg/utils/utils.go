package utils

import (
	"context"
	"runtime/debug"

	"wsb-signal-tracker/pkg/logger"
)

// GoSafe runs fn in a goroutine and recovers from panics.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				debug.PrintStack()
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether the context is still alive, logging when it is not.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Warn("Context canceled, stopping work", logger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
