package knotanim

import (
	"errors"
	"fmt"
)

// Mode selects which animation dataset a player is showing.
type Mode uint8

const (
	// ModeNormal is the step-by-step tying animation.
	ModeNormal Mode = iota
	// ModeRotation360 is the turntable footage of the finished knot.
	ModeRotation360
)

// String returns the mode name for log messages.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeRotation360:
		return "rotation360"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Vec2 is a 2D vector used for positions, anchors, and sizes.
type Vec2 struct {
	X, Y float64
}

// DecodeError describes a structurally invalid animation descriptor.
// The asset it belongs to cannot be animated; the UI layer shows a
// "no animation available" placeholder instead.
type DecodeError struct {
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("knotanim: decode descriptor: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("knotanim: decode descriptor: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrEmptySet is returned when an operation needs a non-empty AnimationSet.
// Callers treat it as a no-op condition, not a failure.
var ErrEmptySet = errors.New("knotanim: empty animation set")

// globalDebug enables warning logs for recoverable conditions (skipped
// frames, no-op plays). Mirrors the most recently set player debug flag so
// free functions can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables debug logging package-wide. When enabled,
// recoverable playback conditions (out-of-bounds frames, empty-set plays,
// rejected mode switches) are logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}
