package knotanim

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// mirrorDuration is the horizontal flip transition time in seconds.
	mirrorDuration = 0.75
	// rotateDuration is the 90° rotation transition time in seconds.
	rotateDuration = 1.0
	// rotationStep is added per rotate gesture (counter-clockwise).
	rotationStep = math.Pi / 2
	// rotatedTolerance absorbs float accumulation when testing the angle
	// against 0 mod 2π.
	rotatedTolerance = 0.01
)

// TransformManager owns the two interactive transforms acting on a
// RenderNode: the mirror flag and the cumulative rotation angle. Both
// animate linearly to their targets; toggling mid-flight re-targets the
// in-flight tween instead of queuing.
//
// The manager outlives mode switches: the node it drives is rebuilt per
// mode, but mirror and rotation state carry across via Rebind.
type TransformManager struct {
	node      *RenderNode
	baseScale float64

	mirrored bool
	angle    float64 // cumulative target rotation, unbounded

	mirrorTween *gween.Tween
	rotateTween *gween.Tween
}

// NewTransformManager creates a manager driving the given node at the given
// base scale. The node's scale is initialized immediately.
func NewTransformManager(node *RenderNode, baseScale float64) *TransformManager {
	m := &TransformManager{node: node, baseScale: baseScale}
	node.SetScale(baseScale, baseScale)
	return m
}

// Update advances in-flight transitions by dt seconds.
func (m *TransformManager) Update(dt float64) {
	if m.mirrorTween != nil {
		v, done := m.mirrorTween.Update(float32(dt))
		m.node.SetScale(float64(v), m.node.ScaleY)
		if done {
			m.mirrorTween = nil
		}
	}
	if m.rotateTween != nil {
		v, done := m.rotateTween.Update(float32(dt))
		m.node.SetRotation(float64(v))
		if done {
			m.rotateTween = nil
		}
	}
}

// ToggleMirror flips the horizontal scale sign over the mirror transition.
// Toggling while a flip is in flight re-targets the tween at the opposite
// sign from the node's current (partial) scale.
func (m *TransformManager) ToggleMirror() {
	m.mirrored = !m.mirrored
	target := m.baseScale
	if m.mirrored {
		target = -m.baseScale
	}
	m.mirrorTween = gween.New(float32(m.node.ScaleX), float32(target), mirrorDuration, ease.Linear)
}

// Rotate adds 90° counter-clockwise to the cumulative angle and animates to
// the new absolute angle. The angle accumulates without wrapping.
func (m *TransformManager) Rotate() {
	m.angle += rotationStep
	m.rotateTween = gween.New(float32(m.node.Rotation), float32(m.angle), rotateDuration, ease.Linear)
}

// IsMirrored reports the mirror flag (the transition target, not the
// in-flight value).
func (m *TransformManager) IsMirrored() bool {
	return m.mirrored
}

// IsRotated reports whether the cumulative angle differs from 0 modulo 2π.
// Exact zero is not assumed: four 90° gestures accumulate float error, so
// the reduced angle is compared within rotatedTolerance.
func (m *TransformManager) IsRotated() bool {
	r := math.Mod(m.angle, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r > rotatedTolerance && 2*math.Pi-r > rotatedTolerance
}

// Angle returns the cumulative target rotation in radians.
func (m *TransformManager) Angle() float64 {
	return m.angle
}

// Rebind points the manager at a freshly built node (after a mode switch)
// and reapplies the carried state: mirror sign, rotation angle, and the new
// mode's base scale. In-flight transitions are completed instantly — the
// snapshot reflects where they were headed, and the old node is gone.
func (m *TransformManager) Rebind(node *RenderNode, baseScale float64) {
	m.node = node
	m.baseScale = baseScale
	m.mirrorTween = nil
	m.rotateTween = nil

	sx := baseScale
	if m.mirrored {
		sx = -baseScale
	}
	node.SetScale(sx, baseScale)
	node.SetRotation(m.angle)
}

// FitScale returns the base scale that fits a frame of the given size into
// the view bounds while preserving aspect ratio.
func FitScale(viewW, viewH float64, frameW, frameH int) float64 {
	if frameW <= 0 || frameH <= 0 {
		return 1
	}
	return math.Min(viewW/float64(frameW), viewH/float64(frameH))
}
