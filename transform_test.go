package knotanim

import (
	"math"
	"testing"
)

func TestTransformManager_MirrorFlipsScaleSign(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 2.0)

	m.ToggleMirror()
	if !m.IsMirrored() {
		t.Fatal("expected mirrored after toggle")
	}

	// 0.75 s linear transition, run in exact halves.
	m.Update(0.375)
	m.Update(0.375)
	if math.Abs(node.ScaleX-(-2.0)) > 0.01 {
		t.Errorf("ScaleX = %f after flip, want -2.0", node.ScaleX)
	}
	if math.Abs(node.ScaleY-2.0) > 1e-9 {
		t.Errorf("ScaleY = %f, want 2.0 (vertical scale untouched)", node.ScaleY)
	}
}

func TestTransformManager_MirrorBackRestoresSign(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	m.ToggleMirror()
	m.Update(0.75)
	m.ToggleMirror()
	m.Update(0.75)

	if m.IsMirrored() {
		t.Error("expected unmirrored after second toggle")
	}
	if math.Abs(node.ScaleX-1.0) > 0.01 {
		t.Errorf("ScaleX = %f after flip back, want 1.0", node.ScaleX)
	}
}

func TestTransformManager_MirrorMidFlightRetargets(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	m.ToggleMirror()
	m.Update(0.375) // halfway: ScaleX ~ 0
	midway := node.ScaleX

	// Toggling mid-transition re-targets the in-flight animation; it does
	// not queue a second flip.
	m.ToggleMirror()
	if m.IsMirrored() {
		t.Fatal("second toggle should clear the mirror flag")
	}
	m.Update(0.75)
	if math.Abs(node.ScaleX-1.0) > 0.01 {
		t.Errorf("ScaleX = %f after retarget, want 1.0 (from midway %f)", node.ScaleX, midway)
	}
}

func TestTransformManager_RotateAccumulates(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	m.Rotate()
	m.Update(1.0)
	if !m.IsRotated() {
		t.Error("expected rotated after one 90° gesture")
	}
	if math.Abs(node.Rotation-math.Pi/2) > 0.01 {
		t.Errorf("Rotation = %f after one gesture, want %f", node.Rotation, math.Pi/2)
	}

	m.Rotate()
	m.Rotate()
	m.Rotate()
	m.Update(1.0)

	// Four quarter turns come back around: angle ≡ 0 mod 2π within tolerance.
	if m.IsRotated() {
		t.Error("expected not rotated after four 90° gestures")
	}
	// The accumulated angle itself is unbounded, not wrapped.
	if math.Abs(m.Angle()-2*math.Pi) > 1e-9 {
		t.Errorf("Angle = %f, want 2π (unbounded accumulation)", m.Angle())
	}
}

func TestTransformManager_RotateMidFlightContinuesToAbsoluteAngle(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	m.Rotate()
	m.Update(0.5) // partway to π/2
	m.Rotate()    // target is now the absolute angle π
	m.Update(1.0)

	if math.Abs(node.Rotation-math.Pi) > 0.01 {
		t.Errorf("Rotation = %f after stacked gestures, want %f", node.Rotation, math.Pi)
	}
}

func TestTransformManager_IsRotatedTolerance(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	// Exact zero is not assumed: seed a tiny accumulation error directly.
	m.angle = 4 * (math.Pi / 2.000001)
	if m.IsRotated() {
		t.Error("angle within tolerance of 2π should not report rotated")
	}

	m.angle = math.Pi / 2
	if !m.IsRotated() {
		t.Error("quarter turn should report rotated")
	}

	m.angle = -math.Pi / 2
	if !m.IsRotated() {
		t.Error("negative quarter turn should report rotated")
	}
}

func TestTransformManager_RebindCarriesStateToNewNode(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	m.ToggleMirror()
	m.Rotate()
	m.Update(1.0)

	// A mode switch rebuilds the node; Rebind reapplies mirror sign and
	// rotation onto the fresh node at the new mode's base scale.
	fresh := NewRenderNode()
	m.Rebind(fresh, 3.0)

	if math.Abs(fresh.ScaleX-(-3.0)) > 1e-9 {
		t.Errorf("rebound ScaleX = %f, want -3.0", fresh.ScaleX)
	}
	if math.Abs(fresh.ScaleY-3.0) > 1e-9 {
		t.Errorf("rebound ScaleY = %f, want 3.0", fresh.ScaleY)
	}
	if math.Abs(fresh.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("rebound Rotation = %f, want %f", fresh.Rotation, math.Pi/2)
	}
	if !m.IsMirrored() || !m.IsRotated() {
		t.Error("mirror and rotation state must survive the rebind")
	}
}

func TestTransformManager_RebindCompletesInFlightTransitions(t *testing.T) {
	node := NewRenderNode()
	m := NewTransformManager(node, 1.0)

	m.ToggleMirror()
	m.Update(0.1) // still in flight

	fresh := NewRenderNode()
	m.Rebind(fresh, 1.0)

	// The snapshot reflects where the transition was headed.
	if math.Abs(fresh.ScaleX-(-1.0)) > 1e-9 {
		t.Errorf("rebound mid-flight ScaleX = %f, want -1.0", fresh.ScaleX)
	}
	// Further updates must not resurrect the old tween on the new node.
	m.Update(1.0)
	if math.Abs(fresh.ScaleX-(-1.0)) > 1e-9 {
		t.Errorf("ScaleX drifted to %f after rebind, want -1.0", fresh.ScaleX)
	}
}

func TestFitScale(t *testing.T) {
	if got := FitScale(320, 320, 100, 50); math.Abs(got-3.2) > 1e-9 {
		t.Errorf("FitScale(320,320,100,50) = %f, want 3.2 (width-limited)", got)
	}
	if got := FitScale(320, 100, 100, 50); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("FitScale(320,100,100,50) = %f, want 2.0 (height-limited)", got)
	}
	if got := FitScale(320, 320, 0, 50); got != 1 {
		t.Errorf("FitScale with degenerate frame = %f, want 1", got)
	}
}
