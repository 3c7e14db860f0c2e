package knotanim

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderNode is the owned renderable value the engine mutates: the current
// frame texture, its anchor point, and the interactive transform. A single
// flat struct, rebuilt (not aliased) when the player switches animation
// modes, so transform state can never leak through a stale node reference.
//
// The render surface reads Texture and DrawOptions each tick; it owns no
// animation logic.
type RenderNode struct {
	Texture *ebiten.Image
	Anchor  Vec2 // normalized, bottom-left origin (see FrameRect.Anchor)

	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	dirty bool
}

// NewRenderNode creates a node with identity transform and no texture.
func NewRenderNode() *RenderNode {
	return &RenderNode{ScaleX: 1, ScaleY: 1, dirty: true}
}

// SetFrame applies a frame's texture and anchor together. The two always
// update in the same call so the displayed image and its pivot can never be
// one frame apart, which would read as jitter.
func (n *RenderNode) SetFrame(tex *ebiten.Image, rect FrameRect) {
	n.Texture = tex
	n.Anchor = rect.Anchor()
	n.dirty = true
}

// SetPosition sets the node's position and marks it dirty.
func (n *RenderNode) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.dirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *RenderNode) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.dirty = true
}

// SetRotation sets the node's rotation (radians) and marks it dirty.
func (n *RenderNode) SetRotation(r float64) {
	n.Rotation = r
	n.dirty = true
}

// MarkDirty forces the render surface to treat the node as changed.
// Useful after bulk-setting fields directly.
func (n *RenderNode) MarkDirty() {
	n.dirty = true
}

// ConsumeDirty reports whether the node changed since the last call and
// clears the flag. The render surface uses this to skip redundant redraws.
func (n *RenderNode) ConsumeDirty() bool {
	d := n.dirty
	n.dirty = false
	return d
}

// DrawOptions returns ebiten draw options that place the texture so its
// registration point lands on (X, Y), then applies scale and rotation about
// that point. Ebiten's coordinate system is y-down, so the anchor's
// bottom-left-origin vertical term is converted back here.
func (n *RenderNode) DrawOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	if n.Texture == nil {
		return op
	}
	b := n.Texture.Bounds()
	px := n.Anchor.X * float64(b.Dx())
	py := (1 - n.Anchor.Y) * float64(b.Dy())
	op.GeoM.Translate(-px, -py)
	op.GeoM.Scale(n.ScaleX, n.ScaleY)
	// Rotation is counter-clockwise in the engine's bottom-left-origin
	// space; ebiten's y-down axis flips the visual direction, so negate.
	op.GeoM.Rotate(-n.Rotation)
	op.GeoM.Translate(n.X, n.Y)
	return op
}
