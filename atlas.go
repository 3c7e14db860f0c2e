package knotanim

import (
	"encoding/json"
	"fmt"
)

// FrameRect describes one packed frame within a strip image.
// Parsed from a descriptor array [x, y, width, height, imageIndex, regX, regY];
// trailing entries past the fourth may be absent and default to 0.
type FrameRect struct {
	X, Y          int // top-left corner within the strip image
	Width, Height int // frame size in pixels
	ImageIndex    int // which strip image the frame lives on
	RegX, RegY    int // registration point, pixel offsets from the frame origin
}

// Anchor returns the normalized anchor point for the frame.
// The vertical term is inverted because the authoring tool's origin is
// top-left while the render surface's is bottom-left.
func (r FrameRect) Anchor() Vec2 {
	if r.Width == 0 || r.Height == 0 {
		return Vec2{}
	}
	return Vec2{
		X: float64(r.RegX) / float64(r.Width),
		Y: 1 - float64(r.RegY)/float64(r.Height),
	}
}

// AtlasDescriptor is the decoded form of a packed-sprite JSON descriptor.
// Immutable once decoded; one per distinct animation asset.
type AtlasDescriptor struct {
	ImageRefs      []string
	FrameRate      int
	FrameRects     []FrameRect
	NamedSequences map[string][]int
}

// Sequence returns the frame-index sequence with the given name,
// or nil if the descriptor has no such animation.
func (d *AtlasDescriptor) Sequence(name string) []int {
	return d.NamedSequences[name]
}

// --- JSON structure types ---

type jsonDescriptor struct {
	Images     []string                 `json:"images"`
	FrameRate  int                      `json:"framerate"`
	Frames     [][]int                  `json:"frames"`
	Animations map[string]jsonAnimation `json:"animations"`
}

type jsonAnimation struct {
	Frames []int `json:"frames"`
}

// DecodeDescriptor parses raw descriptor bytes into an AtlasDescriptor.
// It performs no image I/O.
//
// Frame arrays shorter than 7 integers are tolerated: imageIndex, regX and
// regY default to 0, mirroring looseness in the authoring tool. Arrays
// shorter than 4 (missing geometry) are rejected. Malformed JSON, missing
// fields, and empty frame or image lists fail with a *DecodeError.
func DecodeDescriptor(data []byte) (*AtlasDescriptor, error) {
	var raw jsonDescriptor
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Reason: "malformed JSON", Err: err}
	}
	if len(raw.Images) == 0 {
		return nil, &DecodeError{Reason: "no images listed"}
	}
	if len(raw.Frames) == 0 {
		return nil, &DecodeError{Reason: "no frames listed"}
	}
	if len(raw.Animations) == 0 {
		return nil, &DecodeError{Reason: "no animations listed"}
	}

	d := &AtlasDescriptor{
		ImageRefs:      raw.Images,
		FrameRate:      raw.FrameRate,
		FrameRects:     make([]FrameRect, len(raw.Frames)),
		NamedSequences: make(map[string][]int, len(raw.Animations)),
	}

	for i, arr := range raw.Frames {
		rect, err := parseFrameArray(arr)
		if err != nil {
			return nil, &DecodeError{Reason: fmt.Sprintf("frame %d", i), Err: err}
		}
		d.FrameRects[i] = rect
	}

	for name, anim := range raw.Animations {
		if len(anim.Frames) == 0 {
			return nil, &DecodeError{Reason: fmt.Sprintf("animation %q has no frames", name)}
		}
		for _, idx := range anim.Frames {
			if idx < 0 || idx >= len(d.FrameRects) {
				return nil, &DecodeError{
					Reason: fmt.Sprintf("animation %q references frame %d of %d", name, idx, len(d.FrameRects)),
				}
			}
		}
		d.NamedSequences[name] = anim.Frames
	}

	return d, nil
}

// parseFrameArray maps [x, y, w, h, imageIndex, regX, regY] to a FrameRect,
// zero-filling absent trailing values.
func parseFrameArray(arr []int) (FrameRect, error) {
	if len(arr) < 4 {
		return FrameRect{}, fmt.Errorf("array has %d values, need at least 4", len(arr))
	}
	rect := FrameRect{X: arr[0], Y: arr[1], Width: arr[2], Height: arr[3]}
	if len(arr) > 4 {
		rect.ImageIndex = arr[4]
	}
	if len(arr) > 5 {
		rect.RegX = arr[5]
	}
	if len(arr) > 6 {
		rect.RegY = arr[6]
	}
	return rect, nil
}
