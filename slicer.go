package knotanim

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationSet is the resolved, ready-to-render form of one named sequence:
// a list of per-frame textures and the parallel FrameRect data they were cut
// from. Built once per mode and cached for the lifetime of the loaded asset.
// Immutable after construction.
type AnimationSet struct {
	Frames []*ebiten.Image
	Rects  []FrameRect
}

// Len returns the number of renderable frames in the set.
func (s *AnimationSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// LastIndex returns the index of the final frame, or -1 for an empty set.
func (s *AnimationSet) LastIndex() int {
	return s.Len() - 1
}

// FrameSize returns the pixel size of the set's frames. Frames within one
// sequence are authored at a uniform size; the first frame is authoritative.
func (s *AnimationSet) FrameSize() (w, h int) {
	if s.Len() == 0 {
		return 0, 0
	}
	return s.Rects[0].Width, s.Rects[0].Height
}

// SliceSequence crops the strip image(s) into the per-frame textures of the
// named sequence. Sequence order is preserved, including duplicate frame
// indices.
//
// A frame whose rectangle falls outside its strip image, or whose imageIndex
// has no matching strip, is skipped with a log line rather than failing the
// whole set: bulk asset generation produces the occasional sparse atlas and
// playback must tolerate it. An unknown sequence name is an error.
func SliceSequence(d *AtlasDescriptor, strips []*ebiten.Image, name string) (*AnimationSet, error) {
	seq := d.Sequence(name)
	if seq == nil {
		return nil, fmt.Errorf("knotanim: descriptor has no sequence %q", name)
	}

	set := &AnimationSet{
		Frames: make([]*ebiten.Image, 0, len(seq)),
		Rects:  make([]FrameRect, 0, len(seq)),
	}

	for _, idx := range seq {
		rect := d.FrameRects[idx]

		if rect.ImageIndex < 0 || rect.ImageIndex >= len(strips) {
			log.Printf("knotanim: sequence %q frame %d: no strip image %d, skipping", name, idx, rect.ImageIndex)
			continue
		}
		strip := strips[rect.ImageIndex]

		bounds := strip.Bounds()
		r := image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height)
		if !r.In(bounds) {
			log.Printf("knotanim: sequence %q frame %d: rect %v outside strip %v, skipping", name, idx, r, bounds)
			continue
		}

		set.Frames = append(set.Frames, strip.SubImage(r).(*ebiten.Image))
		set.Rects = append(set.Rects, rect)
	}

	return set, nil
}
