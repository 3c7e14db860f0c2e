package knotanim

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// AssetProvider resolves a named resource of a given extension to raw bytes.
// The engine takes this capability instead of reaching into a process-wide
// bundle lookup, so tests and platforms can supply their own resolution.
type AssetProvider interface {
	Asset(name, ext string) ([]byte, error)
}

// FSProvider is an AssetProvider backed by an fs.FS (a directory, embed.FS,
// zip bundle, ...). Assets resolve as "<name>.<ext>" relative to the root.
type FSProvider struct {
	fsys fs.FS
}

// NewFSProvider creates a provider reading from fsys.
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

// Asset implements AssetProvider. A missing file surfaces the underlying
// fs.ErrNotExist so callers can distinguish not-found from read failures.
func (p *FSProvider) Asset(name, ext string) ([]byte, error) {
	b, err := fs.ReadFile(p.fsys, name+"."+ext)
	if err != nil {
		return nil, fmt.Errorf("knotanim: asset %s.%s: %w", name, ext, err)
	}
	return b, nil
}

// stripName reduces an image reference from a descriptor ("images/bowline.png")
// to the provider name it resolves under ("bowline").
func stripName(ref string) string {
	base := path.Base(ref)
	return strings.TrimSuffix(base, path.Ext(base))
}

// loadStrips resolves and decodes every strip image a descriptor references,
// in order. The engine ships single-strip assets today, but each reference
// is dispatched individually so imageIndex > 0 works when assets grow a
// second strip.
func loadStrips(provider AssetProvider, d *AtlasDescriptor) ([]*ebiten.Image, error) {
	strips := make([]*ebiten.Image, len(d.ImageRefs))
	for i, ref := range d.ImageRefs {
		raw, err := provider.Asset(stripName(ref), "png")
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("knotanim: decode strip %q: %w", ref, err)
		}
		strips[i] = ebiten.NewImageFromImage(img)
	}
	return strips, nil
}

// buildSet loads a descriptor's strips and slices its default sequence.
// Runs on the loader's worker goroutine; the returned set is immutable and
// is only handed to the render loop once complete.
func buildSet(provider AssetProvider, d *AtlasDescriptor, assetName string) (*AnimationSet, error) {
	strips, err := loadStrips(provider, d)
	if err != nil {
		return nil, err
	}
	return SliceSequence(d, strips, defaultSequence(d, assetName))
}

// defaultSequence picks which named sequence an asset plays: the sequence
// named after the asset when present, otherwise the lone sequence, otherwise
// the lexicographically first (deterministic across runs).
func defaultSequence(d *AtlasDescriptor, assetName string) string {
	if _, ok := d.NamedSequences[assetName]; ok {
		return assetName
	}
	first := ""
	for name := range d.NamedSequences {
		if first == "" || name < first {
			first = name
		}
	}
	return first
}
