package knotanim

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// rotation360Suffix names the turntable companion asset: the descriptor for
// "<name>"'s 360° set is "<name>360.json" with its own strip image.
const rotation360Suffix = "360"

// PlayerConfig configures a Player.
type PlayerConfig struct {
	// Provider resolves descriptor and strip assets. Required.
	Provider AssetProvider
	// Scheduler drives frame advancement. When nil the player creates a
	// LoopScheduler and advances it from Update.
	Scheduler Scheduler
	// ViewW, ViewH are the fixed display bounds frames are scaled to fit.
	ViewW, ViewH float64
}

// loadResult is the worker goroutine's completed output. Sets are fully
// built before they are sent; the render loop never observes a partial set.
type loadResult struct {
	normal *AnimationSet
	rot360 *AnimationSet
	err    error
}

// Player is the engine facade the UI collaborator binds to: it owns the
// animation sets for both modes, the playback controller, the transform
// manager, and the renderable node, and exposes the observable state the
// render surface reads each tick.
//
// All methods must be called from the render-loop goroutine.
type Player struct {
	cfg      PlayerConfig
	sched    Scheduler
	ownSched *LoopScheduler // non-nil when the player drives its own scheduler

	node       *RenderNode
	transforms *TransformManager
	ctrl       *Controller

	normal *AnimationSet
	rot360 *AnimationSet
	mode   Mode

	pending chan loadResult
	loadErr error
}

// NewPlayer creates a player with no animation loaded. The node renders
// nothing until LoadAnimation completes.
func NewPlayer(cfg PlayerConfig) *Player {
	p := &Player{cfg: cfg, sched: cfg.Scheduler}
	if p.sched == nil {
		p.ownSched = NewLoopScheduler()
		p.sched = p.ownSched
	}
	p.reset()
	return p
}

// reset discards playback and transform state, returning the player to its
// unloaded defaults. Called on creation and whenever the underlying
// animation data changes.
func (p *Player) reset() {
	if p.ctrl != nil {
		p.ctrl.Teardown()
	}
	p.node = NewRenderNode()
	p.node.SetPosition(p.cfg.ViewW/2, p.cfg.ViewH/2)
	p.transforms = NewTransformManager(p.node, 1)
	p.ctrl = nil
	p.normal = nil
	p.rot360 = nil
	p.mode = ModeNormal
	p.pending = nil
	p.loadErr = nil
}

// LoadAnimation loads the named asset. Descriptor decoding happens
// synchronously so structural problems surface immediately as a *DecodeError
// (the UI shows its placeholder); strip decoding and texture slicing are
// offloaded to a worker goroutine and the finished sets are installed by a
// later Update call. A missing "<name>360" companion simply disables 360°
// mode; it is not an error.
func (p *Player) LoadAnimation(name string) error {
	p.reset()

	raw, err := p.cfg.Provider.Asset(name, "json")
	if err != nil {
		return err
	}
	desc, err := DecodeDescriptor(raw)
	if err != nil {
		return err
	}

	// The turntable companion is optional and its problems are non-fatal:
	// a knot without 360° footage just can't switch modes.
	var desc360 *AtlasDescriptor
	if raw360, err := p.cfg.Provider.Asset(name+rotation360Suffix, "json"); err == nil {
		if d, err := DecodeDescriptor(raw360); err == nil {
			desc360 = d
		} else if globalDebug {
			log.Printf("knotanim: %s%s descriptor rejected: %v", name, rotation360Suffix, err)
		}
	}

	ch := make(chan loadResult, 1)
	p.pending = ch
	provider := p.cfg.Provider
	go func() {
		var res loadResult
		res.normal, res.err = buildSet(provider, desc, name)
		if res.err == nil && desc360 != nil {
			set, err := buildSet(provider, desc360, name+rotation360Suffix)
			if err != nil {
				if globalDebug {
					log.Printf("knotanim: %s%s strips rejected: %v", name, rotation360Suffix, err)
				}
			} else {
				res.rot360 = set
			}
		}
		ch <- res
	}()
	return nil
}

// Update advances the player by dt seconds: polls for completed loads,
// steps the internally owned scheduler, and advances transform transitions.
// Call once per tick from the render loop.
func (p *Player) Update(dt float64) {
	p.poll()
	if p.ownSched != nil {
		p.ownSched.Update(dt)
	}
	p.transforms.Update(dt)
}

// poll installs a completed load, if any. The sets arrive complete and
// immutable, so installation is a pointer swap plus controller construction.
func (p *Player) poll() {
	if p.pending == nil {
		return
	}
	select {
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil {
			p.loadErr = res.err
			log.Printf("knotanim: animation load failed: %v", res.err)
			return
		}
		p.install(res.normal, res.rot360)
	default:
	}
}

// install binds the loaded sets, sizing the node to the normal set and
// showing its last frame (the finished knot) in the Idle state.
func (p *Player) install(normal, rot360 *AnimationSet) {
	p.normal = normal
	p.rot360 = rot360
	p.mode = ModeNormal

	w, h := normal.FrameSize()
	p.transforms.Rebind(p.node, FitScale(p.cfg.ViewW, p.cfg.ViewH, w, h))
	p.ctrl = NewController(normal, ModeNormal, p.node, p.sched)
}

// Loaded reports whether an animation set is installed and ready.
func (p *Player) Loaded() bool {
	return p.ctrl != nil
}

// LoadErr returns the background load failure, if any. A failed load leaves
// the player unloaded; the UI keeps its placeholder.
func (p *Player) LoadErr() error {
	return p.loadErr
}

// Play starts or resumes playback. Before the load completes (or after a
// failed load) this is a no-op.
func (p *Player) Play() {
	if p.ctrl == nil {
		if globalDebug {
			log.Printf("knotanim: play before animation load, ignoring")
		}
		return
	}
	p.ctrl.Play()
}

// Pause suspends playback, keeping the current frame.
func (p *Player) Pause() {
	if p.ctrl != nil {
		p.ctrl.Pause()
	}
}

// Stop halts playback and resets the display to the last frame.
func (p *Player) Stop() {
	if p.ctrl != nil {
		p.ctrl.Stop()
	}
}

// ToggleMirror flips the displayed node horizontally (0.75 s transition).
func (p *Player) ToggleMirror() {
	p.transforms.ToggleMirror()
}

// Rotate turns the displayed node 90° counter-clockwise (1.0 s transition).
func (p *Player) Rotate() {
	p.transforms.Rotate()
}

// Toggle360Mode switches between the step-by-step animation and the
// turntable set, reporting whether the switch happened. The switch rebuilds
// the renderable node against the other set — different textures, different
// anchor geometry — so position, mirror sign, and rotation are snapshotted
// and reapplied; without that the transforms would silently reset, which is
// visibly wrong to a user mid-inspection. If playback was active it resumes
// afterwards at the new mode's rate, from the new set's last-frame baseline.
// A no-op returning false when the alternate set is empty or missing.
func (p *Player) Toggle360Mode() bool {
	if p.ctrl == nil {
		return false
	}

	targetMode := ModeRotation360
	targetSet := p.rot360
	if p.mode == ModeRotation360 {
		targetMode = ModeNormal
		targetSet = p.normal
	}
	if targetSet.Len() == 0 {
		if globalDebug {
			log.Printf("knotanim: no %s animation set, staying in %s mode", targetMode, p.mode)
		}
		return false
	}

	wasPlaying := p.ctrl.IsPlaying()
	if wasPlaying {
		p.ctrl.Pause()
	}

	// Snapshot what the rebuild would otherwise lose. Mirror and rotation
	// live in the transform manager and survive Rebind; position is the
	// node's own.
	x, y := p.node.X, p.node.Y

	p.ctrl.Teardown()
	node := NewRenderNode()
	node.SetPosition(x, y)

	w, h := targetSet.FrameSize()
	p.transforms.Rebind(node, FitScale(p.cfg.ViewW, p.cfg.ViewH, w, h))

	p.node = node
	p.mode = targetMode
	p.ctrl = NewController(targetSet, targetMode, node, p.sched)

	if wasPlaying {
		p.ctrl.Play()
	}
	return true
}

// IsPlaying reports whether frames are currently advancing.
func (p *Player) IsPlaying() bool {
	return p.ctrl != nil && p.ctrl.IsPlaying()
}

// IsMirrored reports the mirror toggle state.
func (p *Player) IsMirrored() bool {
	return p.transforms.IsMirrored()
}

// IsRotated reports whether the cumulative rotation differs from 0 mod 2π.
func (p *Player) IsRotated() bool {
	return p.transforms.IsRotated()
}

// Is360Mode reports whether the turntable set is active.
func (p *Player) Is360Mode() bool {
	return p.mode == ModeRotation360
}

// CurrentTexture returns the texture and anchor the render surface should
// display this tick. The texture is nil until a load completes.
func (p *Player) CurrentTexture() (*ebiten.Image, Vec2) {
	return p.node.Texture, p.node.Anchor
}

// Node returns the player's renderable node. The returned pointer is only
// valid until the next mode switch or LoadAnimation; read it fresh each tick.
func (p *Player) Node() *RenderNode {
	return p.node
}

// Teardown cancels playback and releases the animation sets. Called when
// the owning detail view is dismissed.
func (p *Player) Teardown() {
	if p.ctrl != nil {
		p.ctrl.Teardown()
		p.ctrl = nil
	}
	p.pending = nil
	p.normal = nil
	p.rot360 = nil
}
