package knotanim

import "log"

// playState is the playback controller's state machine.
type playState uint8

const (
	// stateIdle: never played. The node shows the sequence's last frame so a
	// not-yet-played animation presents its completed state (a finished
	// knot), not frame 0.
	stateIdle playState = iota
	statePlaying
	statePaused
	// stateStopped: explicitly reset back to the last-frame display.
	stateStopped
)

// Controller owns the current frame index and the play/pause/stop state
// machine for one AnimationSet, driving a repeating scheduled task that
// advances frames at the set's policy rate.
//
// All mutation happens on the render-loop thread that advances the
// Scheduler; there is no locking.
type Controller struct {
	set   *AnimationSet
	mode  Mode
	node  *RenderNode
	sched Scheduler
	task  Task
	state playState
	frame int
}

// NewController creates a controller for the given set and mode, bound to
// the node it applies frames to. The node is initialized to the sequence's
// last frame.
func NewController(set *AnimationSet, mode Mode, node *RenderNode, sched Scheduler) *Controller {
	c := &Controller{
		set:   set,
		mode:  mode,
		node:  node,
		sched: sched,
		frame: set.LastIndex(),
	}
	c.showFrame(c.frame)
	return c
}

// showFrame applies frame i's texture and anchor to the node in one call.
func (c *Controller) showFrame(i int) {
	if i < 0 || i >= c.set.Len() {
		return
	}
	c.frame = i
	c.node.SetFrame(c.set.Frames[i], c.set.Rects[i])
}

// advance is the repeating task body: step to the next frame, wrapping.
func (c *Controller) advance() {
	c.showFrame((c.frame + 1) % c.set.Len())
}

// Play starts or resumes playback. Playing an empty set is a logged no-op
// and does not change state. Calling Play while already playing is a no-op.
func (c *Controller) Play() {
	if c.set.Len() == 0 {
		if globalDebug {
			log.Printf("knotanim: play on empty %s animation set, ignoring", c.mode)
		}
		return
	}
	switch c.state {
	case statePlaying:
		return
	case statePaused:
		// Resume the suspended task in place: frame position and interval
		// fraction are preserved, no rebuild cost.
		c.task.Resume()
	default: // stateIdle, stateStopped
		if c.task == nil {
			interval := 1.0 / float64(Rate(c.set.Len(), c.mode))
			c.task = c.sched.ScheduleRepeating(interval, c.advance)
		} else {
			c.task.Resume()
		}
	}
	c.state = statePlaying
}

// Pause suspends playback without discarding the frame-advance task.
// A no-op unless currently playing.
func (c *Controller) Pause() {
	if c.state != statePlaying {
		return
	}
	c.task.Pause()
	c.state = statePaused
}

// Stop cancels the frame-advance task and resets the display to the
// sequence's last frame. Safe to call in any state.
func (c *Controller) Stop() {
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
	c.state = stateStopped
	c.showFrame(c.set.LastIndex())
}

// Teardown releases the controller's scheduled task. Called when the owning
// view goes away; the controller must not be used afterwards.
func (c *Controller) Teardown() {
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
}

// IsPlaying reports whether playback is currently advancing frames.
func (c *Controller) IsPlaying() bool {
	return c.state == statePlaying
}

// CurrentFrame returns the current frame index within the sequence.
func (c *Controller) CurrentFrame() int {
	return c.frame
}

// Mode returns the animation mode this controller plays.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Set returns the controller's animation set.
func (c *Controller) Set() *AnimationSet {
	return c.set
}
