package knotanim

// Task is the handle to a scheduled repeating callback.
//
// Pause suspends the task without discarding it: the accumulated fraction of
// the current interval is preserved, so Resume continues in place rather than
// restarting the interval. Cancel discards the task permanently.
type Task interface {
	Pause()
	Resume()
	Cancel()
	// Active reports whether the task is currently running (not paused, not
	// cancelled).
	Active() bool
}

// Scheduler creates repeating timed callbacks. The playback controller takes
// a Scheduler rather than reading a wall clock so tests can drive frame
// advancement deterministically.
type Scheduler interface {
	// ScheduleRepeating invokes fn every interval seconds until the returned
	// Task is cancelled. The new task starts active.
	ScheduleRepeating(interval float64, fn func()) Task
}

// LoopScheduler is the production Scheduler. It is advanced from the render
// surface's main loop via Update(dt) and fires callbacks inline, so there is
// exactly one scheduling thread and no locking. In tests Update doubles as a
// virtual clock.
type LoopScheduler struct {
	tasks []*loopTask
}

// NewLoopScheduler creates an empty main-loop scheduler.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

type loopTask struct {
	interval  float64
	elapsed   float64
	fn        func()
	paused    bool
	cancelled bool
}

func (t *loopTask) Pause() {
	t.paused = true
}

func (t *loopTask) Resume() {
	t.paused = false
}

func (t *loopTask) Cancel() {
	t.cancelled = true
	t.fn = nil
}

func (t *loopTask) Active() bool {
	return !t.paused && !t.cancelled
}

// ScheduleRepeating implements Scheduler.
func (s *LoopScheduler) ScheduleRepeating(interval float64, fn func()) Task {
	t := &loopTask{interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Update advances all active tasks by dt seconds, firing each task once per
// elapsed interval (a large dt catches up with multiple firings). Cancelled
// tasks are compacted out.
func (s *LoopScheduler) Update(dt float64) {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.cancelled {
			continue
		}
		if !t.paused && t.interval > 0 {
			t.elapsed += dt
			for t.elapsed >= t.interval && !t.cancelled && !t.paused {
				t.elapsed -= t.interval
				t.fn()
			}
		}
		if !t.cancelled {
			live = append(live, t)
		}
	}
	// Nil out the tail so dropped tasks are not retained by the backing array.
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// NumTasks returns the number of scheduled (non-cancelled) tasks.
func (s *LoopScheduler) NumTasks() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
