package anim

// State of a Loop.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Loop re-runs a callback on every frame until stopped.
type Loop struct {
	scheduler Scheduler
	state     State
	handle    Handle
	gen       uint64
}

func NewLoop(s Scheduler) *Loop {
	return &Loop{scheduler: s}
}

func (l *Loop) State() State { return l.state }

// Start schedules cb for the next frame and re-schedules it after each run.
// Starting a running loop stops it first, so there is never more than one
// recurrence in flight.
func (l *Loop) Start(cb func()) {
	if l.state == Running {
		l.Stop()
	}
	l.state = Running
	l.gen++
	gen := l.gen

	var frame func()
	frame = func() {
		if l.state != Running || l.gen != gen {
			return
		}
		l.handle = 0
		cb()
		// cb may have stopped or restarted the loop.
		if l.state == Running && l.gen == gen {
			l.handle = l.scheduler.Schedule(frame)
		}
	}
	l.handle = l.scheduler.Schedule(frame)
}

// Stop cancels the pending frame. Stopping a stopped loop does nothing.
func (l *Loop) Stop() {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	if l.handle != 0 {
		l.scheduler.Cancel(l.handle)
		l.handle = 0
	}
}
