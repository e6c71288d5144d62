// Package anim drives the per-frame update of the curve table.
package anim

// Handle identifies a scheduled frame request. The zero Handle is never issued.
type Handle uint64

// Scheduler is the host's per-frame scheduling primitive. A scheduled
// callback fires at most once, on a later display refresh, unless cancelled.
type Scheduler interface {
	Schedule(cb func()) Handle
	Cancel(h Handle)
}

type request struct {
	handle Handle
	cb     func()
}

// TickScheduler is a Scheduler fired by an external refresh signal: ebiten's
// Draw on desktop, a ticker in the terminal. Callbacks requested during a
// Tick run on the next Tick, never the current one.
type TickScheduler struct {
	next    Handle
	pending []request
	running []request
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) Schedule(cb func()) Handle {
	s.next++
	s.pending = append(s.pending, request{handle: s.next, cb: cb})
	return s.next
}

// Cancel removes a pending request. Unknown or already fired handles are ignored.
func (s *TickScheduler) Cancel(h Handle) {
	for i, r := range s.pending {
		if r.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	// A request cancelled by an earlier callback of the same tick must not run.
	for i := range s.running {
		if s.running[i].handle == h {
			s.running[i].cb = nil
			return
		}
	}
}

// Tick runs every request that was pending when it was called and returns how many ran.
func (s *TickScheduler) Tick() int {
	s.running, s.pending = s.pending, s.running[:0]
	ran := 0
	for i := range s.running {
		if cb := s.running[i].cb; cb != nil {
			s.running[i].cb = nil
			cb()
			ran++
		}
	}
	s.running = s.running[:0]
	return ran
}

// Pending is the number of outstanding requests.
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}
