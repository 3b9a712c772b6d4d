package universe

import (
	"time"
	"unicode"
)

//handle translates one input event into a state mutation.
//It reports whether the field needs a redraw, nil events and unknown keys are no-ops.
func (s *Simulation) handle(ev Event) bool {
	switch e := ev.(type) {
	case QuitEvent:
		s.logger.Printf("quit requested at epoch %v", s.state.Epoch)
		s.end(EndQuit)
		return true
	case PointerEvent:
		return s.ToggleCell(e.Y, e.X)
	case KeyEvent:
		return s.handleKey(e.Key)
	}
	return false
}

func (s *Simulation) handleKey(k rune) bool {
	switch unicode.ToLower(k) {
	case KeySeed:
		return s.SettleWithRandomData()
	case KeyStart:
		return s.toggleRunning()
	case KeyFaster:
		return s.setInterval(Faster(s.state.Interval))
	case KeySlower:
		return s.setInterval(Slower(s.state.Interval))
	}
	return false
}

//ToggleCell inverses the cell at row, col.
//Editing is accepted only before the start and only inside the field.
func (s *Simulation) ToggleCell(row int, col int) bool {
	if s.state.RunningMode != RunningStateAwaitingStart {
		return false
	}
	if row < 0 || row >= s.current.Height || col < 0 || col >= s.current.Width {
		return false
	}
	s.current.Toggle(row, col)
	return true
}

//SettleWithRandomData re-randomizes every cell, accepted only before the start
func (s *Simulation) SettleWithRandomData() bool {
	if s.state.RunningMode != RunningStateAwaitingStart {
		return false
	}
	s.current.Randomize(s.rng)
	s.logger.Printf("settled with random data, live cells: %v", s.current.LiveCells())
	return true
}

//toggleRunning starts the simulation or switches between free run and single step
func (s *Simulation) toggleRunning() bool {
	switch s.state.RunningMode {
	case RunningStateAwaitingStart:
		s.state.RunningMode = RunningStateRun
		s.state.Blocking = false
	case RunningStateRun:
		s.state.Blocking = !s.state.Blocking
		if s.state.Blocking {
			s.logger.Printf("paused at epoch %v", s.state.Epoch)
		} else {
			s.logger.Printf("resumed at epoch %v", s.state.Epoch)
		}
	default:
		return false
	}
	return true
}

//setInterval changes the pacing while running, speed keys are ignored before the start
func (s *Simulation) setInterval(d time.Duration) bool {
	if s.state.RunningMode != RunningStateRun || d == s.state.Interval {
		return false
	}
	s.state.Interval = d
	s.logger.Printf("interval changed to %v", d)
	return true
}

//Faster halves the interval unless that would go below FastestInterval
func Faster(d time.Duration) time.Duration {
	if d/2 < FastestInterval {
		return d
	}
	return d / 2
}

//Slower doubles the interval unless that would go above SlowestInterval
func Slower(d time.Duration) time.Duration {
	if d*2 > SlowestInterval {
		return d
	}
	return d * 2
}
