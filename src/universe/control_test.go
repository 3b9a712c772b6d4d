package universe

import (
	"testing"
	"time"
)

func TestFasterNeverGoesBelowTheBound(t *testing.T) {
	d := InitialInterval
	for i := 0; i < 100; i++ {
		d = Faster(d)
		if d < FastestInterval {
			t.Fatalf("step %v: interval %v below %v", i, d, FastestInterval)
		}
	}
	if Faster(d) != d {
		t.Fatalf("interval %v still decreases", d)
	}
	if Faster(FastestInterval) != FastestInterval {
		t.Fatal("fastest interval halved")
	}
}

func TestSlowerNeverGoesAboveTheBound(t *testing.T) {
	for _, start := range []time.Duration{FastestInterval, time.Millisecond, 3 * time.Millisecond, InitialInterval} {
		d := start
		for i := 0; i < 100; i++ {
			d = Slower(d)
			if d > SlowestInterval {
				t.Fatalf("from %v: interval %v above %v", start, d, SlowestInterval)
			}
		}
	}
	if Slower(SlowestInterval) != SlowestInterval {
		t.Fatal("slowest interval doubled")
	}
}

func TestHandleByState(t *testing.T) {
	cases := []struct {
		name   string
		mode   RunningState
		ev     Event
		redraw bool
	}{
		{"nil event", RunningStateRun, nil, false},
		{"unknown key", RunningStateAwaitingStart, KeyEvent{Key: 'q'}, false},
		{"seed before start", RunningStateAwaitingStart, KeyEvent{Key: 'R'}, true},
		{"seed while running", RunningStateRun, KeyEvent{Key: 'r'}, false},
		{"click before start", RunningStateAwaitingStart, PointerEvent{X: 0, Y: 0}, true},
		{"click while running", RunningStateRun, PointerEvent{X: 0, Y: 0}, false},
		{"click below the field", RunningStateAwaitingStart, PointerEvent{X: 0, Y: Height}, false},
		{"faster before start", RunningStateAwaitingStart, KeyEvent{Key: '+'}, false},
		{"faster while running", RunningStateRun, KeyEvent{Key: '+'}, true},
		{"slower at the slowest", RunningStateRun, KeyEvent{Key: '-'}, false},
		{"start", RunningStateAwaitingStart, KeyEvent{Key: ' '}, true},
		{"pause", RunningStateRun, KeyEvent{Key: ' '}, true},
		{"space after the end", RunningStateEnded, KeyEvent{Key: ' '}, false},
		{"quit", RunningStateRun, QuitEvent{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSimulation(nil, &recorder{}, NewScriptedInput(), nil)
			s.state.RunningMode = c.mode
			if got := s.handle(c.ev); got != c.redraw {
				t.Fatalf("redraw %v, want %v", got, c.redraw)
			}
		})
	}
}

func TestStartAndPauseFlags(t *testing.T) {
	s := NewSimulation(nil, &recorder{}, NewScriptedInput(), nil)
	if s.state.RunningMode != RunningStateAwaitingStart || s.state.Epoch != 0 || s.state.Interval != InitialInterval {
		t.Fatalf("initial status %+v", s.state)
	}
	s.handle(KeyEvent{Key: KeyStart})
	if s.state.RunningMode != RunningStateRun || s.state.Blocking {
		t.Fatalf("after start %+v", s.state)
	}
	s.handle(KeyEvent{Key: KeyStart})
	if !s.state.Blocking {
		t.Fatal("pause did not switch to single step")
	}
	s.handle(KeyEvent{Key: KeyStart})
	if s.state.Blocking || s.state.RunningMode != RunningStateRun {
		t.Fatalf("after resume %+v", s.state)
	}
}

func TestToggleCellTwiceRestores(t *testing.T) {
	s := NewSimulation(nil, &recorder{}, NewScriptedInput(), nil)
	if !s.ToggleCell(Height-1, Width-1) || s.Grid().Get(Height-1, Width-1) != Alive {
		t.Fatal("toggle on")
	}
	if !s.ToggleCell(Height-1, Width-1) || s.Grid().LiveCells() != 0 {
		t.Fatal("toggle off")
	}
}
