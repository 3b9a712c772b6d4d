package universe

import (
	"errors"
	"time"
)

//Display is the object which can show the simulation data
type Display interface {
	//Render draws the field with the header (controls, relative speed, epoch)
	Render(g *Grid, st Status)
	//Notify shows a one line message under the field
	Notify(msg string)
}

//Input delivers at most one external event per call.
//With block set it waits until an event arrives, otherwise it returns nil when nothing is pending.
type Input interface {
	PollEvent(block bool) (Event, error)
}

//Event is one external input event: KeyEvent, PointerEvent or QuitEvent
type Event interface {
	isEvent()
}

//KeyEvent is a key press
type KeyEvent struct {
	Key rune
}

//PointerEvent is a click at field coordinates
type PointerEvent struct {
	X int //column
	Y int //row
}

//QuitEvent asks to end the simulation right away
type QuitEvent struct{}

func (KeyEvent) isEvent()     {}
func (PointerEvent) isEvent() {}
func (QuitEvent) isEvent()    {}

//the control keys
const (
	KeyStart  = ' '
	KeyFaster = '+'
	KeySlower = '-'
	KeySeed   = 'r'
)

var (
	ErrInputClosed            = errors.New("input closed")
	ErrInputDeviceUnavailable = errors.New("input device unavailable")
)

//RunningState is the simulation state at the concrete moment
type RunningState int

const (
	RunningStateAwaitingStart RunningState = iota
	RunningStateRun
	RunningStateEnded
)

func (s RunningState) String() string {
	switch s {
	case RunningStateAwaitingStart:
		return "waiting"
	case RunningStateRun:
		return "running"
	case RunningStateEnded:
		return "finished"
	}
	return "unknown"
}

//EndReason tells why the simulation reached the Ended state
type EndReason int

const (
	EndNone EndReason = iota
	EndConverged
	EndStepLimit
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndConverged:
		return "converged"
	case EndStepLimit:
		return "step limit reached"
	case EndQuit:
		return "quit"
	}
	return ""
}

//Status represents the status of the simulation at concrete moment
type Status struct {
	Epoch       int
	Interval    time.Duration
	RunningMode RunningState
	Blocking    bool //single step: every generation waits for an input event
	LiveCells   int
	EndReason   EndReason
}

//RelativeSpeed is InitialInterval / Interval
func (s Status) RelativeSpeed() float64 {
	if s.Interval <= 0 {
		return 0
	}
	return float64(InitialInterval) / float64(s.Interval)
}
