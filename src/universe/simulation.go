package universe

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"
)

//pacing bounds, a smaller interval means a faster simulation
const (
	InitialInterval = 500 * time.Millisecond
	FastestInterval = 500 * time.Microsecond
	SlowestInterval = 500 * time.Millisecond
	DefLinger       = 5 * time.Second
	DefEngine       = "base"
)

const (
	MsgStart = "Press Spacebar to start..."
	MsgEnd   = "The Game is ended. Closing application..."
)

//Options represents the simulation's configurable options
type Options struct {
	Interval time.Duration //initial pacing interval
	MaxSteps int           //0 means no limit
	Linger   time.Duration //how long the end message stays before returning
	Engine   string
	Seed     int64 //random seed, 0 is time based
}

var DefaultOptions = Options{
	Interval: InitialInterval,
	Linger:   DefLinger,
	Engine:   DefEngine,
}

//Simulation owns the current and the scratch grids and drives the generations.
//It is single threaded: Run, the input handling and all grid mutations happen on the caller's goroutine.
type Simulation struct {
	options Options
	current *Grid
	next    *Grid
	state   Status
	step    Engine
	display Display
	input   Input
	rng     *rand.Rand
	logger  *log.Logger
	sleep   func(time.Duration)
}

//NewSimulation creates the simulation in the AwaitingStart state with an empty grid
func NewSimulation(o *Options, d Display, in Input, logger *log.Logger) *Simulation {
	if o == nil {
		o = &DefaultOptions
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	step, ok := Engines[o.Engine]
	if !ok {
		step = Step
	}
	s := Simulation{
		options: *o,
		current: NewGrid(),
		next:    NewGrid(),
		step:    step,
		display: d,
		input:   in,
		rng:     NewRNG(o.Seed),
		logger:  logger,
		sleep:   time.Sleep,
	}
	s.state.Interval = ClampInterval(o.Interval)
	s.state.RunningMode = RunningStateAwaitingStart
	return &s
}

//Grid exposes the current grid for seeding before Run is called
func (s *Simulation) Grid() *Grid {
	return s.current
}

//Status returns the current simulation status
func (s *Simulation) Status() Status {
	st := s.state
	st.LiveCells = s.current.LiveCells()
	return st
}

//Run shows the seed, waits for the start and advances generations until the Ended state.
//It returns an error only when the input device is lost.
func (s *Simulation) Run() error {
	if err := s.awaitStart(); err != nil {
		return err
	}
	if s.state.RunningMode == RunningStateRun {
		if err := s.run(); err != nil {
			return err
		}
	}
	s.finish()
	return nil
}

//awaitStart blocks on input until the start key, seeding commands re-render the field
func (s *Simulation) awaitStart() error {
	s.refresh()
	s.display.Notify(MsgStart)
	for s.state.RunningMode == RunningStateAwaitingStart {
		ev, err := s.input.PollEvent(true)
		if err != nil {
			return fmt.Errorf("awaiting start: %w: %w", ErrInputDeviceUnavailable, err)
		}
		if s.handle(ev) && s.state.RunningMode == RunningStateAwaitingStart {
			s.refresh()
			s.display.Notify(MsgStart)
		}
	}
	return nil
}

//run is the generations cycle.
//The successor is computed before it is committed, the cycle stops as soon as current equals its successor,
//so the epoch equals the number of rendered generations. Oscillators are not detected.
func (s *Simulation) run() error {
	s.logger.Printf("simulation started, live cells: %v", s.current.LiveCells())
	s.step(s.current, s.next)
	for !s.current.Equals(s.next) {
		if s.options.MaxSteps > 0 && s.state.Epoch >= s.options.MaxSteps {
			s.end(EndStepLimit)
			return nil
		}
		s.current, s.next = s.next, s.current
		s.state.Epoch++
		s.refresh()

		ev, err := s.input.PollEvent(s.state.Blocking)
		if err != nil {
			return fmt.Errorf("epoch %v: %w: %w", s.state.Epoch, ErrInputDeviceUnavailable, err)
		}
		if s.handle(ev) {
			if s.state.RunningMode == RunningStateEnded {
				return nil
			}
			s.refresh()
		}

		s.step(s.current, s.next)
		s.sleep(s.state.Interval)
	}
	s.end(EndConverged)
	return nil
}

//finish shows the end message and keeps it on the screen for the linger time
func (s *Simulation) finish() {
	s.refresh()
	s.display.Notify(MsgEnd)
	s.logger.Printf("simulation ended (%v) at epoch %v", s.state.EndReason, s.state.Epoch)
	if s.state.EndReason != EndQuit && s.options.Linger > 0 {
		s.sleep(s.options.Linger)
	}
}

func (s *Simulation) end(r EndReason) {
	s.state.RunningMode = RunningStateEnded
	s.state.EndReason = r
}

func (s *Simulation) refresh() {
	s.display.Render(s.current, s.Status())
}

//ClampInterval keeps d inside [FastestInterval, SlowestInterval]
func ClampInterval(d time.Duration) time.Duration {
	if d < FastestInterval {
		return FastestInterval
	}
	if d > SlowestInterval {
		return SlowestInterval
	}
	return d
}
