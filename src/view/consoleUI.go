package view

import (
	"bytes"
	"fmt"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"io"
	"log"
	"strings"
	"sync"
	"termlife/src/universe"
)

const (
	headerHeight = 4
	eventsBuffer = 256
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal Display and Input.
//The gocui main loop owns the terminal, the simulation runs on its own goroutine:
//key handlers only queue events and Render only schedules a redraw of a grid copy.
type ConsoleUI struct {
	g      *gocui.Gui
	k      []keyBindings
	events chan universe.Event
	logger *log.Logger

	mu     sync.Mutex
	grid   *universe.Grid
	status universe.Status
	msg    string

	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateAwaitingStart: aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateRun:           aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateEnded:         aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//viewFinder is the part of gocui.Gui the renderers need
type viewFinder interface {
	View(name string) (*gocui.View, error)
}

//NewConsoleUI initializes the terminal, the error wraps universe.ErrInputDeviceUnavailable
func NewConsoleUI(logger *log.Logger) (*ConsoleUI, error) {
	var err error
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	t := ConsoleUI{
		events:     make(chan universe.Event, eventsBuffer),
		logger:     logger,
		grid:       universe.NewGrid(),
		liveFiller: aurora.Green(aliveFiller).Bold().String(),
		deadFiller: deadFiller,
	}
	t.status.Interval = universe.InitialInterval

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", universe.ErrInputDeviceUnavailable, err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{gocui.KeySpace,
			"SPACE",
			"Start / pause",
			t.cmdKey(universe.KeyStart),
			""},
		{universe.KeyFaster,
			"+",
			"Faster",
			t.cmdKey(universe.KeyFaster),
			""},
		{universe.KeySlower,
			"-",
			"Slower",
			t.cmdKey(universe.KeySlower),
			""},
		{'r',
			"R",
			"Settle with random",
			t.cmdKey(universe.KeySeed),
			""},
		{'R',
			"",
			"",
			t.cmdKey(universe.KeySeed),
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, fmt.Errorf("%w: %v", universe.ErrInputDeviceUnavailable, err)
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return err
		}
	}
	return nil
}

//Start runs the terminal main loop until Stop is called, then restores the terminal.
//The events channel is closed afterwards so a blocked PollEvent returns ErrInputClosed.
func (t *ConsoleUI) Start() error {
	defer close(t.events)
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return fmt.Errorf("%w: %v", universe.ErrInputDeviceUnavailable, err)
	}
	return nil
}

//Stop asks the main loop to quit, safe to call from any goroutine
func (t *ConsoleUI) Stop() {
	t.g.Update(func(g *gocui.Gui) error {
		return gocui.ErrQuit
	})
}

func (t *ConsoleUI) PollEvent(block bool) (universe.Event, error) {
	if block {
		ev, ok := <-t.events
		if !ok {
			return nil, universe.ErrInputClosed
		}
		return ev, nil
	}
	select {
	case ev, ok := <-t.events:
		if !ok {
			return nil, universe.ErrInputClosed
		}
		return ev, nil
	default:
		return nil, nil
	}
}

func (t *ConsoleUI) Render(g *universe.Grid, st universe.Status) {
	t.mu.Lock()
	t.grid.CopyFrom(g)
	t.status = st
	t.msg = ""
	t.mu.Unlock()
	t.refresh()
}

func (t *ConsoleUI) Notify(msg string) {
	t.mu.Lock()
	t.msg = msg
	t.mu.Unlock()
	t.refresh()
}

//push queues the event, it is dropped and logged when the queue is full
func (t *ConsoleUI) push(ev universe.Event) {
	select {
	case t.events <- ev:
	default:
		t.logger.Printf("input queue full, dropped %#v", ev)
	}
}

//refresh must be called via Update when it is called from another goroutine
func (t *ConsoleUI) refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		t.renderAll(g)
		return nil
	})
}

//renderAll does nothing while the field is not laid out (terminal too small)
func (t *ConsoleUI) renderAll(g viewFinder) {
	if _, err := g.View("battlefield"); err != nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderHeader(g)
	t.renderField(g)
	t.renderStatus(g)
	t.renderMessage(g)
}

func (t *ConsoleUI) renderHeader(g viewFinder) {
	v, e := g.View("header")
	if e != nil {
		return
	}
	v.Clear()
	for _, l := range headerLines(t.status) {
		_, _ = fmt.Fprintln(v, l)
	}
}

func (t *ConsoleUI) renderField(g viewFinder) {
	v, e := g.View("battlefield")
	if e != nil {
		return
	}
	//the entire field is redrawing at once
	v.Clear()
	_, _ = fmt.Fprint(v, strings.Join(fieldLines(t.grid, t.liveFiller, t.deadFiller), "\n"))
}

func (t *ConsoleUI) renderStatus(g viewFinder) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	s := t.status
	mode := runningStateDescr[s.RunningMode]
	if s.RunningMode == universe.RunningStateRun && s.Blocking {
		mode = aurora.Colorize("paused", aurora.YellowFg).String()
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Epoch", "%v", s.Epoch))
	_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.grid.LiveCells()))
	_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", s.Interval))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	if s.EndReason != universe.EndNone {
		_, _ = fmt.Fprintln(v, t.renderProp("Result", "%v", s.EndReason))
	}
}

func (t *ConsoleUI) renderMessage(g viewFinder) {
	v, e := g.View("message")
	if e != nil {
		return
	}
	v.Clear()
	if t.msg == "" {
		return
	}
	color := aurora.CyanFg
	if t.status.RunningMode == universe.RunningStateEnded {
		color = aurora.RedFg
	}
	_, _ = fmt.Fprintln(v, aurora.Colorize(t.msg, color).String())
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

//layout places the header over the field exactly like the plain text frame:
//the field border starts at row 4, so the cell (0, 0) is at the screen position (1, 5)
func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	fieldX1 := universe.Width + 1
	fieldY1 := headerHeight + universe.Height + 1

	if maxX <= fieldX1 || maxY <= fieldY1+3 {
		_ = g.DeleteView("battlefield")
		_ = g.DeleteView("status")
		_ = g.DeleteView("message")
		_ = g.DeleteView("help")
		v, err := g.SetView("header", -1, -1, maxX, maxY)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.Clear()
		_, _ = fmt.Fprintf(v, "Terminal too small: need %vx%v", fieldX1+1, fieldY1+4)
		return nil
	}

	if v, err := g.SetView("header", -1, -1, maxX, headerHeight); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
	}

	if v, err := g.SetView("battlefield", 0, headerHeight, fieldX1, fieldY1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.Title = "Battle Field"
	}

	if maxX > fieldX1+20 {
		if v, err := g.SetView("status", fieldX1+1, headerHeight, maxX-1, headerHeight+7); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Title = "Status"
			v.Frame = true
		}
	} else {
		_ = g.DeleteView("status")
	}

	if v, err := g.SetView("message", -1, fieldY1, maxX, fieldY1+2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
	}

	if v, err := g.SetView("help", -1, fieldY1+1, maxX, fieldY1+3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	t.renderAll(g)
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	t.push(universe.QuitEvent{})
	return nil
}

func (t *ConsoleUI) cmdKey(k rune) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		t.push(universe.KeyEvent{Key: k})
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.push(universe.PointerEvent{X: cx, Y: cy})
	return nil
}
