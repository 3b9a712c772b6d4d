package view

import (
	"fmt"
	"io"
	"termlife/src/universe"
	"time"
)

//ConsoleOut is the headless Display, it prints the frames as plain text.
//With every set to N only each N-th epoch is printed, the seed and the final frame are always printed.
type ConsoleOut struct {
	w         io.Writer
	every     int
	startTime time.Time
}

func NewConsoleOut(w io.Writer, every int) *ConsoleOut {
	if every < 1 {
		every = 1
	}
	return &ConsoleOut{w: w, every: every, startTime: time.Now()}
}

func (c *ConsoleOut) Render(g *universe.Grid, st universe.Status) {
	if st.RunningMode == universe.RunningStateRun && st.Epoch%c.every != 0 {
		return
	}
	_, _ = fmt.Fprint(c.w, Frame(g, st))
	if st.RunningMode == universe.RunningStateEnded {
		_, _ = fmt.Fprintf(c.w, "Finished (%v), epoch: %v, live cells: %v, total time: %v\n",
			st.EndReason, st.Epoch, st.LiveCells, time.Since(c.startTime).Round(time.Millisecond))
	}
}

func (c *ConsoleOut) Notify(msg string) {
	_, _ = fmt.Fprintln(c.w, msg)
}
