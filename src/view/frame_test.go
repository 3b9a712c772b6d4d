package view

import (
	"bytes"
	"strings"
	"termlife/src/universe"
	"testing"
)

func TestFrame(t *testing.T) {
	g := universe.NewGrid()
	g.Set(0, 0, universe.Alive)
	g.Set(universe.Height-1, universe.Width-1, universe.Alive)
	st := universe.Status{Epoch: 7, Interval: universe.InitialInterval / 2}

	lines := strings.Split(strings.TrimSuffix(Frame(g, st), "\n"), "\n")
	if len(lines) != 4+universe.Height+2 {
		t.Fatalf("%v lines", len(lines))
	}
	if lines[2] != "Current speed: 2.0" || lines[3] != "Epoch: 7" {
		t.Fatalf("header %q", lines[:4])
	}
	border := strings.Repeat("-", universe.Width+2)
	if lines[4] != border || lines[len(lines)-1] != border {
		t.Fatal("horizontal border")
	}
	first := lines[5]
	if len(first) != universe.Width+2 || first[0] != '|' || first[1] != '*' || first[2] != ' ' || first[len(first)-1] != '|' {
		t.Fatalf("first row %q", first)
	}
	last := lines[len(lines)-2]
	if last[len(last)-2] != '*' {
		t.Fatalf("last row %q", last)
	}
	if strings.Count(Frame(g, st), "*") != 2 {
		t.Fatal("live cells count")
	}
}

func TestConsoleOut(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOut(&b, 10)
	g := universe.NewGrid()

	c.Render(g, universe.Status{RunningMode: universe.RunningStateRun, Epoch: 3, Interval: universe.InitialInterval})
	if b.Len() != 0 {
		t.Fatal("epoch 3 printed with every=10")
	}
	c.Render(g, universe.Status{RunningMode: universe.RunningStateRun, Epoch: 20, Interval: universe.InitialInterval})
	if !strings.Contains(b.String(), "Epoch: 20") {
		t.Fatal("epoch 20 not printed")
	}
	c.Render(g, universe.Status{RunningMode: universe.RunningStateEnded, Epoch: 21, EndReason: universe.EndConverged})
	c.Notify(universe.MsgEnd)
	out := b.String()
	if !strings.Contains(out, "Finished (converged), epoch: 21") || !strings.HasSuffix(out, universe.MsgEnd+"\n") {
		t.Fatalf("output %q", out)
	}
}

func TestHeadlessRun(t *testing.T) {
	var b bytes.Buffer
	o := universe.DefaultOptions
	o.Linger = 0
	o.Interval = universe.FastestInterval
	in := universe.NewScriptedInput(universe.KeyEvent{Key: universe.KeyStart})
	s := universe.NewSimulation(&o, NewConsoleOut(&b, 1), in, nil)
	if err := universe.Settle(s.Grid(), [][]int{{10, 10}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, universe.MsgStart) || !strings.Contains(out, "Epoch: 1") || strings.Contains(out, "Epoch: 2") {
		t.Fatalf("output %q", out)
	}
}
