package universe

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadPreset(t *testing.T) {
	g := NewGrid()
	if err := LoadPreset(g, strings.NewReader("2\n0 0\n1 1\n")); err != nil {
		t.Fatal(err)
	}
	if g.LiveCells() != 2 || g.Get(0, 0) != Alive || g.Get(1, 1) != Alive {
		t.Fatalf("live cells %v", g.LiveCells())
	}
}

func TestLoadPresetXIsColumn(t *testing.T) {
	g := NewGrid()
	if err := LoadPreset(g, strings.NewReader("1 79 24 trailing garbage")); err != nil {
		t.Fatal(err)
	}
	if g.Entities[24][79] != Alive || g.LiveCells() != 1 {
		t.Fatal("x 79 y 24 not at row 24 column 79")
	}
}

func TestLoadPresetErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrMalformedPreset},
		{"abc", ErrMalformedPreset},
		{"-1", ErrMalformedPreset},
		{"2\n0 0\n", ErrMalformedPreset},
		{"1\n0 x\n", ErrMalformedPreset},
		{"4611686018427387904\n0 0\n", ErrMalformedPreset},
		{"1\n80 0\n", ErrInvalidSeedCoordinate},
		{"1\n0 25\n", ErrInvalidSeedCoordinate},
		{"2\n1 1\n-1 0\n", ErrInvalidSeedCoordinate},
	}
	for _, c := range cases {
		g := NewGrid()
		err := LoadPreset(g, strings.NewReader(c.in))
		if !errors.Is(err, c.want) {
			t.Errorf("%q: got %v, want %v", c.in, err, c.want)
		}
		if g.LiveCells() != 0 {
			t.Errorf("%q: grid changed on error", c.in)
		}
	}
}

func TestLoadPresetEmptyCount(t *testing.T) {
	g := NewGrid()
	if err := LoadPreset(g, strings.NewReader("0")); err != nil {
		t.Fatal(err)
	}
	if g.LiveCells() != 0 {
		t.Fatal("cells settled from an empty preset")
	}
}

func TestTemplates(t *testing.T) {
	for _, name := range TemplateNames() {
		g := NewGrid()
		if err := SettleTemplate(g, name); err != nil {
			t.Fatalf("%v: %v", name, err)
		}
		if g.LiveCells() != len(Templates[name].Coordinates) {
			t.Fatalf("%v: %v live cells", name, g.LiveCells())
		}
	}
	if err := SettleTemplate(NewGrid(), "nope"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("got %v", err)
	}
}

func TestSettleRejectsBadPoints(t *testing.T) {
	if err := Settle(NewGrid(), [][]int{{1}}); !errors.Is(err, ErrMalformedPreset) {
		t.Fatalf("got %v", err)
	}
}
