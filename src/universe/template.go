package universe

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

var (
	ErrInvalidSeedCoordinate = errors.New("seed coordinate outside the field")
	ErrMalformedPreset       = errors.New("malformed preset")
	ErrUnknownTemplate       = errors.New("unknown template")
)

//Template represent the seeding template which can used to settle the grid with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//Templates are the built-in seeding templates by name
var Templates = map[string]Template{
	"sample": {
		"sample",
		"the test sample with 3 stable patterns",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
	"glider": {
		"glider",
		"the smallest spaceship, travels around the torus forever",
		[][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"blinker": {
		"blinker",
		"period 2 oscillator, never converges",
		[][]int{{39, 12}, {40, 12}, {41, 12}},
	},
	"block": {
		"block",
		"2x2 still life",
		[][]int{{39, 12}, {40, 12}, {39, 13}, {40, 13}},
	},
}

//TemplateNames returns the sorted names of the built-in templates
func TemplateNames() []string {
	names := make([]string, 0, len(Templates))
	for k := range Templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//SettleTemplate populates the grid with the named built-in template
func SettleTemplate(g *Grid, name string) error {
	tmpl, ok := Templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return Settle(g, tmpl.Coordinates)
}

//Settle marks the [x,y] coordinates alive.
//Coordinates are checked before the grid is touched, a bad one leaves the grid unchanged.
func Settle(g *Grid, vc [][]int) error {
	for i, v := range vc {
		if len(v) != 2 {
			return fmt.Errorf("point %v: %w: want x y pair, got %v", i, ErrMalformedPreset, v)
		}
		if v[0] < 0 || v[0] >= g.Width || v[1] < 0 || v[1] >= g.Height {
			return fmt.Errorf("point %v (%v, %v): %w", i, v[0], v[1], ErrInvalidSeedCoordinate)
		}
	}
	for _, v := range vc {
		g.Entities[v[1]][v[0]] = Alive
	}
	return nil
}

//ParsePreset reads the preset stream: the points count N followed by N "x y" pairs.
//x is the column and y is the row, both 0-indexed. Anything after the last pair is ignored.
func ParsePreset(r io.Reader) ([][]int, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("%w: points count: %v", ErrMalformedPreset, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative points count %v", ErrMalformedPreset, n)
	}
	//the count is not trusted for the allocation, a short stream fails at EOF
	vc := make([][]int, 0, min(n, Width*Height))
	for i := 0; i < n; i++ {
		var x, y int
		if _, err := fmt.Fscan(r, &x, &y); err != nil {
			return nil, fmt.Errorf("%w: point %v: %v", ErrMalformedPreset, i, err)
		}
		vc = append(vc, []int{x, y})
	}
	return vc, nil
}

//LoadPreset parses the preset stream and settles the grid with it
func LoadPreset(g *Grid, r io.Reader) error {
	vc, err := ParsePreset(r)
	if err != nil {
		return err
	}
	return Settle(g, vc)
}
