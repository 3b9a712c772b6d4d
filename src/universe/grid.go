package universe

import "math/rand/v2"

//the field dimensions are fixed, the rule set works on a 80x25 torus
const (
	Width  = 80
	Height = 25
)

//Cell is the state of one cell: true is alive, false is dead
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

//Grid is the fixed size field where the cells are living.
//All coordinates are wrapped around the edges (toroidal topology),
//so every cell has exactly 8 neighbours and any integer index is valid.
type Grid struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//NewGrid allocates an empty Width x Height grid
func NewGrid() *Grid {
	return newGrid(Width, Height)
}

//newGrid allocates the rows over one flat buffer
func newGrid(width int, height int) *Grid {
	g := Grid{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range g.Entities {
		start := width * i
		g.Entities[i] = b[start : start+width : start+width]
	}
	return &g
}

//wrap maps any integer index into [0, n)
func wrap(i int, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

//Get returns the cell state at the wrapped position
func (g *Grid) Get(row int, col int) Cell {
	return g.Entities[wrap(row, g.Height)][wrap(col, g.Width)]
}

//Set writes the cell state at the wrapped position
func (g *Grid) Set(row int, col int, c Cell) {
	g.Entities[wrap(row, g.Height)][wrap(col, g.Width)] = c
}

//Toggle inverses the cell state at the wrapped position
func (g *Grid) Toggle(row int, col int) {
	r, c := wrap(row, g.Height), wrap(col, g.Width)
	g.Entities[r][c] = !g.Entities[r][c]
}

//Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.Entities {
		for x := range g.Entities[y] {
			g.Entities[y][x] = Dead
		}
	}
}

//CopyFrom deep copies another grid of the same dimensions
func (g *Grid) CopyFrom(other *Grid) {
	for y := range g.Entities {
		copy(g.Entities[y], other.Entities[y])
	}
}

//Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.Width, g.Height)
	c.CopyFrom(g)
	return c
}

//Equals reports whether all cells match positionally
func (g *Grid) Equals(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Entities {
		for x := range g.Entities[y] {
			if g.Entities[y][x] != other.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

//LiveNeighbours counts the live cells among the 8 neighbours of (row, col).
//Each row and column offset is wrapped on its own.
func (g *Grid) LiveNeighbours(row int, col int) int {
	up, down := wrap(row-1, g.Height), wrap(row+1, g.Height)
	left, right := wrap(col-1, g.Width), wrap(col+1, g.Width)
	row, col = wrap(row, g.Height), wrap(col, g.Width)

	n := 0
	for _, p := range [8][2]int{
		{up, left}, {up, col}, {up, right},
		{row, left}, {row, right},
		{down, left}, {down, col}, {down, right},
	} {
		if g.Entities[p[0]][p[1]] {
			n++
		}
	}
	return n
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	g.walk(func(x int, y int, c Cell) {
		if c {
			n++
		}
	})
	return n
}

//Randomize gives every cell an independent 50/50 chance to be alive
func (g *Grid) Randomize(r *rand.Rand) {
	g.walk(func(x int, y int, _ Cell) {
		g.Entities[y][x] = Cell(r.IntN(2) == 1)
	})
}

//walk walks the entire grid and calls cb for each cell
func (g *Grid) walk(cb func(x int, y int, c Cell)) {
	for y := range g.Entities {
		for x := range g.Entities[y] {
			cb(x, y, g.Entities[y][x])
		}
	}
}
