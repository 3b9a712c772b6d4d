package universe

import "sync"

//Engine computes the next generation of cur into next.
//cur is read only, next is fully overwritten.
type Engine func(cur *Grid, next *Grid)

const (
	DefWorkers          = 5 //default workers of the banded engine
	DefMinRowsPerWorker = 3 //minimum rows for one worker
)

//Engines lists the available transition engines by name
var Engines = map[string]Engine{
	"base":   Step,
	"banded": StepBanded,
}

//NextState applies the B3/S23 rule to a single cell
func NextState(c Cell, liveNeighbours int) Cell {
	switch alive := bool(c); {
	case !alive && liveNeighbours == 3:
		return Alive
	case alive && (liveNeighbours < 2 || liveNeighbours > 3):
		return Dead
	case alive:
		return Alive
	}
	return Dead
}

//Step calculates the next generation cell by cell in row order
func Step(cur *Grid, next *Grid) {
	next.Clear()
	stepRows(cur, next, 0, cur.Height-1)
}

//StepBanded splits the field into row bands, each band is calculated by its own goroutine.
//The bands write disjoint rows of next, the result is identical to Step.
func StepBanded(cur *Grid, next *Grid) {
	next.Clear()
	var wg sync.WaitGroup
	for _, b := range bands(cur.Height, DefWorkers) {
		wg.Add(1)
		go func(y1 int, y2 int) {
			defer wg.Done()
			stepRows(cur, next, y1, y2)
		}(b[0], b[1])
	}
	wg.Wait()
}

//stepRows calculates the rows y1..y2 inclusive
func stepRows(cur *Grid, next *Grid, y1 int, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := 0; x < cur.Width; x++ {
			next.Entities[y][x] = NextState(cur.Entities[y][x], cur.LiveNeighbours(y, x))
		}
	}
}

//bands splits height rows into at most workers [y1, y2] ranges
func bands(height int, workers int) [][2]int {
	linesPerWorker := height / workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*workers < height {
		linesPerWorker++
	}
	res := make([][2]int, 0, workers)
	for y1 := 0; y1 < height; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker - 1
		if y2 > height-1 {
			y2 = height - 1
		}
		res = append(res, [2]int{y1, y2})
	}
	return res
}
