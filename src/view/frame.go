package view

import (
	"bytes"
	"fmt"
	"strings"
	"termlife/src/universe"
)

const (
	vertBorder  = '|'
	horizBorder = '-'
	aliveFiller = "*"
	deadFiller  = " "
)

//headerLines are the controls help, the relative speed and the epoch
func headerLines(st universe.Status) []string {
	return []string{
		"Controls: '+' - increase speed, '-' - decrease speed",
		"' '(Spacebar) - start game, 'R' - random initial state",
		fmt.Sprintf("Current speed: %.1f", st.RelativeSpeed()),
		fmt.Sprintf("Epoch: %d", st.Epoch),
	}
}

//fieldLines draws the grid rows with the given fillers, no border
func fieldLines(g *universe.Grid, live string, dead string) []string {
	lines := make([]string, 0, g.Height)
	var b strings.Builder
	for _, row := range g.Entities {
		b.Reset()
		for _, c := range row {
			if c {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

//Frame renders the header and the bordered field as plain text
func Frame(g *universe.Grid, st universe.Status) string {
	var b bytes.Buffer
	for _, l := range headerLines(st) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	border := strings.Repeat(string(horizBorder), g.Width+2)
	b.WriteString(border)
	b.WriteByte('\n')
	for _, l := range fieldLines(g, aliveFiller, deadFiller) {
		b.WriteByte(vertBorder)
		b.WriteString(l)
		b.WriteByte(vertBorder)
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')
	return b.String()
}
