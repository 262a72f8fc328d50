// Package render draws a grid with a route marked on it for terminal output.
package render

import (
	"bufio"
	"io"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/leewave/grid"
	"github.com/katalvlaran/leewave/wavefront"
)

// Route markers.
const (
	MarkOrigin      = 'S'
	MarkDestination = 'D'
	MarkPath        = '*'
)

// Colours per marker, by ansi colour name.
const (
	colorOrigin      = "cyan"
	colorDestination = "red"
	colorPath        = "green"
)

type mark struct {
	r     rune
	color string
}

// Route writes cells row by row, replacing path cells with markers.
// path is destination first, as returned by wavefront.FindPath; a nil
// path renders the bare grid. With color set, markers are wrapped in ANSI
// colour sequences.
func Route(w io.Writer, cells grid.View[rune], path []wavefront.Coord, color bool) error {
	marks := make(map[wavefront.Coord]mark, len(path))
	for i, c := range path {
		switch {
		case i == len(path)-1:
			marks[c] = mark{MarkOrigin, colorOrigin}
		case i == 0:
			marks[c] = mark{MarkDestination, colorDestination}
		default:
			marks[c] = mark{MarkPath, colorPath}
		}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < cells.Height(); r++ {
		for c := 0; c < cells.Width(); c++ {
			m, ok := marks[wavefront.Coord{Row: r, Col: c}]
			if !ok {
				bw.WriteRune(cells.ValueAt(r, c))
				continue
			}
			if color {
				bw.WriteString(ansi.FGColorName(m.color))
			}
			bw.WriteRune(m.r)
			if color {
				bw.WriteString(ansi.Clear)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
