// Package mapfile loads grid maps and route endpoints from HCL files.
//
// A file holds one or more map blocks:
//
//	map "warehouse" {
//	  blank = "."
//	  rows = [
//	    "..#..",
//	    "..#..",
//	    ".....",
//	  ]
//	  from = [0, 0]
//	  to   = [height - 1, width - 1]
//	}
//
// Each string in rows is one grid row; every character is a cell. blank
// is a single character (default "."). from and to are [row, col]
// expressions evaluated with the variables height and width bound to the
// grid's shape.
package mapfile

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/leewave/grid"
	"github.com/katalvlaran/leewave/wavefront"
)

// DefaultBlank is the blank marker used when a map block omits blank.
const DefaultBlank = '.'

var (
	// ErrNoMaps indicates the file contains no map block.
	ErrNoMaps = errors.New("mapfile: no map block found")
	// ErrMapNotFound indicates no map block carries the requested name.
	ErrMapNotFound = errors.New("mapfile: map not found")
	// ErrBadBlank indicates blank is not exactly one character.
	ErrBadBlank = errors.New("mapfile: blank must be exactly one character")
	// ErrBadCoord indicates from/to is not a [row, col] pair.
	ErrBadCoord = errors.New("mapfile: coordinate must be a [row, col] pair")
)

// Map is a decoded map block.
type Map struct {
	Name  string
	Blank rune
	Cells *grid.Dense[rune]
	From  wavefront.Coord
	To    wavefront.Coord
}

// hclFile represents the top-level structure of a map file for decoding.
type hclFile struct {
	Maps []*hclMap `hcl:"map,block"`
}

// hclMap mirrors one map block; endpoints stay expressions until the grid
// shape is known.
type hclMap struct {
	Name  string         `hcl:"name,label"`
	Blank string         `hcl:"blank,optional"`
	Rows  []string       `hcl:"rows"`
	From  hcl.Expression `hcl:"from"`
	To    hcl.Expression `hcl:"to"`
}

// Load parses the HCL file at path and decodes the map block called name,
// or the first block when name is empty.
func Load(path, name string) (*Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(file, path, name)
}

// Parse is Load for in-memory sources; filename is used in diagnostics.
func Parse(src []byte, filename, name string) (*Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(file, filename, name)
}

func decode(file *hcl.File, filename, name string) (*Map, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Maps) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoMaps)
	}

	block := parsed.Maps[0]
	if name != "" {
		block = nil
		for _, m := range parsed.Maps {
			if m.Name == name {
				block = m
				break
			}
		}
		if block == nil {
			return nil, fmt.Errorf("%s: %w: %q", filename, ErrMapNotFound, name)
		}
	}

	return block.toMap()
}

func (b *hclMap) toMap() (*Map, error) {
	blank := DefaultBlank
	if b.Blank != "" {
		if utf8.RuneCountInString(b.Blank) != 1 {
			return nil, fmt.Errorf("map %q: %w, got %q", b.Name, ErrBadBlank, b.Blank)
		}
		blank, _ = utf8.DecodeRuneInString(b.Blank)
	}

	rows := make([][]rune, len(b.Rows))
	for i, r := range b.Rows {
		rows[i] = []rune(r)
	}
	cells, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", b.Name, err)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"height": cty.NumberIntVal(int64(cells.Rows())),
			"width":  cty.NumberIntVal(int64(cells.Cols())),
		},
	}
	from, err := decodeCoord(b.From, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("map %q: from: %w", b.Name, err)
	}
	to, err := decodeCoord(b.To, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("map %q: to: %w", b.Name, err)
	}

	return &Map{Name: b.Name, Blank: blank, Cells: cells, From: from, To: to}, nil
}

// decodeCoord evaluates a [row, col] expression.
func decodeCoord(expr hcl.Expression, evalCtx *hcl.EvalContext) (wavefront.Coord, error) {
	var pair []int
	if diags := gohcl.DecodeExpression(expr, evalCtx, &pair); diags.HasErrors() {
		return wavefront.Coord{}, diags
	}
	if len(pair) != 2 {
		return wavefront.Coord{}, fmt.Errorf("%w, got %d values", ErrBadCoord, len(pair))
	}

	return wavefront.Coord{Row: pair[0], Col: pair[1]}, nil
}
