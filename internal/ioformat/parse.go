// Package ioformat is the puzzle's only I/O-facing package: a tabular
// piece-table parser, a dimension-string parser and a text grid renderer.
// None of it is load-bearing for solver correctness.
package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fkopp/polycube/internal/geom"
	"github.com/fkopp/polycube/internal/puzzle"
)

// ParseError reports a malformed row or field in a parsed piece table or
// dimension string. Row is 1-based and counts the header as row 0; Row is
// -1 for errors not tied to a specific row.
type ParseError struct {
	Row int
	Col string
	Msg string
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s", e.Col, e.Msg)
	}
	return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Col, e.Msg)
}

// ParsePieces reads a piece table: a header row followed by one row per
// piece, columns "name,glyph,colour,cells". cells is a dash-separated list
// of XYZ coordinate triples, each digit 0-9, e.g. "000-100-200-300" for a
// four-cell straight tetromino-in-3D. colour is validated as non-empty but
// is not stored in the returned definitions.
func ParsePieces(r io.Reader) ([]puzzle.Def, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &ParseError{Row: -1, Col: "file", Msg: err.Error()}
	}
	if len(records) < 2 {
		return nil, &ParseError{Row: -1, Col: "file", Msg: "expected a header row and at least one piece row"}
	}

	defs := make([]puzzle.Def, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 1
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, &ParseError{Row: row, Col: "name", Msg: "must not be empty"}
		}
		glyphStr := strings.TrimSpace(rec[1])
		if len(glyphStr) != 1 {
			return nil, &ParseError{Row: row, Col: "glyph", Msg: "must be exactly one character"}
		}
		colour := strings.TrimSpace(rec[2])
		if colour == "" {
			return nil, &ParseError{Row: row, Col: "colour", Msg: "must not be empty"}
		}
		cells, err := parseCells(rec[3])
		if err != nil {
			return nil, &ParseError{Row: row, Col: "cells", Msg: err.Error()}
		}
		defs = append(defs, puzzle.Def{Name: name, Glyph: glyphStr[0], Cells: cells})
	}
	return defs, nil
}

func parseCells(field string) ([]geom.Coord, error) {
	parts := strings.Split(strings.TrimSpace(field), "-")
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return nil, fmt.Errorf("must list at least one cell")
	}
	cells := make([]geom.Coord, 0, len(parts))
	for _, p := range parts {
		c, err := parseTriple(p)
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", p, err)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func parseTriple(s string) (geom.Coord, error) {
	if len(s) != 3 {
		return geom.Coord{}, fmt.Errorf("expected 3 digits, got %q", s)
	}
	x, err := strconv.Atoi(s[0:1])
	if err != nil {
		return geom.Coord{}, err
	}
	y, err := strconv.Atoi(s[1:2])
	if err != nil {
		return geom.Coord{}, err
	}
	z, err := strconv.Atoi(s[2:3])
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.Coord{X: x, Y: y, Z: z}, nil
}

// ParseDim parses a dimension string of the form "XxYxZ", e.g. "4x4x4",
// grounded in the reference solver's Coord parsing.
func ParseDim(s string) (geom.Dim, error) {
	parts := strings.Split(strings.TrimSpace(s), "x")
	if len(parts) != 3 {
		return geom.Dim{}, &ParseError{Row: -1, Col: "dimension", Msg: fmt.Sprintf("expected XxYxZ, got %q", s)}
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geom.Dim{}, &ParseError{Row: -1, Col: "dimension", Msg: fmt.Sprintf("%q is not an integer", p)}
		}
		vals[i] = v
	}
	d, err := geom.NewDim(vals[0], vals[1], vals[2])
	if err != nil {
		return geom.Dim{}, &ParseError{Row: -1, Col: "dimension", Msg: err.Error()}
	}
	return d, nil
}
