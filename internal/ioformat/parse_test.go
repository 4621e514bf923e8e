package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/polycube/internal/geom"
)

const validTable = `name,glyph,colour,cells
domino,A,red,000-100
ell,B,blue,000-010-020-100
`

func TestParsePiecesValidTable(t *testing.T) {
	defs, err := ParsePieces(strings.NewReader(validTable))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "domino", defs[0].Name)
	assert.Equal(t, byte('A'), defs[0].Glyph)
	assert.Equal(t, []geom.Coord{{0, 0, 0}, {1, 0, 0}}, defs[0].Cells)

	assert.Equal(t, "ell", defs[1].Name)
	assert.Equal(t, []geom.Coord{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}, {1, 0, 0}}, defs[1].Cells)
}

func TestParsePiecesRejectsEmptyFile(t *testing.T) {
	_, err := ParsePieces(strings.NewReader("name,glyph,colour,cells\n"))
	require.Error(t, err)
	assert.IsType(t, &ParseError{}, err)
}

func TestParsePiecesRejectsEmptyName(t *testing.T) {
	table := "name,glyph,colour,cells\n,A,red,000\n"
	_, err := ParsePieces(strings.NewReader(table))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "name", pe.Col)
	assert.Equal(t, 1, pe.Row)
}

func TestParsePiecesRejectsMultiCharGlyph(t *testing.T) {
	table := "name,glyph,colour,cells\ndomino,AB,red,000-100\n"
	_, err := ParsePieces(strings.NewReader(table))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "glyph", pe.Col)
}

func TestParsePiecesRejectsEmptyColour(t *testing.T) {
	table := "name,glyph,colour,cells\ndomino,A,,000-100\n"
	_, err := ParsePieces(strings.NewReader(table))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "colour", pe.Col)
}

func TestParsePiecesRejectsMalformedCell(t *testing.T) {
	table := "name,glyph,colour,cells\ndomino,A,red,00-100\n"
	_, err := ParsePieces(strings.NewReader(table))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "cells", pe.Col)
}

func TestParseDimValid(t *testing.T) {
	d, err := ParseDim("4x4x4")
	require.NoError(t, err)
	assert.Equal(t, geom.Dim{X: 4, Y: 4, Z: 4}, d)
}

func TestParseDimRejectsWrongArity(t *testing.T) {
	_, err := ParseDim("4x4")
	require.Error(t, err)
}

func TestParseDimRejectsNonInteger(t *testing.T) {
	_, err := ParseDim("4xfourx4")
	require.Error(t, err)
}

func TestParseErrorMessageFormat(t *testing.T) {
	rowErr := &ParseError{Row: 3, Col: "name", Msg: "must not be empty"}
	assert.Equal(t, `row 3, column name: must not be empty`, rowErr.Error())

	fileErr := &ParseError{Row: -1, Col: "file", Msg: "boom"}
	assert.Equal(t, `file: boom`, fileErr.Error())
}
