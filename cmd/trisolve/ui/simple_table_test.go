package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Test Table", []string{"Col1", "Col2"})
	table.AddRow("Row1Col1", "Row1Col2")

	view := table.View(NewStyles(LightTheme()))

	assert.Contains(t, view, "Test Table")
	assert.Contains(t, view, "Row1Col1")
	assert.Contains(t, view, "Col2")
	assert.Contains(t, view, "─")
}

func TestSimpleTable_Empty(t *testing.T) {
	table := NewSimpleTable("Nothing", []string{"x"})
	assert.Empty(t, table.View(NewStyles(LightTheme())))
}

func TestSimpleTable_AlignsColumns(t *testing.T) {
	table := NewSimpleTable("", []string{"k", "v"})
	table.AddRow("short", "1")
	table.AddRow("much longer key", "2")

	lines := strings.Split(strings.TrimRight(table.View(NewStyles(LightTheme())), "\n"), "\n")
	// header, divider, two rows
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "│"), strings.Index(lines[3], "│"))
}
