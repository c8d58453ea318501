// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/pkg/errors"

	"sashui.org/geom"
	"sashui.org/io/event"
)

// LineInfo carries the space constraints of one grid row or column.
type LineInfo struct {
	// Min is the minimum extent of the line in pixels.
	Min float32
	// Stretch is the weight with which the line competes for the
	// surplus space.
	Stretch float32
}

// CellLocation is the span of an item on the grid, in cell units.
type CellLocation struct {
	X, Y int
	W, H int
}

// Grid arranges items on a 2D cell grid. Each item spans a clamped
// rectangle of cells; each row and column distributes space
// independently according to its LineInfo.
type Grid struct {
	base
	margin      float32
	columns     int
	rows        int
	columnsInfo []LineInfo
	rowsInfo    []LineInfo
	// locations maps physical indices to cell spans.
	locations map[int]CellLocation
}

// NewGrid returns a columns x rows grid layout with margin pixels
// between adjacent cells.
func NewGrid(columns, rows int, margin float32) *Grid {
	g := &Grid{
		base:   newBase("grid"),
		margin: margin,
	}
	g.SetGrid(columns, rows)
	return g
}

// ColumnCount returns the number of columns.
func (g *Grid) ColumnCount() int {
	return g.columns
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int {
	return g.rows
}

// SetGrid resets the grid dimensions. All line constraints are
// reinitialized to zero minimum and zero stretch: callers must
// re-apply any customization after regridding.
func (g *Grid) SetGrid(columns, rows int) {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.columns = columns
	g.rows = rows
	g.columnsInfo = make([]LineInfo, columns)
	g.rowsInfo = make([]LineInfo, rows)
	if g.locations == nil {
		g.locations = make(map[int]CellLocation)
	}
	for id, loc := range g.locations {
		g.locations[id] = g.clampLocation(loc)
	}
}

// SetColumnHorizontalStretch sets the stretch weight of a column.
// An out-of-range column is a contract violation and fails the call.
func (g *Grid) SetColumnHorizontalStretch(column int, stretch float32) error {
	if column < 0 || column >= g.columns {
		return errors.Errorf("cannot set horizontal stretch for column %d in %d column(s) wide layout", column, g.columns)
	}
	g.columnsInfo[column].Stretch = stretch
	return nil
}

// SetColumnMinimumWidth sets the minimum width of a column. An
// out-of-range column is a contract violation and fails the call.
func (g *Grid) SetColumnMinimumWidth(column int, width float32) error {
	if column < 0 || column >= g.columns {
		return errors.Errorf("cannot set minimum width for column %d in %d column(s) wide layout", column, g.columns)
	}
	g.columnsInfo[column].Min = width
	return nil
}

// SetColumnsMinimumWidth sets the minimum width of every column.
func (g *Grid) SetColumnsMinimumWidth(width float32) {
	for column := range g.columnsInfo {
		g.columnsInfo[column].Min = width
	}
}

// SetRowVerticalStretch sets the stretch weight of a row. An
// out-of-range row is a contract violation and fails the call.
func (g *Grid) SetRowVerticalStretch(row int, stretch float32) error {
	if row < 0 || row >= g.rows {
		return errors.Errorf("cannot set vertical stretch for row %d in %d row(s) wide layout", row, g.rows)
	}
	g.rowsInfo[row].Stretch = stretch
	return nil
}

// SetRowMinimumHeight sets the minimum height of a row. An
// out-of-range row is a contract violation and fails the call.
func (g *Grid) SetRowMinimumHeight(row int, height float32) error {
	if row < 0 || row >= g.rows {
		return errors.Errorf("cannot set minimum height for row %d in %d row(s) wide layout", row, g.rows)
	}
	g.rowsInfo[row].Min = height
	return nil
}

// SetRowsMinimumHeight sets the minimum height of every row.
func (g *Grid) SetRowsMinimumHeight(height float32) {
	for row := range g.rowsInfo {
		g.rowsInfo[row].Min = height
	}
}

// AddItem registers item spanning a single cell at the grid origin.
func (g *Grid) AddItem(item Item) int {
	return g.AddItemAt(item, 0, 0, 1, 1)
}

// AddItemAt registers item spanning w x h cells starting at (x, y).
// Origins and spans that exceed the grid are clamped so that every
// item always lies fully inside the grid; no item is dropped for
// being out of range. The physical index is returned, negative on
// registration failure.
func (g *Grid) AddItemAt(item Item, x, y, w, h int) int {
	id := g.addItem(item)
	if id < 0 {
		return id
	}
	g.locations[id] = g.clampLocation(CellLocation{X: x, Y: y, W: w, H: h})
	return id
}

// RemoveItem unregisters item and discards its cell location. The
// locations of the items registered after it follow the compaction
// of the physical indices.
func (g *Grid) RemoveItem(item Item) int {
	id := g.removeItem(item)
	if id < 0 {
		return id
	}
	if _, ok := g.locations[id]; !ok {
		g.logger.Warnf("no cell location recorded for removed item %q", item.Name())
	}
	delete(g.locations, id)
	for i := id + 1; ; i++ {
		loc, ok := g.locations[i]
		if !ok {
			break
		}
		g.locations[i-1] = loc
		delete(g.locations, i)
	}
	return id
}

// Location returns the effective cell span of the item with physical
// index id.
func (g *Grid) Location(id int) (CellLocation, bool) {
	loc, ok := g.locations[id]
	return loc, ok
}

func (g *Grid) clampLocation(loc CellLocation) CellLocation {
	if loc.X > g.columns-1 {
		loc.X = g.columns - 1
	}
	if loc.X < 0 {
		loc.X = 0
	}
	if loc.Y > g.rows-1 {
		loc.Y = g.rows - 1
	}
	if loc.Y < 0 {
		loc.Y = 0
	}
	if loc.W < 1 {
		loc.W = 1
	}
	if loc.W > g.columns-loc.X {
		loc.W = g.columns - loc.X
	}
	if loc.H < 1 {
		loc.H = 1
	}
	if loc.H > g.rows-loc.Y {
		loc.H = g.rows - loc.Y
	}
	return loc
}

// ColumnWidths distributes width across the columns according to
// their minimums and stretches. The inter-cell margins are taken off
// the distributed space first.
func (g *Grid) ColumnWidths(width float32) []float32 {
	slots := make([]Slot, g.columns)
	for i, info := range g.columnsInfo {
		slots[i] = Slot{Min: info.Min, Stretch: info.Stretch}
	}
	sizes, deficit := Allocate(width-float32(g.columns-1)*g.margin, slots)
	if deficit {
		g.logger.Warnf("column minimums overflow the available width %f", width)
	}
	return sizes
}

// RowHeights distributes height across the rows according to their
// minimums and stretches. The inter-cell margins are taken off the
// distributed space first.
func (g *Grid) RowHeights(height float32) []float32 {
	slots := make([]Slot, g.rows)
	for i, info := range g.rowsInfo {
		slots[i] = Slot{Min: info.Min, Stretch: info.Stretch}
	}
	sizes, deficit := Allocate(height-float32(g.rows-1)*g.margin, slots)
	if deficit {
		g.logger.Warnf("row minimums overflow the available height %f", height)
	}
	return sizes
}

// Update computes the rectangle of every item from the per-line
// space distribution and posts the resize requests. An item spanning
// several cells receives the spanned lines plus the margins between
// them.
func (g *Grid) Update(window geom.Box, q *event.Queue) {
	if g.Count() == 0 {
		return
	}
	widths := g.ColumnWidths(window.W)
	heights := g.RowHeights(window.H)
	// Left edge of each column and top edge of each row, relative to
	// the container center.
	lefts := make([]float32, g.columns)
	edge := -window.W / 2
	for i, w := range widths {
		lefts[i] = edge
		edge += w + g.margin
	}
	tops := make([]float32, g.rows)
	edge = -window.H / 2
	for i, h := range heights {
		tops[i] = edge
		edge += h + g.margin
	}
	for id := 0; id < g.Count(); id++ {
		item := g.ItemAt(id)
		loc := g.locations[id]
		w := span(widths, loc.X, loc.W, g.margin)
		h := span(heights, loc.Y, loc.H, g.margin)
		box := geom.Box{
			X: lefts[loc.X] + w/2,
			Y: tops[loc.Y] + h/2,
			W: w,
			H: h,
		}
		q.Post(event.ResizeEvent{
			Target: item,
			Old:    item.RenderingArea(),
			New:    box,
		})
	}
}

// span sums the extents of count lines starting at first, including
// the margins between them.
func span(sizes []float32, first, count int, margin float32) float32 {
	var total float32
	for i := first; i < first+count; i++ {
		total += sizes[i]
	}
	return total + float32(count-1)*margin
}
