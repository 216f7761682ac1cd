package hexview

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// HexColumnFootprint returns the number of characters a full row of width
// cells occupies in the hex column. The grouping separator is counted
// whenever a full row reaches the midpoint cell, i.e. for width >= 2.
func HexColumnFootprint(width int, group bool) int {
	if width < 1 {
		return 0
	}
	n := width * 3
	if group && width/2 >= 1 {
		n++
	}
	return n
}

// Line is the text of one structured row split into its columns.
// Concatenating the fields in order, plus a newline, yields the row.
type Line struct {
	Address string
	Hex     string
	Pad     string
	ASCII   string
}

// String returns the line without its trailing newline.
func (l Line) String() string {
	return l.Address + l.Hex + l.Pad + l.ASCII
}

// Renderer turns windows into text according to a Layout.
type Renderer struct {
	layout Layout
}

// NewRenderer returns a Renderer for layout.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Format renders one row in structured mode.
func (r *Renderer) Format(row Row) Line {
	cols := r.layout.structured()

	var line Line
	if cols.Address {
		line.Address = fmt.Sprintf("%08X: ", row.Address)
	}

	hex := Hex(row)
	if cols.Group {
		hex = groupHex(hex, row.Len(), r.layout.Width)
	}
	line.Hex = hex

	if cols.ASCII {
		if pad := HexColumnFootprint(r.layout.Width, cols.Group) - len(line.Hex); pad > 0 {
			line.Pad = strings.Repeat(" ", pad)
		}
		line.ASCII = "|" + string(row.ASCII) + "|"
	}
	return line
}

// Lines yields the newline-terminated text lines for win.
// Raw mode yields exactly one line, even for an empty window.
func (r *Renderer) Lines(win Window) iter.Seq[string] {
	return func(yield func(string) bool) {
		if r.layout.IsRaw() {
			yield(rawLine(win.data))
			return
		}
		for row := range Rows(win, r.layout.Width) {
			if !yield(r.Format(row).String() + "\n") {
				return
			}
		}
	}
}

// Render writes every line for win to out, in order.
func (r *Renderer) Render(out io.Writer, win Window) error {
	for line := range r.Lines(win) {
		if _, err := io.WriteString(out, line); err != nil {
			return fmt.Errorf("failed to write rendered line: %w", err)
		}
	}
	return nil
}

// Hex returns the ungrouped hex cells of row, each followed by a space.
func Hex(row Row) string {
	buf := make([]byte, 0, row.Len()*3)
	for _, c := range row.Cells {
		buf = appendCell(buf, c.Value)
	}
	return string(buf)
}

// groupHex inserts the midpoint separator after cell width/2-1 when the row
// reaches it.
func groupHex(hex string, cells, width int) string {
	mid := width / 2
	if mid < 1 || cells < mid {
		return hex
	}
	return hex[:mid*3] + " " + hex[mid*3:]
}

func rawLine(data []byte) string {
	buf := make([]byte, 0, len(data)*3+1)
	for _, b := range data {
		buf = appendCell(buf, b)
	}
	return string(append(buf, '\n'))
}

func appendCell(buf []byte, b byte) []byte {
	return append(buf, hexDigits[b>>4], hexDigits[b&0x0f], ' ')
}
