package hexview

import "iter"

// Cell is one hex cell of a row.
type Cell struct {
	Index int
	Value byte
}

// Row is one chunk of a window.
type Row struct {
	Address uint64
	Cells   []Cell
	ASCII   []byte
}

// Len returns the number of bytes in the row.
func (r Row) Len() int {
	return len(r.Cells)
}

// Rows partitions win into consecutive chunks of at most width bytes.
// Only the final row may be shorter. An empty window yields no rows.
// width must be at least one.
func Rows(win Window, width int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if width < 1 {
			return
		}
		for i := 0; i*width < len(win.data); i++ {
			start := i * width
			end := min(start+width, len(win.data))
			if !yield(newRow(win.base+uint64(start), win.data[start:end])) {
				return
			}
		}
	}
}

func newRow(addr uint64, chunk []byte) Row {
	row := Row{
		Address: addr,
		Cells:   make([]Cell, len(chunk)),
		ASCII:   make([]byte, len(chunk)),
	}
	for i, b := range chunk {
		row.Cells[i] = Cell{Index: i, Value: b}
		row.ASCII[i] = printable(b)
	}
	return row
}

// printable maps graphic characters and the space to themselves and
// everything else to '.'.
func printable(b byte) byte {
	if b >= 0x20 && b <= 0x7e {
		return b
	}
	return '.'
}
