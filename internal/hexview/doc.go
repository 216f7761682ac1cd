// Package hexview renders byte windows as hex dump rows.
//
// A Window pairs a materialised byte range with the absolute offset of its
// first byte. A Layout describes how rows are produced: either a flat raw
// stream of hex tokens, or structured rows with optional address, midpoint
// grouping and ASCII columns.
//
// # Usage
//
//	layout, err := hexview.LayoutFromFlags(16, false, false, false, false)
//	if err != nil {
//		return err
//	}
//
//	win := hexview.NewWindow(0x10, data)
//	if err := hexview.NewRenderer(layout).Render(os.Stdout, win); err != nil {
//		return err
//	}
//
// Rendering is pure: rows are produced lazily as an iter.Seq and only the
// Render method writes to the supplied io.Writer.
package hexview
