package hexview

// Window is an immutable byte range anchored at an absolute offset.
type Window struct {
	base uint64
	data []byte
}

// NewWindow copies data into a Window whose first byte sits at base.
func NewWindow(base uint64, data []byte) Window {
	return Window{base: base, data: cloneBytes(data)}
}

// Base returns the absolute offset of the first byte.
func (w Window) Base() uint64 {
	return w.base
}

// Len returns the number of bytes in the window.
func (w Window) Len() int {
	return len(w.data)
}

// Bytes returns a copy of the window contents.
func (w Window) Bytes() []byte {
	return cloneBytes(w.data)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
