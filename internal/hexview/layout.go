package hexview

import (
	"fmt"

	"github.com/coral-mesh/bix/internal/errors"
)

// Mode selects how rows are laid out. It is either Raw or Structured.
type Mode interface {
	isMode()
}

// Raw renders the window as one flat line of hex tokens with no columns.
type Raw struct{}

// Structured renders one row per chunk of Width bytes.
type Structured struct {
	// Address prefixes each row with its absolute offset.
	Address bool
	// Group inserts an extra space after the first half of the hex cells.
	Group bool
	// ASCII appends the printable representation of the row.
	ASCII bool
}

func (Raw) isMode()        {}
func (Structured) isMode() {}

// Layout is an immutable rendering configuration.
type Layout struct {
	Width int
	Mode  Mode
}

// NewLayout validates width and returns a Layout.
// A nil mode defaults to a fully enabled Structured mode.
func NewLayout(width int, mode Mode) (Layout, error) {
	if width < 1 {
		return Layout{}, fmt.Errorf("width %d: %w", width, errors.ErrInvalidWidth)
	}
	if mode == nil {
		mode = Structured{Address: true, Group: true, ASCII: true}
	}
	return Layout{Width: width, Mode: mode}, nil
}

// LayoutFromFlags maps the view command's negative flags onto a Layout.
// raw overrides the three other flags.
func LayoutFromFlags(width int, noGroup, noAddr, noASCII, raw bool) (Layout, error) {
	if raw {
		return NewLayout(width, Raw{})
	}
	return NewLayout(width, Structured{
		Address: !noAddr,
		Group:   !noGroup,
		ASCII:   !noASCII,
	})
}

// IsRaw reports whether the layout renders a flat hex stream.
func (l Layout) IsRaw() bool {
	_, ok := l.Mode.(Raw)
	return ok
}

// structured returns the structured column set, or the zero value in raw mode.
func (l Layout) structured() Structured {
	s, _ := l.Mode.(Structured)
	return s
}
