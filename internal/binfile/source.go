package binfile

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/coral-mesh/bix/internal/errors"
	"github.com/coral-mesh/bix/internal/hexview"
	"github.com/coral-mesh/bix/internal/safe"
)

// ToEnd requests every byte from the offset to the end of the file.
const ToEnd = -1

// Source reads byte windows from a file.
type Source struct {
	f    *os.File
	path string
}

// OpenSource opens path for reading.
func OpenSource(path string) (*Source, error) {
	//nolint:gosec // G304: Reading user-specified files is the purpose of the view command.
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, errors.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Source{f: f, path: path}, nil
}

// Path returns the path the source was opened with.
func (s *Source) Path() string {
	return s.path
}

// Size returns the current size of the file.
func (s *Source) Size() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	return info.Size(), nil
}

// ReadWindow reads length bytes starting at offset. A length of ToEnd reads
// everything up to the end of the file, which yields an empty window when
// offset is at or past the end. Any other length must be fully available or
// ErrShortRead is returned.
func (s *Source) ReadWindow(offset uint64, length int) (hexview.Window, error) {
	start, clamped := safe.Uint64ToInt64(offset)

	if length < 0 {
		if clamped {
			return hexview.NewWindow(offset, nil), nil
		}
		data, err := io.ReadAll(io.NewSectionReader(s.f, start, math.MaxInt64-start))
		if err != nil {
			return hexview.Window{}, fmt.Errorf("failed to read %s at 0x%X: %w", s.path, offset, err)
		}
		return hexview.NewWindow(offset, data), nil
	}

	if clamped && length > 0 {
		return hexview.Window{}, fmt.Errorf("requested %d bytes at 0x%X, 0 available: %w",
			length, offset, errors.ErrShortRead)
	}

	size, err := s.Size()
	if err != nil {
		return hexview.Window{}, err
	}
	if available := max(size-start, 0); int64(length) > available {
		return hexview.Window{}, fmt.Errorf("requested %d bytes at 0x%X, %d available: %w",
			length, offset, available, errors.ErrShortRead)
	}

	buf := make([]byte, length)
	n, err := io.ReadFull(io.NewSectionReader(s.f, start, int64(length)), buf)
	if err != nil {
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
			return hexview.Window{}, fmt.Errorf("requested %d bytes at 0x%X, %d available: %w",
				length, offset, n, errors.ErrShortRead)
		}
		return hexview.Window{}, fmt.Errorf("failed to read %s at 0x%X: %w", s.path, offset, err)
	}
	return hexview.NewWindow(offset, buf), nil
}

// Close closes the underlying file.
func (s *Source) Close() error {
	return s.f.Close()
}
