package binfile

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/coral-mesh/bix/internal/errors"
)

// Sink is an existing file opened for in-place overwrites.
// It satisfies patch.Sink and io.ReaderAt.
type Sink struct {
	f        *os.File
	writable bool
}

// OpenSink opens an existing file for reading and writing. The file is never
// created or truncated.
func OpenSink(path string) (*Sink, error) {
	//nolint:gosec // G304: Patching user-specified files is the purpose of the set command.
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%s: %w", path, errors.ErrSourceNotFound)
		case stderrors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%s: %w: %w", path, errors.ErrSinkNotWritable, err)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Sink{f: f, writable: true}, nil
}

// NewSink wraps an already open file. writable records whether f was opened
// with write access.
func NewSink(f *os.File, writable bool) *Sink {
	return &Sink{f: f, writable: writable}
}

// Writable reports whether the file was opened for writing.
func (s *Sink) Writable() bool {
	return s.writable
}

// WriteAt writes p at off. Writes rejected because the descriptor is
// read-only are reported as ErrSinkNotWritable.
func (s *Sink) WriteAt(p []byte, off int64) (int, error) {
	n, err := s.f.WriteAt(p, off)
	if err != nil && notWritable(err) {
		return n, fmt.Errorf("%w: %w", errors.ErrSinkNotWritable, err)
	}
	return n, err
}

// ReadAt reads len(p) bytes at off.
func (s *Sink) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

// Size returns the current size of the file.
func (s *Sink) Size() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", s.f.Name(), err)
	}
	return info.Size(), nil
}

// Close closes the underlying file.
func (s *Sink) Close() error {
	return s.f.Close()
}
