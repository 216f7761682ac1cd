//go:build unix

package binfile

import (
	stderrors "errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// notWritable reports whether err comes from writing to a descriptor that was
// not opened for writing.
func notWritable(err error) bool {
	return stderrors.Is(err, unix.EBADF) || stderrors.Is(err, fs.ErrPermission)
}
