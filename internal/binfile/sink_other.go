//go:build !unix

package binfile

import (
	stderrors "errors"
	"io/fs"
)

func notWritable(err error) bool {
	return stderrors.Is(err, fs.ErrPermission)
}
