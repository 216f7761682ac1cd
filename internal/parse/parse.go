// Package parse converts command-line tokens into offsets and byte payloads.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coral-mesh/bix/internal/errors"
)

// Offset parses a file offset. Values prefixed with "0x" are hexadecimal,
// everything else is decimal.
func Offset(s string) (uint64, error) {
	var (
		v   uint64
		err error
	)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		v, err = strconv.ParseUint(hex, 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidOffsetToken)
	}
	return v, nil
}

// Byte parses a single byte written as one or two hex digits.
func Byte(s string) (byte, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidByteToken)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidByteToken)
	}
	return byte(v), nil
}

// Bytes parses every token with Byte, in order.
func Bytes(tokens []string) ([]byte, error) {
	out := make([]byte, len(tokens))
	for i, tok := range tokens {
		b, err := Byte(tok)
		if err != nil {
			return nil, fmt.Errorf("byte %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}
