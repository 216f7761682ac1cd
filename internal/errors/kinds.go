package errors

import stderrors "errors"

// Error kinds surfaced by the view and patch paths. Callers wrap them with
// context via fmt.Errorf("...: %w", err) and match them with errors.Is.
var (
	// ErrSourceNotFound is returned when the file to read or patch does not exist.
	ErrSourceNotFound = stderrors.New("source not found")

	// ErrShortRead is returned when fewer bytes are available than requested.
	ErrShortRead = stderrors.New("short read")

	// ErrSinkNotWritable is returned when the sink was not opened for writing.
	ErrSinkNotWritable = stderrors.New("sink not writable")

	// ErrOffsetOutOfRange is returned when a patch offset lies beyond the sink extent.
	ErrOffsetOutOfRange = stderrors.New("offset out of range")

	// ErrInvalidByteToken is returned for a malformed hex byte in a patch payload.
	ErrInvalidByteToken = stderrors.New("invalid byte token")

	// ErrInvalidOffsetToken is returned for a malformed offset string.
	ErrInvalidOffsetToken = stderrors.New("invalid offset token")

	// ErrInvalidWidth is returned for a row width below one.
	ErrInvalidWidth = stderrors.New("invalid width")

	// ErrEmptyPayload is returned for a patch request without bytes.
	ErrEmptyPayload = stderrors.New("empty payload")

	// ErrVerifyMismatch is returned when the read-back of a patch differs from the payload.
	ErrVerifyMismatch = stderrors.New("verify mismatch")
)
