// Package patch overwrites bytes of a sink at an absolute offset.
//
// The Patcher bounds-checks the request against the sink's current size,
// writes the payload verbatim and reports how many bytes reached the sink,
// including when the write fails partway. No rollback is attempted.
package patch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"

	"github.com/coral-mesh/bix/internal/errors"
	"github.com/coral-mesh/bix/internal/safe"
)

// Sink is a positioned byte sink with a known current extent.
type Sink interface {
	io.WriterAt
	Size() (int64, error)
}

// Request is a single overwrite of Payload starting at Offset.
type Request struct {
	Offset  uint64
	Payload []byte
}

// NewRequest returns a Request, rejecting an empty payload.
func NewRequest(offset uint64, payload []byte) (Request, error) {
	if len(payload) == 0 {
		return Request{}, errors.ErrEmptyPayload
	}
	return Request{Offset: offset, Payload: payload}, nil
}

// Result describes an applied (or partially applied) request.
type Result struct {
	Offset uint64
	// Written is the number of bytes that reached the sink.
	Written int
	// Digest is the xxh3 hash of the payload, set on success.
	Digest uint64
	// Grew reports whether the write extended the sink.
	Grew bool
}

// Patcher applies requests to sinks.
type Patcher struct {
	logger zerolog.Logger
	growth GrowthPolicy
	verify bool
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithGrowth sets how offsets past the end of the sink are handled.
func WithGrowth(policy GrowthPolicy) Option {
	return func(p *Patcher) {
		p.growth = policy
	}
}

// WithVerify reads the written range back after each patch and compares it
// with the payload. Sinks that cannot be read are not verified.
func WithVerify(verify bool) Option {
	return func(p *Patcher) {
		p.verify = verify
	}
}

// New creates a Patcher. The default growth policy is GrowthReject.
func New(logger zerolog.Logger, opts ...Option) *Patcher {
	p := &Patcher{
		logger: logger.With().Str("component", "patcher").Logger(),
		growth: GrowthReject,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply writes req.Payload to sink at req.Offset.
//
// The offset may point anywhere within the sink or at its end; payloads that
// run past the end extend the sink. Offsets strictly past the end are
// rejected with ErrOffsetOutOfRange unless the growth policy is
// GrowthZeroFill. On failure Result.Written still reports the bytes written.
func (p *Patcher) Apply(sink Sink, req Request) (Result, error) {
	res := Result{Offset: req.Offset}

	if len(req.Payload) == 0 {
		return res, errors.ErrEmptyPayload
	}
	if w, ok := sink.(interface{ Writable() bool }); ok && !w.Writable() {
		return res, errors.ErrSinkNotWritable
	}

	start, clamped := safe.Uint64ToInt64(req.Offset)
	end, overflow := safe.Span(req.Offset, len(req.Payload))
	if clamped || overflow {
		return res, fmt.Errorf("offset 0x%X: %w", req.Offset, errors.ErrOffsetOutOfRange)
	}

	size, err := sink.Size()
	if err != nil {
		return res, fmt.Errorf("failed to stat sink: %w", err)
	}
	if start > size && p.growth == GrowthReject {
		return res, fmt.Errorf("offset 0x%X beyond end of sink (size 0x%X): %w",
			req.Offset, size, errors.ErrOffsetOutOfRange)
	}

	n, err := sink.WriteAt(req.Payload, start)
	res.Written = n
	if err == nil && n < len(req.Payload) {
		err = io.ErrShortWrite
	}
	if err != nil {
		p.logger.Debug().
			Err(err).
			Uint64("offset", req.Offset).
			Int("written", n).
			Int("requested", len(req.Payload)).
			Msg("Patch failed")
		return res, fmt.Errorf("wrote %d of %d bytes at 0x%X: %w", n, len(req.Payload), req.Offset, err)
	}

	res.Digest = xxh3.Hash(req.Payload)
	res.Grew = end > size

	if p.verify {
		if err := p.verifyWrite(sink, start, req.Payload, res.Digest); err != nil {
			return res, err
		}
	}

	p.logger.Debug().
		Uint64("offset", req.Offset).
		Int("written", n).
		Bool("grew", res.Grew).
		Str("policy", p.growth.String()).
		Msg("Patch applied")

	return res, nil
}

func (p *Patcher) verifyWrite(sink Sink, start int64, payload []byte, digest uint64) error {
	r, ok := sink.(io.ReaderAt)
	if !ok {
		p.logger.Warn().Msg("Sink does not support read-back, skipping verification")
		return nil
	}

	got := make([]byte, len(payload))
	if _, err := r.ReadAt(got, start); err != nil {
		return fmt.Errorf("failed to read back patch at 0x%X: %w", start, err)
	}
	if xxh3.Hash(got) != digest || !bytes.Equal(got, payload) {
		return fmt.Errorf("read back at 0x%X differs from payload: %w", start, errors.ErrVerifyMismatch)
	}
	return nil
}
