package patch

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"

	"github.com/coral-mesh/bix/internal/errors"
	"github.com/coral-mesh/bix/internal/testutil"
)

// memSink is an in-memory sink that grows on demand, like a sparse file.
type memSink struct {
	data      []byte
	readOnly  bool
	failAfter int // bytes accepted before failing; -1 disables
	corrupt   bool
}

func newMemSink(size int) *memSink {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return &memSink{data: data, failAfter: -1}
}

func (m *memSink) WriteAt(p []byte, off int64) (int, error) {
	n := len(p)
	var err error
	if m.failAfter >= 0 && n > m.failAfter {
		n = m.failAfter
		err = io.ErrUnexpectedEOF
	}
	if end := int(off) + n; end > len(m.data) {
		m.data = append(m.data, make([]byte, end-len(m.data))...)
	}
	copy(m.data[off:], p[:n])
	if m.corrupt && n > 0 {
		m.data[off] ^= 0xff
	}
	return n, err
}

func (m *memSink) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *memSink) Size() (int64, error) {
	return int64(len(m.data)), nil
}

func (m *memSink) Writable() bool {
	return !m.readOnly
}

// writeOnlySink exposes only the Sink methods of a memSink.
type writeOnlySink struct {
	m *memSink
}

func (w writeOnlySink) WriteAt(p []byte, off int64) (int, error) {
	return w.m.WriteAt(p, off)
}

func (w writeOnlySink) Size() (int64, error) {
	return w.m.Size()
}

func TestApply_Exactness(t *testing.T) {
	sink := newMemSink(0x20)
	before := bytes.Clone(sink.data)
	payload := []byte{0xAA, 0xDD, 0xCC, 0xBA}

	req, err := NewRequest(0x10, payload)
	require.NoError(t, err)

	res, err := New(testutil.NewTestLogger(t)).Apply(sink, req)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Written)
	assert.Equal(t, uint64(0x10), res.Offset)
	assert.Equal(t, xxh3.Hash(payload), res.Digest)
	assert.False(t, res.Grew)

	assert.Equal(t, payload, sink.data[0x10:0x14])
	assert.Equal(t, before[:0x10], sink.data[:0x10])
	assert.Equal(t, before[0x14:], sink.data[0x14:])
}

func TestNewRequest_EmptyPayload(t *testing.T) {
	_, err := NewRequest(0, nil)
	assert.ErrorIs(t, err, errors.ErrEmptyPayload)

	_, err = New(testutil.NewTestLogger(t)).Apply(newMemSink(4), Request{Offset: 0})
	assert.ErrorIs(t, err, errors.ErrEmptyPayload)
}

func TestApply_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		policy   GrowthPolicy
		size     int
		offset   uint64
		payload  []byte
		wantErr  error
		wantGrew bool
		wantSize int
	}{
		{
			name:     "within extent",
			policy:   GrowthReject,
			size:     8,
			offset:   2,
			payload:  []byte{1, 2},
			wantSize: 8,
		},
		{
			name:     "at end appends",
			policy:   GrowthReject,
			size:     8,
			offset:   8,
			payload:  []byte{1, 2},
			wantGrew: true,
			wantSize: 10,
		},
		{
			name:     "runs past end",
			policy:   GrowthReject,
			size:     8,
			offset:   7,
			payload:  []byte{1, 2, 3},
			wantGrew: true,
			wantSize: 10,
		},
		{
			name:     "past end rejected",
			policy:   GrowthReject,
			size:     8,
			offset:   9,
			payload:  []byte{1},
			wantErr:  errors.ErrOffsetOutOfRange,
			wantSize: 8,
		},
		{
			name:     "past end zero filled",
			policy:   GrowthZeroFill,
			size:     8,
			offset:   12,
			payload:  []byte{0xEE},
			wantGrew: true,
			wantSize: 13,
		},
		{
			name:     "offset not representable",
			policy:   GrowthZeroFill,
			size:     8,
			offset:   1 << 63,
			payload:  []byte{1},
			wantErr:  errors.ErrOffsetOutOfRange,
			wantSize: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := newMemSink(tt.size)
			p := New(testutil.NewTestLogger(t), WithGrowth(tt.policy))

			res, err := p.Apply(sink, Request{Offset: tt.offset, Payload: tt.payload})
			assert.Len(t, sink.data, tt.wantSize)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, res.Written)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.payload), res.Written)
			assert.Equal(t, tt.wantGrew, res.Grew)
			assert.Equal(t, tt.payload, sink.data[tt.offset:tt.offset+uint64(len(tt.payload))])
		})
	}
}

func TestApply_ZeroFillGap(t *testing.T) {
	sink := &memSink{data: []byte{0x11, 0x22}, failAfter: -1}
	p := New(testutil.NewTestLogger(t), WithGrowth(GrowthZeroFill))

	_, err := p.Apply(sink, Request{Offset: 5, Payload: []byte{0x99}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0, 0, 0, 0x99}, sink.data)
}

func TestApply_PartialWriteReportsCount(t *testing.T) {
	sink := newMemSink(16)
	sink.failAfter = 2

	res, err := New(testutil.NewTestLogger(t)).Apply(sink, Request{Offset: 4, Payload: []byte{0xA, 0xB, 0xC, 0xD}})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "wrote 2 of 4 bytes")
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, []byte{0xA, 0xB, 6, 7}, sink.data[4:8])
}

func TestApply_ShortWriteWithoutError(t *testing.T) {
	sink := newMemSink(16)
	res, err := New(testutil.NewTestLogger(t)).Apply(shortSink{sink}, Request{Offset: 0, Payload: []byte{1, 2, 3}})
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 1, res.Written)
}

// shortSink accepts a single byte per call and reports no error.
type shortSink struct {
	*memSink
}

func (s shortSink) WriteAt(p []byte, off int64) (int, error) {
	return s.memSink.WriteAt(p[:1], off)
}

func TestApply_SinkNotWritable(t *testing.T) {
	sink := newMemSink(8)
	sink.readOnly = true
	before := bytes.Clone(sink.data)

	res, err := New(testutil.NewTestLogger(t)).Apply(sink, Request{Offset: 0, Payload: []byte{1}})
	require.ErrorIs(t, err, errors.ErrSinkNotWritable)
	assert.Zero(t, res.Written)
	assert.Equal(t, before, sink.data)
}

func TestApply_Verify(t *testing.T) {
	t.Run("matching read-back", func(t *testing.T) {
		sink := newMemSink(8)
		_, err := New(testutil.NewTestLogger(t), WithVerify(true)).Apply(sink, Request{Offset: 1, Payload: []byte{9, 9}})
		require.NoError(t, err)
	})

	t.Run("corrupted read-back", func(t *testing.T) {
		sink := newMemSink(8)
		sink.corrupt = true
		res, err := New(testutil.NewTestLogger(t), WithVerify(true)).Apply(sink, Request{Offset: 1, Payload: []byte{9, 9}})
		require.ErrorIs(t, err, errors.ErrVerifyMismatch)
		assert.Equal(t, 2, res.Written)
	})

	t.Run("sink without read-back", func(t *testing.T) {
		sink := newMemSink(8)
		sink.corrupt = true
		_, err := New(testutil.NewTestLogger(t), WithVerify(true)).Apply(writeOnlySink{m: sink}, Request{Offset: 1, Payload: []byte{9, 9}})
		require.NoError(t, err)
	})
}

func TestGrowthPolicy(t *testing.T) {
	for _, policy := range []GrowthPolicy{GrowthReject, GrowthZeroFill} {
		parsed, err := ParseGrowthPolicy(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}

	policy, err := ParseGrowthPolicy("")
	require.NoError(t, err)
	assert.Equal(t, GrowthReject, policy)

	_, err = ParseGrowthPolicy("extend")
	assert.Error(t, err)
	assert.Equal(t, "GrowthPolicy(7)", GrowthPolicy(7).String())
}
