package binfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-mesh/bix/internal/errors"
	"github.com/coral-mesh/bix/internal/patch"
	"github.com/coral-mesh/bix/internal/testutil"
)

var _ patch.Sink = (*Sink)(nil)

func TestOpenSink_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")

	_, err := OpenSink(path)
	require.ErrorIs(t, err, errors.ErrSourceNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "OpenSink must not create the file")
}

func TestSink_PatchFile(t *testing.T) {
	data := testutil.Sequence(0x20)
	path := testutil.WriteFixture(t, "target.bin", data)

	sink, err := OpenSink(path)
	require.NoError(t, err)
	assert.True(t, sink.Writable())

	payload := []byte{0xAA, 0xDD, 0xCC, 0xBA}
	res, err := patch.New(testutil.NewTestLoggerWithOutput(t), patch.WithVerify(true)).
		Apply(sink, patch.Request{Offset: 0x10, Payload: payload})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Written)
	require.NoError(t, sink.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := append([]byte{}, data...)
	copy(want[0x10:], payload)
	assert.Equal(t, want, got)
}

func TestSink_GrowthPolicies(t *testing.T) {
	t.Run("reject", func(t *testing.T) {
		path := testutil.WriteFixture(t, "target.bin", testutil.Sequence(4))
		sink, err := OpenSink(path)
		require.NoError(t, err)
		defer func() { _ = sink.Close() }()

		_, err = patch.New(testutil.NewTestLogger(t)).Apply(sink, patch.Request{Offset: 8, Payload: []byte{1}})
		require.ErrorIs(t, err, errors.ErrOffsetOutOfRange)

		size, err := sink.Size()
		require.NoError(t, err)
		assert.Equal(t, int64(4), size)
	})

	t.Run("zero-fill", func(t *testing.T) {
		path := testutil.WriteFixture(t, "target.bin", testutil.Sequence(4))
		sink, err := OpenSink(path)
		require.NoError(t, err)

		res, err := patch.New(testutil.NewTestLogger(t), patch.WithGrowth(patch.GrowthZeroFill)).
			Apply(sink, patch.Request{Offset: 8, Payload: []byte{0xFF}})
		require.NoError(t, err)
		assert.True(t, res.Grew)
		require.NoError(t, sink.Close())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 1, 2, 3, 0, 0, 0, 0, 0xFF}, got)
	})
}

func TestNewSink_ReadOnlyFlag(t *testing.T) {
	path := testutil.WriteFixture(t, "target.bin", testutil.Sequence(4))
	f, err := os.Open(path)
	require.NoError(t, err)

	sink := NewSink(f, false)
	defer func() { _ = sink.Close() }()

	_, err = patch.New(testutil.NewTestLogger(t)).Apply(sink, patch.Request{Offset: 0, Payload: []byte{1}})
	assert.ErrorIs(t, err, errors.ErrSinkNotWritable)
}
