package pmx

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// app concatenates values into a byte slice. Integer constants are single
// bytes; int32, uint16 and float32 values are little-endian.
func app(bs ...any) []byte {
	var s []byte
	for _, b := range bs {
		switch b := b.(type) {
		case string:
			s = append(s, b...)
		case []byte:
			s = append(s, b...)
		case byte:
			s = append(s, b)
		case int:
			s = append(s, byte(b))
		case uint16:
			s = binary.LittleEndian.AppendUint16(s, b)
		case int32:
			s = binary.LittleEndian.AppendUint32(s, uint32(b))
		case float32:
			s = binary.LittleEndian.AppendUint32(s, math.Float32bits(b))
		default:
			panic("app: unsupported type")
		}
	}
	return s
}

func readerOf(b ...any) *parse.BinaryReader {
	return parse.NewBinaryReader(bytes.NewReader(app(b...)))
}

// writeBytes returns the bytes produced by write.
func writeBytes(t *testing.T, write func(fw *parse.BinaryWriter) bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)
	failed := write(fw)
	_, err := fw.End()
	require.NoError(t, err)
	require.False(t, failed)
	return buf.Bytes()
}

// limitWriter accepts n bytes, then fails.
type limitWriter struct {
	n int
}

func (w *limitWriter) Write(b []byte) (int, error) {
	if len(b) > w.n {
		n := w.n
		w.n = 0
		return n, io.ErrShortWrite
	}
	w.n -= len(b)
	return len(b), nil
}

func TestIndexSentinel(t *testing.T) {
	for _, size := range []uint8{1, 2} {
		b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeIndex(fw, size, -1) })
		assert.Equal(t, bytes.Repeat([]byte{0xFF}, int(size)), b, "size %d", size)

		var v int32
		require.False(t, readIndex(parse.NewBinaryReader(bytes.NewReader(b)), size, &v))
		assert.Equal(t, int32(-1), v, "size %d", size)
	}

	// Any negative value collapses to the sentinel.
	b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeIndex(fw, 1, -42) })
	assert.Equal(t, []byte{0xFF}, b)

	var v int32
	require.False(t, readIndex(readerOf(0xFE), 1, &v))
	assert.Equal(t, int32(254), v)
	require.False(t, readIndex(readerOf(0xFF, 0x00), 2, &v))
	assert.Equal(t, int32(255), v)
	require.False(t, readIndex(readerOf(0xFE, 0xFF), 2, &v))
	assert.Equal(t, int32(0xFFFE), v)
}

func TestIndexWidth4Verbatim(t *testing.T) {
	for _, want := range []int32{0, 1, 0x1FF, -1, -7, math.MaxInt32, math.MinInt32} {
		b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeIndex(fw, 4, want) })
		assert.Equal(t, app(want), b)

		var got int32
		require.False(t, readIndex(parse.NewBinaryReader(bytes.NewReader(b)), 4, &got))
		assert.Equal(t, want, got)
	}
}

func TestIndexInvalidWidth(t *testing.T) {
	b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeIndex(fw, 3, 12) })
	assert.Empty(t, b)

	fr := readerOf(0x05)
	var v int32
	require.False(t, readIndex(fr, 3, &v))
	assert.Equal(t, int32(-1), v)

	// Nothing was consumed.
	require.False(t, readIndex(fr, 1, &v))
	assert.Equal(t, int32(5), v)
}

func TestTextRoundTrip(t *testing.T) {
	for _, enc := range []pmxfile.Encoding{pmxfile.UTF16LE, pmxfile.UTF8, 7} {
		for _, want := range []string{"", "a", "初音ミク", "センター\nEnglish 123", "😀"} {
			b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeText(fw, enc, want) })
			var got string
			fr := parse.NewBinaryReader(bytes.NewReader(b))
			require.False(t, readText(fr, enc, &got))
			assert.Equal(t, want, got, "encoding %d", enc)
			n, err := fr.End()
			require.NoError(t, err)
			assert.Equal(t, int64(len(b)), n)
		}
	}
}

func TestTextLength(t *testing.T) {
	for _, enc := range []pmxfile.Encoding{pmxfile.UTF16LE, pmxfile.UTF8} {
		b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeText(fw, enc, "") })
		assert.Equal(t, []byte{0, 0, 0, 0}, b)
	}

	b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeText(fw, pmxfile.UTF16LE, "初音ミク") })
	assert.Equal(t, app(int32(8)), b[:4])
	assert.Len(t, b, 12)

	b = writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeText(fw, pmxfile.UTF8, "初音ミク") })
	assert.Equal(t, app(int32(12), "初音ミク"), b)

	b = writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeText(fw, pmxfile.UTF16LE, "AB") })
	assert.Equal(t, app(int32(4), "A", 0, "B", 0), b)
}

func TestReadTextOddUTF16(t *testing.T) {
	var s string
	require.False(t, readText(readerOf(int32(3), "A", 0, "B"), pmxfile.UTF16LE, &s))
	assert.Equal(t, "A", s)
}

func TestReadTextInvalid(t *testing.T) {
	// Invalid sequences decode to U+FFFD, so the original bytes are not
	// reproduced when the text is written again.
	var s string
	raw := app(int32(2), "A", byte(0xFF))
	require.False(t, readText(parse.NewBinaryReader(bytes.NewReader(raw)), pmxfile.UTF8, &s))
	assert.Equal(t, "A\uFFFD", s)
	b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeText(fw, pmxfile.UTF8, s) })
	assert.NotEqual(t, raw, b)

	require.False(t, readText(readerOf(int32(4), uint16(0xD800), "B", 0), pmxfile.UTF16LE, &s))
	assert.Equal(t, "\uFFFDB", s)
}

func TestReadTextErrors(t *testing.T) {
	var s string
	fr := readerOf(int32(-1))
	require.True(t, readText(fr, pmxfile.UTF8, &s))
	assert.ErrorIs(t, fr.Err(), ErrNegativeLength)

	fr = readerOf(int32(10), "abc")
	require.True(t, readText(fr, pmxfile.UTF8, &s))
	assert.Error(t, fr.Err())

	// Large lengths fail once the stream runs out.
	fr = readerOf(int32(math.MaxInt32), "abc")
	require.True(t, readText(fr, pmxfile.UTF8, &s))
	assert.Error(t, fr.Err())
}

func TestList(t *testing.T) {
	read := func(fr *parse.BinaryReader) ([]int32, bool) {
		return readList(fr, func(v *int32) bool { return fr.Number(v) })
	}

	list, failed := read(readerOf(int32(2), int32(5), int32(-6)))
	require.False(t, failed)
	assert.Equal(t, []int32{5, -6}, list)

	list, failed = read(readerOf(int32(0)))
	require.False(t, failed)
	assert.Nil(t, list)

	// Failure on the third row.
	list, failed = read(readerOf(int32(3), int32(5), int32(6), 0x01))
	require.True(t, failed)
	assert.Len(t, list, 2)

	fr := readerOf(int32(-2))
	list, failed = readList(fr, func(v *int32) bool { return fr.Number(v) })
	require.True(t, failed)
	assert.Nil(t, list)
	assert.ErrorIs(t, fr.Err(), ErrNegativeLength)

	b := writeBytes(t, func(fw *parse.BinaryWriter) bool {
		_, failed := writeList(fw, []int32{1, 2}, func(v *int32) bool { return fw.Number(*v) })
		return failed
	})
	assert.Equal(t, app(int32(2), int32(1), int32(2)), b)
}

func TestFloats(t *testing.T) {
	v := make([]float32, 3)
	fr := readerOf(float32(1), float32(-2.5), float32(0.125), float32(9))
	require.False(t, readFloats(fr, v))
	assert.Equal(t, []float32{1, -2.5, 0.125}, v)

	// Only len(v) values are consumed.
	var next float32
	require.False(t, fr.Number(&next))
	assert.Equal(t, float32(9), next)

	require.True(t, readFloats(readerOf(float32(1), 0, 0), v))

	b := writeBytes(t, func(fw *parse.BinaryWriter) bool {
		return writeFloats(fw, []float32{1, -2.5, 0.125})
	})
	assert.Equal(t, app(float32(1), float32(-2.5), float32(0.125)), b)
	assert.Empty(t, writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeFloats(fw, nil) }))

	fw := parse.NewBinaryWriter(&limitWriter{n: 6})
	assert.True(t, writeFloats(fw, []float32{1, 2}))
}
