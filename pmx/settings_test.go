package pmx

import (
	"testing"

	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSettings(t *testing.T) {
	var s pmxfile.Settings
	ext, failed := readSettings(readerOf(8, 1, 2, 1, 2, 4, 1, 2, 4), &s)
	require.False(t, failed)
	assert.Nil(t, ext)
	assert.Equal(t, pmxfile.Settings{
		Encoding:           pmxfile.UTF8,
		AdditionalUV:       2,
		VertexIndexSize:    1,
		TextureIndexSize:   2,
		MaterialIndexSize:  4,
		BoneIndexSize:      1,
		MorphIndexSize:     2,
		RigidBodyIndexSize: 4,
	}, s)
}

func TestReadSettingsExtension(t *testing.T) {
	var s pmxfile.Settings
	fr := readerOf(10, 0, 0, 4, 4, 4, 4, 4, 4, 0xAA, 0xBB, 0x07)
	ext, failed := readSettings(fr, &s)
	require.False(t, failed)
	assert.Equal(t, []byte{0xAA, 0xBB}, ext)
	assert.Equal(t, pmxfile.DefaultSettings(), s)

	// The extension was consumed.
	var next uint8
	require.False(t, fr.Number(&next))
	assert.Equal(t, uint8(0x07), next)
}

func TestReadSettingsCorrupt(t *testing.T) {
	var s pmxfile.Settings
	fr := readerOf(7, 0, 0, 4, 4, 4, 4, 4)
	_, failed := readSettings(fr, &s)
	require.True(t, failed)
	assert.ErrorIs(t, fr.Err(), ErrCorruptHeader)

	fr = readerOf(8, 0, 5, 4, 4, 4, 4, 4, 4)
	_, failed = readSettings(fr, &s)
	require.True(t, failed)
	assert.ErrorIs(t, fr.Err(), ErrCorruptHeader)
}

func TestWriteSettings(t *testing.T) {
	s := pmxfile.Settings{
		Encoding:           pmxfile.UTF8,
		AdditionalUV:       4,
		VertexIndexSize:    2,
		TextureIndexSize:   1,
		MaterialIndexSize:  1,
		BoneIndexSize:      2,
		MorphIndexSize:     1,
		RigidBodyIndexSize: 1,
	}
	b := writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeSettings(fw, &s) })
	assert.Equal(t, []byte{8, 1, 4, 2, 1, 1, 2, 1, 1}, b)

	d := pmxfile.DefaultSettings()
	b = writeBytes(t, func(fw *parse.BinaryWriter) bool { return writeSettings(fw, &d) })
	assert.Equal(t, []byte{8, 0, 0, 4, 4, 4, 4, 4, 4}, b)

	s.AdditionalUV = 5
	fw := parse.NewBinaryWriter(&limitWriter{n: 100})
	require.True(t, writeSettings(fw, &s))
	assert.ErrorIs(t, fw.Err(), ErrCorruptHeader)
}
