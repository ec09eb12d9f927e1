package pmxfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSizeFor(t *testing.T) {
	for count, want := range map[int]uint8{
		0:       1,
		1:       1,
		254:     1,
		255:     1,
		256:     2,
		65534:   2,
		65535:   2,
		65536:   4,
		1 << 20: 4,
	} {
		assert.Equal(t, want, IndexSizeFor(count), "count %d", count)
	}
}

func TestSettingsIndexSize(t *testing.T) {
	var s Settings
	for i, kind := range IndexKinds() {
		s.SetIndexSize(kind, uint8(i+1))
	}
	assert.Equal(t, Settings{
		VertexIndexSize:    1,
		TextureIndexSize:   2,
		MaterialIndexSize:  3,
		BoneIndexSize:      4,
		MorphIndexSize:     5,
		RigidBodyIndexSize: 6,
	}, s)
	for i, kind := range IndexKinds() {
		assert.Equal(t, uint8(i+1), s.IndexSize(kind), kind.String())
	}
	assert.Zero(t, s.IndexSize(IndexKind(99)))
	assert.Equal(t, "Invalid", IndexKind(99).String())
}

func TestFitIndexSizes(t *testing.T) {
	doc := &Document{
		Settings:  DefaultSettings(),
		Vertices:  make([]Vertex, 300),
		Textures:  make([]string, 2),
		Bones:     make([]Bone, 70000),
		Morphs:    make([]Morph, 256),
		Materials: make([]Material, 255),
	}
	doc.FitIndexSizes()
	assert.Equal(t, Settings{
		Encoding:           UTF16LE,
		VertexIndexSize:    2,
		TextureIndexSize:   1,
		MaterialIndexSize:  1,
		BoneIndexSize:      4,
		MorphIndexSize:     2,
		RigidBodyIndexSize: 1,
	}, doc.Settings)
	assert.NoError(t, doc.CheckIndexSizes())
}

func TestCheckIndexSizes(t *testing.T) {
	doc := &Document{Settings: DefaultSettings(), Bones: make([]Bone, 300)}
	require.NoError(t, doc.CheckIndexSizes())

	doc.Settings.BoneIndexSize = 1
	err := doc.CheckIndexSizes()
	assert.True(t, errors.Is(err, ErrIndexSize))

	// The highest row of a 255-row list is 254, which does not collide with
	// the 1-byte sentinel.
	doc.Bones = make([]Bone, 255)
	assert.NoError(t, doc.CheckIndexSizes())
	doc.Bones = make([]Bone, 256)
	assert.True(t, errors.Is(doc.CheckIndexSizes(), ErrIndexSize))

	doc.Settings.BoneIndexSize = 2
	doc.Bones = make([]Bone, 65535)
	assert.NoError(t, doc.CheckIndexSizes())

	doc.Settings.BoneIndexSize = 3
	err = doc.CheckIndexSizes()
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrIndexSize))
}

func TestMaterialFaces(t *testing.T) {
	doc := &Document{
		Indices: []int32{0, 1, 2, 2, 1, 3, 4, 5, 6, 7, 8, 9},
		Materials: []Material{
			{IndexCount: 6},
			{IndexCount: 0},
			{IndexCount: 3},
		},
	}
	faces, err := doc.MaterialFaces()
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{0, 1, 2, 2, 1, 3}, {}, {4, 5, 6}}, faces)

	// Appending to a partition does not overwrite the next one.
	_ = append(faces[0], 100)
	assert.Equal(t, int32(4), doc.Indices[6])

	doc.Materials[2].IndexCount = 9
	_, err = doc.MaterialFaces()
	assert.Error(t, err)

	doc.Materials[2].IndexCount = 4
	_, err = doc.MaterialFaces()
	assert.Error(t, err)

	doc.Materials[2].IndexCount = -3
	_, err = doc.MaterialFaces()
	assert.Error(t, err)
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "UTF-16LE", UTF16LE.String())
	assert.Equal(t, "UTF-8", UTF8.String())
	assert.Equal(t, "UTF-8(3)", Encoding(3).String())
}
