package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/mmdformats/pmxfile"
	"github.com/mmdformats/pmxfile/pmx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *pmxfile.Document {
	return &pmxfile.Document{
		Version:  pmx.Version20,
		Settings: pmxfile.DefaultSettings(),
		Name:     "stat",
		Vertices: []pmxfile.Vertex{
			{Skinning: pmxfile.BDEF1{Bone: 0}},
			{Skinning: pmxfile.BDEF1{Bone: 0}},
			{Skinning: pmxfile.SDEF{Bones: [2]int32{0, 1}}},
		},
		Indices:   []int32{0, 1, 2},
		Materials: []pmxfile.Material{{SharedToon: 1, IndexCount: 3}, {Texture: -1}},
		Bones: []pmxfile.Bone{
			{Name: "root", Parent: -1},
			{Name: "ik", Parent: 0, Flags: pmxfile.BoneIK, IK: pmxfile.IK{Target: 0}},
		},
		Morphs: []pmxfile.Morph{{Type: pmxfile.MorphVertex}, {Type: pmxfile.MorphVertex}, {Type: pmxfile.MorphFlip}},
	}
}

func encode(t *testing.T, doc *pmxfile.Document) []byte {
	var buf bytes.Buffer
	require.NoError(t, pmx.Serialize(&buf, doc))
	return buf.Bytes()
}

func TestCompute(t *testing.T) {
	b := encode(t, testDocument())
	s := Compute(b)
	assert.Empty(t, s.Error)
	assert.Empty(t, s.Warnings)
	assert.Equal(t, len(b), s.Size)
	assert.Equal(t, "stat", s.Name)
	assert.Equal(t, "UTF-16LE", s.Settings.Encoding)
	assert.Equal(t, 4, s.Settings.IndexSizes["rigid body"])
	assert.Equal(t, 3, s.Counts["Vertices"])
	assert.Equal(t, 1, s.Counts["Faces"])
	assert.Equal(t, map[string]int{"BDEF1": 2, "SDEF": 1}, s.SkinningCount)
	assert.Equal(t, map[string]int{"Vertex": 2, "Flip": 1}, s.MorphTypeCount)
	assert.Equal(t, 1, s.IKBoneCount)
	assert.Equal(t, 1, s.SharedToonCount)

	assert.Len(t, s.Digests.Input, 64)
	assert.Equal(t, s.Digests.Input, s.Digests.Canonical)
	assert.Equal(t, "exact", s.RoundTrip)
}

func TestComputeDiffers(t *testing.T) {
	b := encode(t, testDocument())
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(pmx.Version21))
	b = append(b, 0, 0, 0, 0)

	s := Compute(b)
	assert.Empty(t, s.Error)
	assert.Len(t, s.Warnings, 2)
	assert.Equal(t, pmx.Version21, s.Version)
	assert.NotEqual(t, s.Digests.Input, s.Digests.Canonical)
	assert.Equal(t, "differs", s.RoundTrip)
}

func TestComputeError(t *testing.T) {
	s := Compute([]byte("PMD data"))
	assert.NotEmpty(t, s.Error)
	assert.Empty(t, s.RoundTrip)
	assert.Empty(t, s.Digests.Canonical)
	assert.Len(t, s.Digests.Input, 64)
}
