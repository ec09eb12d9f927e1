package main

import (
	"bytes"
	"encoding/hex"

	"github.com/mmdformats/pmxfile"
	"github.com/mmdformats/pmxfile/internal/cli"
	"github.com/mmdformats/pmxfile/pmx"
	"golang.org/x/crypto/blake2b"
)

// Settings is the readable form of the settings of a document.
type Settings struct {
	Encoding     string
	AdditionalUV int
	IndexSizes   map[string]int
}

// Digests holds blake2b-256 digests of the input, and of the document
// re-encoded by this package.
type Digests struct {
	Input     string
	Canonical string `json:",omitempty"`
}

type Stats struct {
	// Size of the input, in bytes.
	Size int

	Version  float32
	Settings Settings

	Name        string
	EnglishName string

	// Number of rows per list.
	Counts map[string]int

	// Number of vertices per skinning variant.
	SkinningCount map[string]int

	// Number of morphs per type.
	MorphTypeCount map[string]int

	// Number of bones with an IK block.
	IKBoneCount int

	// Number of materials using the shared toon palette.
	SharedToonCount int

	Warnings []string `json:",omitempty"`
	Error    string   `json:",omitempty"`

	Digests Digests

	// RoundTrip is "exact" when re-encoding the document reproduces the
	// input, and "differs" otherwise.
	RoundTrip string `json:",omitempty"`
}

// Compute decodes b and fills the stats of the result. Decoding and encoding
// errors are recorded in the stats.
func Compute(b []byte) Stats {
	var s Stats
	s.Size = len(b)
	s.Digests.Input = digest(b)

	doc, warn, err := pmx.Decoder{}.Decode(bytes.NewReader(b))
	for _, w := range cli.Warnings(warn) {
		s.Warnings = append(s.Warnings, w.Error())
	}
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Fill(doc)

	var buf bytes.Buffer
	warn, err = pmx.Encoder{}.Encode(&buf, doc)
	for _, w := range cli.Warnings(warn) {
		s.Warnings = append(s.Warnings, w.Error())
	}
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Digests.Canonical = digest(buf.Bytes())
	if bytes.Equal(b, buf.Bytes()) {
		s.RoundTrip = "exact"
	} else {
		s.RoundTrip = "differs"
	}
	return s
}

func digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Fill sets the stats derived from the content of doc.
func (s *Stats) Fill(doc *pmxfile.Document) {
	if doc == nil {
		return
	}

	s.Version = doc.Version
	s.Name = doc.Name
	s.EnglishName = doc.EnglishName
	s.Settings = Settings{
		Encoding:     doc.Settings.Encoding.String(),
		AdditionalUV: int(doc.Settings.AdditionalUV),
		IndexSizes:   map[string]int{},
	}
	for _, kind := range pmxfile.IndexKinds() {
		s.Settings.IndexSizes[kind.String()] = int(doc.Settings.IndexSize(kind))
	}

	s.Counts = map[string]int{
		"Vertices":    len(doc.Vertices),
		"Faces":       len(doc.Indices) / 3,
		"Textures":    len(doc.Textures),
		"Materials":   len(doc.Materials),
		"Bones":       len(doc.Bones),
		"Morphs":      len(doc.Morphs),
		"Frames":      len(doc.Frames),
		"RigidBodies": len(doc.RigidBodies),
		"Joints":      len(doc.Joints),
	}

	s.SkinningCount = map[string]int{}
	for _, v := range doc.Vertices {
		if v.Skinning == nil {
			continue
		}
		s.SkinningCount[v.Skinning.Type().String()]++
	}

	s.MorphTypeCount = map[string]int{}
	for _, m := range doc.Morphs {
		s.MorphTypeCount[m.Type.String()]++
	}

	s.IKBoneCount = 0
	for _, b := range doc.Bones {
		if b.Flags.HasIK() {
			s.IKBoneCount++
		}
	}

	s.SharedToonCount = 0
	for i := range doc.Materials {
		if doc.Materials[i].UsesSharedToon() {
			s.SharedToonCount++
		}
	}
}
