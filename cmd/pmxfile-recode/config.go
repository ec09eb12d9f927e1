package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mmdformats/pmxfile"
)

type fileIndexSizes struct {
	Vertex    int `toml:"vertex"`
	Texture   int `toml:"texture"`
	Material  int `toml:"material"`
	Bone      int `toml:"bone"`
	Morph     int `toml:"morph"`
	RigidBody int `toml:"rigid_body"`
}

type fileProfile struct {
	Encoding      string         `toml:"encoding"`
	FitIndexSizes bool           `toml:"fit_index_sizes"`
	IndexSizes    fileIndexSizes `toml:"index_sizes"`
}

// Profile describes how the settings of a document are changed before it is
// re-encoded. Zero values keep the settings of the source document.
type Profile struct {
	// Encoding, if not nil, replaces the text encoding.
	Encoding *pmxfile.Encoding

	// FitIndexSizes sets every index width to the smallest width that can
	// address its list. It is applied before IndexSizes.
	FitIndexSizes bool

	// IndexSizes holds explicit widths per kind of index.
	IndexSizes map[pmxfile.IndexKind]uint8
}

var encodingNames = map[string]pmxfile.Encoding{
	"utf-16le": pmxfile.UTF16LE,
	"utf-16":   pmxfile.UTF16LE,
	"utf16":    pmxfile.UTF16LE,
	"utf-8":    pmxfile.UTF8,
	"utf8":     pmxfile.UTF8,
}

func loadProfile(path string) (Profile, error) {
	var raw fileProfile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return buildProfile(meta, raw)
}

func parseProfile(data string) (Profile, error) {
	var raw fileProfile
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return buildProfile(meta, raw)
}

func buildProfile(meta toml.MetaData, raw fileProfile) (Profile, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("unknown profile key %q", undecoded[0].String())
	}

	var p Profile
	if meta.IsDefined("encoding") {
		name := strings.ToLower(strings.TrimSpace(raw.Encoding))
		if name != "" {
			enc, ok := encodingNames[name]
			if !ok {
				return Profile{}, fmt.Errorf("unknown encoding %q", raw.Encoding)
			}
			p.Encoding = &enc
		}
	}

	p.FitIndexSizes = raw.FitIndexSizes

	sizes := map[pmxfile.IndexKind]int{
		pmxfile.IndexVertex:    raw.IndexSizes.Vertex,
		pmxfile.IndexTexture:   raw.IndexSizes.Texture,
		pmxfile.IndexMaterial:  raw.IndexSizes.Material,
		pmxfile.IndexBone:      raw.IndexSizes.Bone,
		pmxfile.IndexMorph:     raw.IndexSizes.Morph,
		pmxfile.IndexRigidBody: raw.IndexSizes.RigidBody,
	}
	p.IndexSizes = map[pmxfile.IndexKind]uint8{}
	for kind, size := range sizes {
		switch size {
		case 0:
		case 1, 2, 4:
			p.IndexSizes[kind] = uint8(size)
		default:
			return Profile{}, fmt.Errorf("%s index size %d is not 0, 1, 2, or 4", kind, size)
		}
	}

	return p, nil
}

// Apply changes the settings of doc according to the profile, then verifies
// that every index width can address its list.
func (p Profile) Apply(doc *pmxfile.Document) error {
	if p.Encoding != nil {
		doc.Settings.Encoding = *p.Encoding
	}
	if p.FitIndexSizes {
		doc.FitIndexSizes()
	}
	for kind, size := range p.IndexSizes {
		doc.Settings.SetIndexSize(kind, size)
	}
	return doc.CheckIndexSizes()
}
