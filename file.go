// The pmxfile package handles the in-memory representation of PMX model
// documents: polygon meshes with skinning, materials, skeletons, morphs,
// display frames, and rigid-body physics.
//
// A document begins with a Document struct. A Document owns every entity it
// contains; entities refer to each other only through integer indices into
// sibling lists, which are never resolved or validated by this package.
//
// Documents can be decoded from and encoded to the binary PMX format with the
// "pmx" sub-package. The "glb" sub-package exports the mesh portion of a
// document as glTF.
package pmxfile

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////

// Document represents the contents of a single PMX file.
type Document struct {
	// Version is the format version of the document, either 2.0 or 2.1.
	Version float32

	// Settings controls text encoding and index widths of the encoded form.
	Settings Settings

	Name           string
	EnglishName    string
	Comment        string
	EnglishComment string

	Vertices []Vertex

	// Indices is the flat face list. Every three consecutive entries form a
	// triangle. An entry of -1 refers to no vertex.
	Indices []int32

	// Textures is a list of texture paths, referred to by materials.
	Textures []string

	Materials   []Material
	Bones       []Bone
	Morphs      []Morph
	Frames      []Frame
	RigidBodies []RigidBody
	Joints      []Joint

	// SoftBodies is declared for 2.1 documents, but is never populated by
	// decoding, and encoding fails if it is not empty.
	SoftBodies []SoftBody
}

// Count returns the number of rows in the list addressed by indices of the
// given kind.
func (d *Document) Count(kind IndexKind) int {
	switch kind {
	case IndexVertex:
		return len(d.Vertices)
	case IndexTexture:
		return len(d.Textures)
	case IndexMaterial:
		return len(d.Materials)
	case IndexBone:
		return len(d.Bones)
	case IndexMorph:
		return len(d.Morphs)
	case IndexRigidBody:
		return len(d.RigidBodies)
	}
	return 0
}

// FitIndexSizes sets every index width in the document's settings to the
// smallest width that can address the corresponding list.
func (d *Document) FitIndexSizes() {
	for _, kind := range IndexKinds() {
		d.Settings.SetIndexSize(kind, IndexSizeFor(d.Count(kind)))
	}
}

// MaterialFaces partitions Indices by the IndexCount of each material, in
// material order. The returned slices share memory with Indices.
func (d *Document) MaterialFaces() ([][]int32, error) {
	faces := make([][]int32, len(d.Materials))
	offset := 0
	for i, m := range d.Materials {
		n := int(m.IndexCount)
		if n < 0 || n%3 != 0 {
			return nil, fmt.Errorf("material #%d: invalid index count %d", i, m.IndexCount)
		}
		if offset+n > len(d.Indices) {
			return nil, fmt.Errorf("material #%d: index count %d overruns face list (%d remaining)", i, n, len(d.Indices)-offset)
		}
		faces[i] = d.Indices[offset : offset+n : offset+n]
		offset += n
	}
	return faces, nil
}

////////////////////////////////////////////////////////////////

// Encoding indicates how text is encoded within a document.
type Encoding uint8

const (
	UTF16LE Encoding = 0
	UTF8    Encoding = 1
)

func (e Encoding) String() string {
	switch e {
	case UTF16LE:
		return "UTF-16LE"
	case UTF8:
		return "UTF-8"
	}
	// Any non-zero value is decoded as UTF-8.
	return fmt.Sprintf("UTF-8(%d)", uint8(e))
}

// IndexKind identifies which settings field governs the width of an index.
type IndexKind uint8

const (
	IndexVertex IndexKind = iota
	IndexTexture
	IndexMaterial
	IndexBone
	IndexMorph
	IndexRigidBody
)

var indexKindStrings = map[IndexKind]string{
	IndexVertex:    "vertex",
	IndexTexture:   "texture",
	IndexMaterial:  "material",
	IndexBone:      "bone",
	IndexMorph:     "morph",
	IndexRigidBody: "rigid body",
}

func (k IndexKind) String() string {
	s, ok := indexKindStrings[k]
	if !ok {
		return "Invalid"
	}
	return s
}

// IndexKinds returns every IndexKind, in settings order.
func IndexKinds() []IndexKind {
	return []IndexKind{IndexVertex, IndexTexture, IndexMaterial, IndexBone, IndexMorph, IndexRigidBody}
}

// MaxAdditionalUV is the largest number of additional UV channels a vertex
// can carry.
const MaxAdditionalUV = 4

// Settings is the per-document header that fixes the text encoding and the
// byte width of each kind of index. Widths are 1, 2, or 4.
type Settings struct {
	Encoding Encoding

	// AdditionalUV is the number of additional UV channels stored with each
	// vertex, from 0 to MaxAdditionalUV.
	AdditionalUV uint8

	VertexIndexSize    uint8
	TextureIndexSize   uint8
	MaterialIndexSize  uint8
	BoneIndexSize      uint8
	MorphIndexSize     uint8
	RigidBodyIndexSize uint8
}

// DefaultSettings returns settings with UTF-16LE text, no additional UV
// channels, and 4-byte indices.
func DefaultSettings() Settings {
	return Settings{
		Encoding:           UTF16LE,
		VertexIndexSize:    4,
		TextureIndexSize:   4,
		MaterialIndexSize:  4,
		BoneIndexSize:      4,
		MorphIndexSize:     4,
		RigidBodyIndexSize: 4,
	}
}

// IndexSize returns the width of indices of the given kind.
func (s Settings) IndexSize(kind IndexKind) uint8 {
	switch kind {
	case IndexVertex:
		return s.VertexIndexSize
	case IndexTexture:
		return s.TextureIndexSize
	case IndexMaterial:
		return s.MaterialIndexSize
	case IndexBone:
		return s.BoneIndexSize
	case IndexMorph:
		return s.MorphIndexSize
	case IndexRigidBody:
		return s.RigidBodyIndexSize
	}
	return 0
}

// SetIndexSize sets the width of indices of the given kind.
func (s *Settings) SetIndexSize(kind IndexKind, size uint8) {
	switch kind {
	case IndexVertex:
		s.VertexIndexSize = size
	case IndexTexture:
		s.TextureIndexSize = size
	case IndexMaterial:
		s.MaterialIndexSize = size
	case IndexBone:
		s.BoneIndexSize = size
	case IndexMorph:
		s.MorphIndexSize = size
	case IndexRigidBody:
		s.RigidBodyIndexSize = size
	}
}

// ValidIndexSize returns whether size is a width that can be encoded.
func ValidIndexSize(size uint8) bool {
	return size == 1 || size == 2 || size == 4
}

// IndexSizeFor returns the smallest index width that can address every row of
// a list with count rows without colliding with the absent-index sentinel.
// The last row of such a list is count-1, so a width whose sentinel is count
// still suffices.
func IndexSizeFor(count int) uint8 {
	switch {
	case count <= 0xFF:
		return 1
	case count <= 0xFFFF:
		return 2
	default:
		return 4
	}
}

// ErrIndexSize indicates that an index width cannot address a list.
var ErrIndexSize = errors.New("index size too small")

// CheckIndexSizes verifies that every width in the document's settings is
// valid and large enough to address its list.
func (d *Document) CheckIndexSizes() error {
	for _, kind := range IndexKinds() {
		size := d.Settings.IndexSize(kind)
		if !ValidIndexSize(size) {
			return fmt.Errorf("%s index: invalid size %d", kind, size)
		}
		if need := IndexSizeFor(d.Count(kind)); need > size {
			return fmt.Errorf("%s index: %w: %d rows need %d bytes, have %d", kind, ErrIndexSize, d.Count(kind), need, size)
		}
	}
	return nil
}
