package pmx

import (
	"bytes"
	"io"

	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
	"github.com/mmdformats/pmxfile/errors"
)

// Decoder decodes a stream of bytes into a pmxfile.Document.
type Decoder struct {
	// If IgnoreTrailing is true, then the decoder stops after the joint list
	// without checking the stream for remaining data.
	IgnoreTrailing bool
}

// Decode reads data from r and decodes it into a document according to the
// PMX format. warn contains non-fatal problems encountered while decoding. On
// error, no document is returned.
func (d Decoder) Decode(r io.Reader) (doc *pmxfile.Document, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}

	fr := parse.NewBinaryReader(r)
	doc, warn, err = d.decode(fr)
	if err != nil {
		return nil, warn, err
	}

	if !d.IgnoreTrailing {
		// Version 2.1 soft bodies, or anything else that follows, are
		// skipped.
		offset := fr.N()
		n, err := io.Copy(io.Discard, r)
		if err != nil {
			return nil, warn, DataError{Offset: offset + n, Cause: err}
		}
		if n > 0 {
			warn = errors.Union(warn, TrailingWarning{Offset: offset, Length: n})
		}
	}

	return doc, warn, nil
}

// decodeError returns the error recorded by fr after adding err to it, wrapped
// in a DataError. If section is not empty, the cause is wrapped in a
// SectionError. An exhausted stream is reported as io.ErrUnexpectedEOF.
func decodeError(fr *parse.BinaryReader, section string, index int, err error) error {
	fr.Add(0, err)
	err = fr.Err()
	if err == nil {
		return nil
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if section != "" {
		err = SectionError{Section: section, Index: index, Cause: err}
	}
	return DataError{Offset: fr.N(), Cause: err}
}

// decodeList reads a list section into list. On failure, the error names the
// row that failed, or -1 if the count could not be read.
func decodeList[T any](fr *parse.BinaryReader, section string, list *[]T, read func(*T) bool) error {
	l, failed := readList(fr, read)
	if failed {
		index := len(l)
		if l == nil {
			index = -1
		}
		return decodeError(fr, section, index, nil)
	}
	*list = l
	return nil
}

func (d Decoder) decode(fr *parse.BinaryReader) (doc *pmxfile.Document, warn, err error) {
	var warns errors.Errors
	doc = &pmxfile.Document{}

	// Check signature.
	magic := make([]byte, len(Magic))
	if fr.Bytes(magic) {
		return nil, nil, decodeError(fr, "", 0, nil)
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return nil, nil, decodeError(fr, "", 0, ErrInvalidMagic)
	}

	// Check version.
	if fr.Number(&doc.Version) {
		return nil, nil, decodeError(fr, "header", -1, nil)
	}
	if doc.Version != Version20 && doc.Version != Version21 {
		return nil, nil, decodeError(fr, "header", -1, ErrUnrecognizedVersion(doc.Version))
	}

	ext, failed := readSettings(fr, &doc.Settings)
	if failed {
		return nil, nil, decodeError(fr, "settings", -1, nil)
	}
	if len(ext) > 0 {
		warns = append(warns, ExtensionWarning{Bytes: ext})
	}
	for _, kind := range pmxfile.IndexKinds() {
		if size := doc.Settings.IndexSize(kind); !pmxfile.ValidIndexSize(size) {
			warns = append(warns, IndexSizeWarning{Kind: kind, Size: size})
		}
	}

	s := &doc.Settings
	if readText(fr, s.Encoding, &doc.Name) ||
		readText(fr, s.Encoding, &doc.EnglishName) ||
		readText(fr, s.Encoding, &doc.Comment) ||
		readText(fr, s.Encoding, &doc.EnglishComment) {
		return nil, warns.Return(), decodeError(fr, "header", -1, nil)
	}

	if err = decodeList(fr, "vertices", &doc.Vertices, func(v *pmxfile.Vertex) bool {
		return readVertex(fr, s, v)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "faces", &doc.Indices, func(i *int32) bool {
		return readIndex(fr, s.VertexIndexSize, i)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "textures", &doc.Textures, func(t *string) bool {
		return readText(fr, s.Encoding, t)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "materials", &doc.Materials, func(m *pmxfile.Material) bool {
		return readMaterial(fr, s, m)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "bones", &doc.Bones, func(b *pmxfile.Bone) bool {
		return readBone(fr, s, b)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "morphs", &doc.Morphs, func(m *pmxfile.Morph) bool {
		return readMorph(fr, s, m)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "frames", &doc.Frames, func(f *pmxfile.Frame) bool {
		return readFrame(fr, s, f)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "rigid bodies", &doc.RigidBodies, func(b *pmxfile.RigidBody) bool {
		return readRigidBody(fr, s, b)
	}); err != nil {
		return nil, warns.Return(), err
	}
	if err = decodeList(fr, "joints", &doc.Joints, func(j *pmxfile.Joint) bool {
		return readJoint(fr, s, j)
	}); err != nil {
		return nil, warns.Return(), err
	}

	return doc, warns.Return(), nil
}
