package pmx

import (
	"io"

	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
	"github.com/mmdformats/pmxfile/errors"
)

// Encoder encodes a pmxfile.Document into a stream of bytes.
//
// The encoder always writes version 2.0 with exactly eight settings fields.
// Text is encoded according to the document's settings.
type Encoder struct{}

// Encode formats doc according to the PMX format, and writes it to w. warn
// contains non-fatal problems encountered while encoding.
func (e Encoder) Encode(w io.Writer, doc *pmxfile.Document) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	if doc == nil {
		return nil, errors.New("nil document")
	}
	if len(doc.SoftBodies) > 0 {
		return nil, SectionError{Section: "soft bodies", Index: -1, Cause: ErrNotImplemented}
	}

	var warns errors.Errors
	if doc.Version != 0 && doc.Version != Version20 {
		warns = append(warns, VersionWarning{Version: doc.Version})
	}

	fw := parse.NewBinaryWriter(w)
	err = e.encode(fw, doc)
	return warns.Return(), err
}

// encodeError returns the error recorded by fw after adding err to it, wrapped
// in a DataError.
func encodeError(fw *parse.BinaryWriter, section string, index int, err error) error {
	fw.Add(0, err)
	n, err := fw.End()
	if err == nil {
		return nil
	}
	if section != "" {
		err = SectionError{Section: section, Index: index, Cause: err}
	}
	return DataError{Offset: n, Cause: err}
}

func encodeList[T any](fw *parse.BinaryWriter, section string, list []T, write func(*T) bool) error {
	if index, failed := writeList(fw, list, write); failed {
		return encodeError(fw, section, index, nil)
	}
	return nil
}

func (e Encoder) encode(fw *parse.BinaryWriter, doc *pmxfile.Document) (err error) {
	if fw.Bytes([]byte(Magic)) || fw.Number(Version20) {
		return encodeError(fw, "header", -1, nil)
	}

	s := &doc.Settings
	if writeSettings(fw, s) {
		return encodeError(fw, "settings", -1, nil)
	}

	if writeText(fw, s.Encoding, doc.Name) ||
		writeText(fw, s.Encoding, doc.EnglishName) ||
		writeText(fw, s.Encoding, doc.Comment) ||
		writeText(fw, s.Encoding, doc.EnglishComment) {
		return encodeError(fw, "header", -1, nil)
	}

	if err = encodeList(fw, "vertices", doc.Vertices, func(v *pmxfile.Vertex) bool {
		return writeVertex(fw, s, v)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "faces", doc.Indices, func(i *int32) bool {
		return writeIndex(fw, s.VertexIndexSize, *i)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "textures", doc.Textures, func(t *string) bool {
		return writeText(fw, s.Encoding, *t)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "materials", doc.Materials, func(m *pmxfile.Material) bool {
		return writeMaterial(fw, s, m)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "bones", doc.Bones, func(b *pmxfile.Bone) bool {
		return writeBone(fw, s, b)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "morphs", doc.Morphs, func(m *pmxfile.Morph) bool {
		return writeMorph(fw, s, m)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "frames", doc.Frames, func(f *pmxfile.Frame) bool {
		return writeFrame(fw, s, f)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "rigid bodies", doc.RigidBodies, func(b *pmxfile.RigidBody) bool {
		return writeRigidBody(fw, s, b)
	}); err != nil {
		return err
	}
	if err = encodeList(fw, "joints", doc.Joints, func(j *pmxfile.Joint) bool {
		return writeJoint(fw, s, j)
	}); err != nil {
		return err
	}

	return encodeError(fw, "", 0, nil)
}
