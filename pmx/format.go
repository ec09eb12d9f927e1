// Package pmx implements a decoder and encoder for the binary PMX model
// format.
//
// The easiest way to decode and encode files is through the Deserialize and
// Serialize functions. These decode and encode directly between byte streams
// and Document structures specified by the pmxfile package. Decoder and
// Encoder additionally report non-fatal warnings, such as settings extension
// bytes that were dropped, or trailing data after the last section.
//
// The format is little-endian throughout. A file begins with the magic "PMX ",
// a float32 version, and a settings block that fixes the text encoding and
// the byte width of every kind of index for the remainder of the file. Eight
// count-prefixed lists follow a four-field text header: vertices, face
// indices, textures, materials, bones, morphs, display frames, rigid bodies,
// and joints.
package pmx

import (
	"io"

	"github.com/mmdformats/pmxfile"
)

// Magic is the signature of a PMX file.
const Magic = "PMX "

const (
	// Version20 is the only version written by the encoder.
	Version20 float32 = 2.0
	// Version21 is accepted by the decoder. Its soft-body section is not
	// read.
	Version21 float32 = 2.1
)

// settingsFieldCount is the number of settings fields this codec interprets.
const settingsFieldCount = 8

// Deserialize decodes a document from r. Warnings are discarded.
func Deserialize(r io.Reader) (doc *pmxfile.Document, err error) {
	doc, _, err = Decoder{}.Decode(r)
	return doc, err
}

// Serialize encodes doc to w. Warnings are discarded.
func Serialize(w io.Writer, doc *pmxfile.Document) (err error) {
	_, err = Encoder{}.Encode(w, doc)
	return err
}
