package pmx

import (
	"fmt"

	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

// readSettings reads the settings block. Fields beyond those interpreted by
// the codec are read and returned as ext.
func readSettings(fr *parse.BinaryReader, s *pmxfile.Settings) (ext []byte, failed bool) {
	var count uint8
	if fr.Number(&count) {
		return nil, true
	}
	if count < settingsFieldCount {
		return nil, fr.Add(0, fmt.Errorf("%w: field count %d is less than %d", ErrCorruptHeader, count, settingsFieldCount))
	}

	var fields [settingsFieldCount]uint8
	if fr.Bytes(fields[:]) {
		return nil, true
	}
	s.Encoding = pmxfile.Encoding(fields[0])
	s.AdditionalUV = fields[1]
	s.VertexIndexSize = fields[2]
	s.TextureIndexSize = fields[3]
	s.MaterialIndexSize = fields[4]
	s.BoneIndexSize = fields[5]
	s.MorphIndexSize = fields[6]
	s.RigidBodyIndexSize = fields[7]

	if s.AdditionalUV > pmxfile.MaxAdditionalUV {
		return nil, fr.Add(0, fmt.Errorf("%w: %d additional UV channels", ErrCorruptHeader, s.AdditionalUV))
	}

	if count > settingsFieldCount {
		ext = make([]byte, count-settingsFieldCount)
		if fr.Bytes(ext) {
			return nil, true
		}
	}

	return ext, false
}

// writeSettings writes the settings block. Exactly the interpreted fields are
// written.
func writeSettings(fw *parse.BinaryWriter, s *pmxfile.Settings) (failed bool) {
	if s.AdditionalUV > pmxfile.MaxAdditionalUV {
		return fw.Add(0, fmt.Errorf("%w: %d additional UV channels", ErrCorruptHeader, s.AdditionalUV))
	}
	return fw.Number(uint8(settingsFieldCount)) ||
		fw.Bytes([]byte{
			uint8(s.Encoding),
			s.AdditionalUV,
			s.VertexIndexSize,
			s.TextureIndexSize,
			s.MaterialIndexSize,
			s.BoneIndexSize,
			s.MorphIndexSize,
			s.RigidBodyIndexSize,
		})
}
