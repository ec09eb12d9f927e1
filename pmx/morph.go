package pmx

import (
	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

func readMorph(fr *parse.BinaryReader, s *pmxfile.Settings, m *pmxfile.Morph) (failed bool) {
	if readText(fr, s.Encoding, &m.Name) ||
		readText(fr, s.Encoding, &m.EnglishName) ||
		fr.Number((*uint8)(&m.Category)) ||
		fr.Number((*uint8)(&m.Type)) {
		return true
	}

	switch {
	case m.Type == pmxfile.MorphGroup:
		m.GroupOffsets, failed = readList(fr, func(o *pmxfile.GroupOffset) bool {
			return readIndex(fr, s.MorphIndexSize, &o.Morph) || fr.Number(&o.Weight)
		})
	case m.Type == pmxfile.MorphVertex:
		m.VertexOffsets, failed = readList(fr, func(o *pmxfile.VertexOffset) bool {
			return readIndex(fr, s.VertexIndexSize, &o.Vertex) || readFloats(fr, o.Position[:])
		})
	case m.Type == pmxfile.MorphBone:
		m.BoneOffsets, failed = readList(fr, func(o *pmxfile.BoneOffset) bool {
			return readIndex(fr, s.BoneIndexSize, &o.Bone) ||
				readFloats(fr, o.Translation[:]) ||
				readFloats(fr, o.Rotation[:])
		})
	case m.Type.IsUV():
		m.UVOffsets, failed = readList(fr, func(o *pmxfile.UVOffset) bool {
			return readIndex(fr, s.VertexIndexSize, &o.Vertex) || readFloats(fr, o.Offset[:])
		})
	case m.Type == pmxfile.MorphMaterial:
		m.MaterialOffsets, failed = readList(fr, func(o *pmxfile.MaterialOffset) bool {
			return readMaterialOffset(fr, s, o)
		})
	case m.Type == pmxfile.MorphFlip:
		m.FlipOffsets, failed = readList(fr, func(o *pmxfile.FlipOffset) bool {
			return readIndex(fr, s.MorphIndexSize, &o.Morph) || fr.Number(&o.Value)
		})
	case m.Type == pmxfile.MorphImpulse:
		m.ImpulseOffsets, failed = readList(fr, func(o *pmxfile.ImpulseOffset) bool {
			return readIndex(fr, s.RigidBodyIndexSize, &o.RigidBody) ||
				fr.Number(&o.Local) ||
				readFloats(fr, o.Velocity[:]) ||
				readFloats(fr, o.Torque[:])
		})
	default:
		return fr.Add(0, ErrUnknownMorphType(m.Type))
	}
	return failed
}

func writeMorph(fw *parse.BinaryWriter, s *pmxfile.Settings, m *pmxfile.Morph) (failed bool) {
	if !m.Type.Valid() {
		return fw.Add(0, ErrUnknownMorphType(m.Type))
	}
	if !m.Consistent() {
		return fw.Add(0, ErrMorphOffsetMismatch)
	}

	if writeText(fw, s.Encoding, m.Name) ||
		writeText(fw, s.Encoding, m.EnglishName) ||
		fw.Number(uint8(m.Category)) ||
		fw.Number(uint8(m.Type)) {
		return true
	}

	switch {
	case m.Type == pmxfile.MorphGroup:
		_, failed = writeList(fw, m.GroupOffsets, func(o *pmxfile.GroupOffset) bool {
			return writeIndex(fw, s.MorphIndexSize, o.Morph) || fw.Number(o.Weight)
		})
	case m.Type == pmxfile.MorphVertex:
		_, failed = writeList(fw, m.VertexOffsets, func(o *pmxfile.VertexOffset) bool {
			return writeIndex(fw, s.VertexIndexSize, o.Vertex) || writeFloats(fw, o.Position[:])
		})
	case m.Type == pmxfile.MorphBone:
		_, failed = writeList(fw, m.BoneOffsets, func(o *pmxfile.BoneOffset) bool {
			return writeIndex(fw, s.BoneIndexSize, o.Bone) ||
				writeFloats(fw, o.Translation[:]) ||
				writeFloats(fw, o.Rotation[:])
		})
	case m.Type.IsUV():
		_, failed = writeList(fw, m.UVOffsets, func(o *pmxfile.UVOffset) bool {
			return writeIndex(fw, s.VertexIndexSize, o.Vertex) || writeFloats(fw, o.Offset[:])
		})
	case m.Type == pmxfile.MorphMaterial:
		_, failed = writeList(fw, m.MaterialOffsets, func(o *pmxfile.MaterialOffset) bool {
			return writeMaterialOffset(fw, s, o)
		})
	case m.Type == pmxfile.MorphFlip:
		_, failed = writeList(fw, m.FlipOffsets, func(o *pmxfile.FlipOffset) bool {
			return writeIndex(fw, s.MorphIndexSize, o.Morph) || fw.Number(o.Value)
		})
	case m.Type == pmxfile.MorphImpulse:
		_, failed = writeList(fw, m.ImpulseOffsets, func(o *pmxfile.ImpulseOffset) bool {
			return writeIndex(fw, s.RigidBodyIndexSize, o.RigidBody) ||
				fw.Number(o.Local) ||
				writeFloats(fw, o.Velocity[:]) ||
				writeFloats(fw, o.Torque[:])
		})
	}
	return failed
}

func readMaterialOffset(fr *parse.BinaryReader, s *pmxfile.Settings, o *pmxfile.MaterialOffset) (failed bool) {
	return readIndex(fr, s.MaterialIndexSize, &o.Material) ||
		fr.Number((*uint8)(&o.Operation)) ||
		readFloats(fr, o.Diffuse[:]) ||
		readFloats(fr, o.Specular[:]) ||
		fr.Number(&o.Shininess) ||
		readFloats(fr, o.Ambient[:]) ||
		readFloats(fr, o.EdgeColor[:]) ||
		fr.Number(&o.EdgeSize) ||
		readFloats(fr, o.Texture[:]) ||
		readFloats(fr, o.SphereTexture[:]) ||
		readFloats(fr, o.ToonTexture[:])
}

func writeMaterialOffset(fw *parse.BinaryWriter, s *pmxfile.Settings, o *pmxfile.MaterialOffset) (failed bool) {
	return writeIndex(fw, s.MaterialIndexSize, o.Material) ||
		fw.Number(uint8(o.Operation)) ||
		writeFloats(fw, o.Diffuse[:]) ||
		writeFloats(fw, o.Specular[:]) ||
		fw.Number(o.Shininess) ||
		writeFloats(fw, o.Ambient[:]) ||
		writeFloats(fw, o.EdgeColor[:]) ||
		fw.Number(o.EdgeSize) ||
		writeFloats(fw, o.Texture[:]) ||
		writeFloats(fw, o.SphereTexture[:]) ||
		writeFloats(fw, o.ToonTexture[:])
}
