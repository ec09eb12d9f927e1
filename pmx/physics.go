package pmx

import (
	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

func readRigidBody(fr *parse.BinaryReader, s *pmxfile.Settings, b *pmxfile.RigidBody) (failed bool) {
	return readText(fr, s.Encoding, &b.Name) ||
		readText(fr, s.Encoding, &b.EnglishName) ||
		readIndex(fr, s.BoneIndexSize, &b.Bone) ||
		fr.Number(&b.Group) ||
		fr.Number(&b.Mask) ||
		fr.Number((*uint8)(&b.Shape)) ||
		readFloats(fr, b.Size[:]) ||
		readFloats(fr, b.Position[:]) ||
		readFloats(fr, b.Rotation[:]) ||
		fr.Number(&b.Mass) ||
		fr.Number(&b.LinearDamping) ||
		fr.Number(&b.AngularDamping) ||
		fr.Number(&b.Restitution) ||
		fr.Number(&b.Friction) ||
		fr.Number((*uint8)(&b.Mode))
}

func writeRigidBody(fw *parse.BinaryWriter, s *pmxfile.Settings, b *pmxfile.RigidBody) (failed bool) {
	return writeText(fw, s.Encoding, b.Name) ||
		writeText(fw, s.Encoding, b.EnglishName) ||
		writeIndex(fw, s.BoneIndexSize, b.Bone) ||
		fw.Number(b.Group) ||
		fw.Number(b.Mask) ||
		fw.Number(uint8(b.Shape)) ||
		writeFloats(fw, b.Size[:]) ||
		writeFloats(fw, b.Position[:]) ||
		writeFloats(fw, b.Rotation[:]) ||
		fw.Number(b.Mass) ||
		fw.Number(b.LinearDamping) ||
		fw.Number(b.AngularDamping) ||
		fw.Number(b.Restitution) ||
		fw.Number(b.Friction) ||
		fw.Number(uint8(b.Mode))
}

func readJoint(fr *parse.BinaryReader, s *pmxfile.Settings, j *pmxfile.Joint) (failed bool) {
	p := &j.Param
	return readText(fr, s.Encoding, &j.Name) ||
		readText(fr, s.Encoding, &j.EnglishName) ||
		fr.Number((*uint8)(&j.Type)) ||
		readIndex(fr, s.RigidBodyIndexSize, &p.RigidBodyA) ||
		readIndex(fr, s.RigidBodyIndexSize, &p.RigidBodyB) ||
		readFloats(fr, p.Position[:]) ||
		readFloats(fr, p.Rotation[:]) ||
		readFloats(fr, p.LinearLower[:]) ||
		readFloats(fr, p.LinearUpper[:]) ||
		readFloats(fr, p.AngularLower[:]) ||
		readFloats(fr, p.AngularUpper[:]) ||
		readFloats(fr, p.LinearSpring[:]) ||
		readFloats(fr, p.AngularSpring[:])
}

func writeJoint(fw *parse.BinaryWriter, s *pmxfile.Settings, j *pmxfile.Joint) (failed bool) {
	p := &j.Param
	return writeText(fw, s.Encoding, j.Name) ||
		writeText(fw, s.Encoding, j.EnglishName) ||
		fw.Number(uint8(j.Type)) ||
		writeIndex(fw, s.RigidBodyIndexSize, p.RigidBodyA) ||
		writeIndex(fw, s.RigidBodyIndexSize, p.RigidBodyB) ||
		writeFloats(fw, p.Position[:]) ||
		writeFloats(fw, p.Rotation[:]) ||
		writeFloats(fw, p.LinearLower[:]) ||
		writeFloats(fw, p.LinearUpper[:]) ||
		writeFloats(fw, p.AngularLower[:]) ||
		writeFloats(fw, p.AngularUpper[:]) ||
		writeFloats(fw, p.LinearSpring[:]) ||
		writeFloats(fw, p.AngularSpring[:])
}
