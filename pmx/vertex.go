package pmx

import (
	"fmt"

	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

func readVertex(fr *parse.BinaryReader, s *pmxfile.Settings, v *pmxfile.Vertex) (failed bool) {
	if readFloats(fr, v.Position[:]) || readFloats(fr, v.Normal[:]) || readFloats(fr, v.UV[:]) {
		return true
	}
	for i := 0; i < int(s.AdditionalUV); i++ {
		if readFloats(fr, v.AdditionalUV[i][:]) {
			return true
		}
	}

	var tag uint8
	if fr.Number(&tag) {
		return true
	}
	if v.Skinning, failed = readSkinning(fr, s, pmxfile.SkinningType(tag)); failed {
		return true
	}

	return fr.Number(&v.EdgeScale)
}

func writeVertex(fw *parse.BinaryWriter, s *pmxfile.Settings, v *pmxfile.Vertex) (failed bool) {
	if writeFloats(fw, v.Position[:]) || writeFloats(fw, v.Normal[:]) || writeFloats(fw, v.UV[:]) {
		return true
	}
	for i := 0; i < int(s.AdditionalUV); i++ {
		if writeFloats(fw, v.AdditionalUV[i][:]) {
			return true
		}
	}

	if writeSkinning(fw, s, v.Skinning) {
		return true
	}

	return fw.Number(v.EdgeScale)
}

////////////////////////////////////////////////////////////////

func readBones(fr *parse.BinaryReader, s *pmxfile.Settings, bones []int32) (failed bool) {
	for i := range bones {
		if readIndex(fr, s.BoneIndexSize, &bones[i]) {
			return true
		}
	}
	return false
}

func writeBones(fw *parse.BinaryWriter, s *pmxfile.Settings, bones []int32) (failed bool) {
	for _, bone := range bones {
		if writeIndex(fw, s.BoneIndexSize, bone) {
			return true
		}
	}
	return false
}

// readSkinning reads the variant selected by tag, which has already been
// consumed.
func readSkinning(fr *parse.BinaryReader, s *pmxfile.Settings, tag pmxfile.SkinningType) (k pmxfile.Skinning, failed bool) {
	switch tag {
	case pmxfile.SkinningBDEF1:
		var v pmxfile.BDEF1
		failed = readIndex(fr, s.BoneIndexSize, &v.Bone)
		return v, failed
	case pmxfile.SkinningBDEF2:
		var v pmxfile.BDEF2
		failed = readBones(fr, s, v.Bones[:]) || fr.Number(&v.Weight)
		return v, failed
	case pmxfile.SkinningBDEF4:
		var v pmxfile.BDEF4
		failed = readBones(fr, s, v.Bones[:]) || readFloats(fr, v.Weights[:])
		return v, failed
	case pmxfile.SkinningSDEF:
		var v pmxfile.SDEF
		failed = readBones(fr, s, v.Bones[:]) ||
			fr.Number(&v.Weight) ||
			readFloats(fr, v.C[:]) ||
			readFloats(fr, v.R0[:]) ||
			readFloats(fr, v.R1[:])
		return v, failed
	case pmxfile.SkinningQDEF:
		var v pmxfile.QDEF
		failed = readBones(fr, s, v.Bones[:]) || readFloats(fr, v.Weights[:])
		return v, failed
	default:
		return nil, fr.Add(0, ErrUnknownSkinning(tag))
	}
}

// writeSkinning writes the tag of the variant followed by its fields.
func writeSkinning(fw *parse.BinaryWriter, s *pmxfile.Settings, k pmxfile.Skinning) (failed bool) {
	switch v := k.(type) {
	case nil:
		return fw.Add(0, ErrNilSkinning)
	case pmxfile.BDEF1:
		return fw.Number(uint8(pmxfile.SkinningBDEF1)) ||
			writeIndex(fw, s.BoneIndexSize, v.Bone)
	case pmxfile.BDEF2:
		return fw.Number(uint8(pmxfile.SkinningBDEF2)) ||
			writeBones(fw, s, v.Bones[:]) ||
			fw.Number(v.Weight)
	case pmxfile.BDEF4:
		return fw.Number(uint8(pmxfile.SkinningBDEF4)) ||
			writeBones(fw, s, v.Bones[:]) ||
			writeFloats(fw, v.Weights[:])
	case pmxfile.SDEF:
		return fw.Number(uint8(pmxfile.SkinningSDEF)) ||
			writeBones(fw, s, v.Bones[:]) ||
			fw.Number(v.Weight) ||
			writeFloats(fw, v.C[:]) ||
			writeFloats(fw, v.R0[:]) ||
			writeFloats(fw, v.R1[:])
	case pmxfile.QDEF:
		return fw.Number(uint8(pmxfile.SkinningQDEF)) ||
			writeBones(fw, s, v.Bones[:]) ||
			writeFloats(fw, v.Weights[:])
	default:
		return fw.Add(0, fmt.Errorf("unsupported skinning value %T", k))
	}
}
