package pmx

import (
	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

func readBone(fr *parse.BinaryReader, s *pmxfile.Settings, b *pmxfile.Bone) (failed bool) {
	if readText(fr, s.Encoding, &b.Name) ||
		readText(fr, s.Encoding, &b.EnglishName) ||
		readFloats(fr, b.Position[:]) ||
		readIndex(fr, s.BoneIndexSize, &b.Parent) ||
		fr.Number(&b.Level) ||
		fr.Number((*uint16)(&b.Flags)) {
		return true
	}

	if b.Flags.HasTailBone() {
		if readIndex(fr, s.BoneIndexSize, &b.TailBone) {
			return true
		}
	} else if readFloats(fr, b.TailOffset[:]) {
		return true
	}

	if b.Flags.HasGrant() {
		if readIndex(fr, s.BoneIndexSize, &b.GrantParent) || fr.Number(&b.GrantWeight) {
			return true
		}
	}
	if b.Flags.HasFixedAxis() {
		if readFloats(fr, b.FixedAxis[:]) {
			return true
		}
	}
	if b.Flags.HasLocalAxis() {
		if readFloats(fr, b.LocalAxisX[:]) || readFloats(fr, b.LocalAxisY[:]) {
			return true
		}
	}
	if b.Flags.HasExternalParent() {
		if fr.Number(&b.ExternalKey) {
			return true
		}
	}
	if b.Flags.HasIK() {
		if readIndex(fr, s.BoneIndexSize, &b.IK.Target) ||
			fr.Number(&b.IK.Loop) ||
			fr.Number(&b.IK.LimitAngle) {
			return true
		}
		b.IK.Links, failed = readList(fr, func(l *pmxfile.IKLink) bool {
			return readIKLink(fr, s, l)
		})
		if failed {
			return true
		}
	}

	return false
}

func writeBone(fw *parse.BinaryWriter, s *pmxfile.Settings, b *pmxfile.Bone) (failed bool) {
	if writeText(fw, s.Encoding, b.Name) ||
		writeText(fw, s.Encoding, b.EnglishName) ||
		writeFloats(fw, b.Position[:]) ||
		writeIndex(fw, s.BoneIndexSize, b.Parent) ||
		fw.Number(b.Level) ||
		fw.Number(uint16(b.Flags)) {
		return true
	}

	if b.Flags.HasTailBone() {
		if writeIndex(fw, s.BoneIndexSize, b.TailBone) {
			return true
		}
	} else if writeFloats(fw, b.TailOffset[:]) {
		return true
	}

	if b.Flags.HasGrant() {
		if writeIndex(fw, s.BoneIndexSize, b.GrantParent) || fw.Number(b.GrantWeight) {
			return true
		}
	}
	if b.Flags.HasFixedAxis() {
		if writeFloats(fw, b.FixedAxis[:]) {
			return true
		}
	}
	if b.Flags.HasLocalAxis() {
		if writeFloats(fw, b.LocalAxisX[:]) || writeFloats(fw, b.LocalAxisY[:]) {
			return true
		}
	}
	if b.Flags.HasExternalParent() {
		if fw.Number(b.ExternalKey) {
			return true
		}
	}
	if b.Flags.HasIK() {
		if writeIndex(fw, s.BoneIndexSize, b.IK.Target) ||
			fw.Number(b.IK.Loop) ||
			fw.Number(b.IK.LimitAngle) {
			return true
		}
		if _, failed = writeList(fw, b.IK.Links, func(l *pmxfile.IKLink) bool {
			return writeIKLink(fw, s, l)
		}); failed {
			return true
		}
	}

	return false
}

func readIKLink(fr *parse.BinaryReader, s *pmxfile.Settings, l *pmxfile.IKLink) (failed bool) {
	if readIndex(fr, s.BoneIndexSize, &l.Bone) || fr.Number(&l.AngleLock) {
		return true
	}
	if l.HasLimits() {
		return readFloats(fr, l.LowerLimit[:]) || readFloats(fr, l.UpperLimit[:])
	}
	return false
}

func writeIKLink(fw *parse.BinaryWriter, s *pmxfile.Settings, l *pmxfile.IKLink) (failed bool) {
	if writeIndex(fw, s.BoneIndexSize, l.Bone) || fw.Number(l.AngleLock) {
		return true
	}
	if l.HasLimits() {
		return writeFloats(fw, l.LowerLimit[:]) || writeFloats(fw, l.UpperLimit[:])
	}
	return false
}
