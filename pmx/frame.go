package pmx

import (
	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

// frameIndexSize returns the width of an element's index, which depends on
// the element's target.
func frameIndexSize(s *pmxfile.Settings, e *pmxfile.FrameElement) uint8 {
	if e.IsBone() {
		return s.BoneIndexSize
	}
	return s.MorphIndexSize
}

func readFrame(fr *parse.BinaryReader, s *pmxfile.Settings, f *pmxfile.Frame) (failed bool) {
	if readText(fr, s.Encoding, &f.Name) ||
		readText(fr, s.Encoding, &f.EnglishName) ||
		fr.Number(&f.Special) {
		return true
	}
	f.Elements, failed = readList(fr, func(e *pmxfile.FrameElement) bool {
		return fr.Number((*uint8)(&e.Target)) || readIndex(fr, frameIndexSize(s, e), &e.Index)
	})
	return failed
}

func writeFrame(fw *parse.BinaryWriter, s *pmxfile.Settings, f *pmxfile.Frame) (failed bool) {
	if writeText(fw, s.Encoding, f.Name) ||
		writeText(fw, s.Encoding, f.EnglishName) ||
		fw.Number(f.Special) {
		return true
	}
	_, failed = writeList(fw, f.Elements, func(e *pmxfile.FrameElement) bool {
		return fw.Number(uint8(e.Target)) || writeIndex(fw, frameIndexSize(s, e), e.Index)
	})
	return failed
}
