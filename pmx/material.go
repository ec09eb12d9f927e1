package pmx

import (
	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

func readMaterial(fr *parse.BinaryReader, s *pmxfile.Settings, m *pmxfile.Material) (failed bool) {
	if readText(fr, s.Encoding, &m.Name) ||
		readText(fr, s.Encoding, &m.EnglishName) ||
		readFloats(fr, m.Diffuse[:]) ||
		readFloats(fr, m.Specular[:]) ||
		fr.Number(&m.Shininess) ||
		readFloats(fr, m.Ambient[:]) ||
		fr.Number((*uint8)(&m.Flags)) ||
		readFloats(fr, m.EdgeColor[:]) ||
		fr.Number(&m.EdgeSize) ||
		readIndex(fr, s.TextureIndexSize, &m.Texture) ||
		readIndex(fr, s.TextureIndexSize, &m.SphereTexture) ||
		fr.Number((*uint8)(&m.SphereMode)) ||
		fr.Number(&m.SharedToon) {
		return true
	}

	// A shared toon is a one-byte palette entry regardless of the texture
	// index width.
	if m.UsesSharedToon() {
		var toon uint8
		if fr.Number(&toon) {
			return true
		}
		m.ToonTexture = int32(toon)
	} else if readIndex(fr, s.TextureIndexSize, &m.ToonTexture) {
		return true
	}

	return readText(fr, s.Encoding, &m.Memo) || fr.Number(&m.IndexCount)
}

func writeMaterial(fw *parse.BinaryWriter, s *pmxfile.Settings, m *pmxfile.Material) (failed bool) {
	if writeText(fw, s.Encoding, m.Name) ||
		writeText(fw, s.Encoding, m.EnglishName) ||
		writeFloats(fw, m.Diffuse[:]) ||
		writeFloats(fw, m.Specular[:]) ||
		fw.Number(m.Shininess) ||
		writeFloats(fw, m.Ambient[:]) ||
		fw.Number(uint8(m.Flags)) ||
		writeFloats(fw, m.EdgeColor[:]) ||
		fw.Number(m.EdgeSize) ||
		writeIndex(fw, s.TextureIndexSize, m.Texture) ||
		writeIndex(fw, s.TextureIndexSize, m.SphereTexture) ||
		fw.Number(uint8(m.SphereMode)) ||
		fw.Number(m.SharedToon) {
		return true
	}

	if m.UsesSharedToon() {
		if fw.Number(uint8(m.ToonTexture)) {
			return true
		}
	} else if writeIndex(fw, s.TextureIndexSize, m.ToonTexture) {
		return true
	}

	return writeText(fw, s.Encoding, m.Memo) || fw.Number(m.IndexCount)
}
