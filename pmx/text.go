package pmx

import (
	"github.com/mmdformats/pmxfile"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// textEncoding returns the converter for a settings encoding tag. Zero is
// UTF-16LE; every other value is UTF-8.
func textEncoding(enc pmxfile.Encoding) encoding.Encoding {
	if enc == pmxfile.UTF16LE {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF8
}

// decodeText converts encoded bytes to a string. A trailing odd byte of
// UTF-16LE text is not part of any code unit and is dropped.
func decodeText(enc pmxfile.Encoding, b []byte) (string, error) {
	if enc == pmxfile.UTF16LE {
		b = b[:len(b)&^1]
	}
	s, err := textEncoding(enc).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// encodeText converts a string to encoded bytes.
func encodeText(enc pmxfile.Encoding, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return textEncoding(enc).NewEncoder().Bytes([]byte(s))
}
