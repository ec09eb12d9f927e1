package pmx

import (
	"github.com/anaminus/parse"
	"github.com/mmdformats/pmxfile"
)

// Index value indicating no reference.
const nilIndex = -1

// Largest chunk allocated at once while reading variable-length data, so that
// a corrupt length cannot force a large allocation before the stream runs out.
const readChunkSize = 1 << 16

// Upper bound on the capacity reserved for a list before its rows are read.
const listCapHint = 1 << 12

// readIndex reads an index of the given width. Widths of 1 and 2 map an
// all-ones value to -1. A width of 4 is read verbatim.
func readIndex(fr *parse.BinaryReader, size uint8, data *int32) (failed bool) {
	switch size {
	case 1:
		var v uint8
		if fr.Number(&v) {
			return true
		}
		if v == 0xFF {
			*data = nilIndex
		} else {
			*data = int32(v)
		}
	case 2:
		var v uint16
		if fr.Number(&v) {
			return true
		}
		if v == 0xFFFF {
			*data = nilIndex
		} else {
			*data = int32(v)
		}
	case 4:
		return fr.Number(data)
	default:
		// Settings decoded from a well-formed file never reach this.
		*data = nilIndex
		return fr.Err() != nil
	}
	return false
}

// writeIndex writes an index of the given width. Widths of 1 and 2 write any
// negative value as all-ones. A width of 4 is written verbatim.
func writeIndex(fw *parse.BinaryWriter, size uint8, data int32) (failed bool) {
	switch size {
	case 1:
		if data < 0 {
			return fw.Number(uint8(0xFF))
		}
		return fw.Number(uint8(data))
	case 2:
		if data < 0 {
			return fw.Number(uint16(0xFFFF))
		}
		return fw.Number(uint16(data))
	case 4:
		return fw.Number(data)
	default:
		return fw.Err() != nil
	}
}

// readFloats reads len(v) float32 values into v.
func readFloats(fr *parse.BinaryReader, v []float32) (failed bool) {
	for i := range v {
		if fr.Number(&v[i]) {
			return true
		}
	}
	return false
}

// writeFloats writes each value of v as a float32.
func writeFloats(fw *parse.BinaryWriter, v []float32) (failed bool) {
	for _, f := range v {
		if fw.Number(f) {
			return true
		}
	}
	return false
}

// readLength reads a signed 32-bit length or count, failing if it is
// negative.
func readLength(fr *parse.BinaryReader, n *int) (failed bool) {
	var length int32
	if fr.Number(&length) {
		return true
	}
	if length < 0 {
		return fr.Add(0, ErrNegativeLength)
	}
	*n = int(length)
	return false
}

// readBytes reads n bytes, growing the buffer only as data arrives.
func readBytes(fr *parse.BinaryReader, n int) (b []byte, failed bool) {
	if n <= readChunkSize {
		b = make([]byte, n)
		return b, fr.Bytes(b)
	}
	b = make([]byte, 0, readChunkSize)
	for len(b) < n {
		chunk := min(n-len(b), readChunkSize)
		b = append(b, make([]byte, chunk)...)
		if fr.Bytes(b[len(b)-chunk:]) {
			return nil, true
		}
	}
	return b, false
}

// readText reads length-prefixed text. The length is the number of encoded
// bytes.
func readText(fr *parse.BinaryReader, enc pmxfile.Encoding, data *string) (failed bool) {
	if fr.Err() != nil {
		return true
	}

	var length int
	if readLength(fr, &length) {
		return true
	}
	if length == 0 {
		*data = ""
		return false
	}

	b, failed := readBytes(fr, length)
	if failed {
		return true
	}

	s, err := decodeText(enc, b)
	if fr.Add(0, err) {
		return true
	}
	*data = s

	return false
}

// writeText writes length-prefixed text in the given encoding.
func writeText(fw *parse.BinaryWriter, enc pmxfile.Encoding, data string) (failed bool) {
	if fw.Err() != nil {
		return true
	}

	b, err := encodeText(enc, data)
	if fw.Add(0, err) {
		return true
	}

	if fw.Number(int32(len(b))) {
		return true
	}
	if len(b) == 0 {
		return false
	}
	return fw.Bytes(b)
}

// readList reads a count followed by that many rows. An empty list is
// returned as nil. On failure, the returned list is nil if the count could not
// be read, and otherwise holds the rows read successfully, so its length is
// the index of the failing row.
func readList[T any](fr *parse.BinaryReader, read func(*T) bool) (list []T, failed bool) {
	var n int
	if readLength(fr, &n) {
		return nil, true
	}
	if n == 0 {
		return nil, false
	}
	list = make([]T, 0, min(n, listCapHint))
	for i := 0; i < n; i++ {
		var v T
		if read(&v) {
			return list, true
		}
		list = append(list, v)
	}
	return list, false
}

// writeList writes the length of list followed by each row. On failure, index
// is the failing row, or -1 if the count could not be written.
func writeList[T any](fw *parse.BinaryWriter, list []T, write func(*T) bool) (index int, failed bool) {
	if fw.Number(int32(len(list))) {
		return -1, true
	}
	for i := range list {
		if write(&list[i]) {
			return i, true
		}
	}
	return 0, false
}
