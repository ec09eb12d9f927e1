package pmx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmdformats/pmxfile"
)

var (
	// Indicates an unexpected file signature.
	ErrInvalidMagic = errors.New("invalid magic")
	// Indicates unexpected settings content.
	ErrCorruptHeader = errors.New("the settings header is corrupted")
	// Indicates a feature of the format that the codec does not implement.
	ErrNotImplemented = errors.New("not implemented")
	// Indicates a negative length or count.
	ErrNegativeLength = errors.New("negative length")
	// Indicates that a vertex has no skinning variant.
	ErrNilSkinning = errors.New("vertex has no skinning")
	// Indicates that a morph has offsets in a list not selected by its type.
	ErrMorphOffsetMismatch = errors.New("morph offsets do not match morph type")
)

// ErrUnrecognizedVersion indicates a format version not recognized by the
// codec.
type ErrUnrecognizedVersion float32

func (err ErrUnrecognizedVersion) Error() string {
	return "unrecognized version " + strconv.FormatFloat(float64(err), 'g', -1, 32)
}

// ErrUnknownSkinning indicates a skinning tag not known by the codec.
type ErrUnknownSkinning uint8

func (err ErrUnknownSkinning) Error() string {
	return fmt.Sprintf("unknown skinning type %d", uint8(err))
}

// ErrUnknownMorphType indicates a morph type not known by the codec.
type ErrUnknownMorphType uint8

func (err ErrUnknownMorphType) Error() string {
	return fmt.Sprintf("unknown morph type %d", uint8(err))
}

// DataError wraps an error that occurred while encoding or decoding byte data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// SectionError indicates an error that occurred within a section of the
// file.
type SectionError struct {
	// Section names the part of the file, such as "header" or "vertices".
	Section string
	// Index is the row within the section, or -1 if the error is not
	// specific to a row.
	Index int

	Cause error
}

func (err SectionError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%s: %s", err.Section, err.Cause)
	}
	return fmt.Sprintf("%s #%d: %s", err.Section, err.Index, err.Cause)
}

func (err SectionError) Unwrap() error {
	return err.Cause
}

////////////////////////////////////////////////////////////////
// Warnings

// ExtensionWarning indicates that settings fields beyond those interpreted by
// the codec were read and dropped.
type ExtensionWarning struct {
	Bytes []byte
}

func (err ExtensionWarning) Error() string {
	return fmt.Sprintf("dropped %d settings extension bytes", len(err.Bytes))
}

// IndexSizeWarning indicates a settings index width that is not 1, 2, or 4.
// Indices of that kind decode as -1 without consuming bytes.
type IndexSizeWarning struct {
	Kind pmxfile.IndexKind
	Size uint8
}

func (err IndexSizeWarning) Error() string {
	return fmt.Sprintf("%s index size %d is not 1, 2, or 4", err.Kind, err.Size)
}

// TrailingWarning indicates that data follows the last section.
type TrailingWarning struct {
	// Offset is the byte offset where the trailing data begins.
	Offset int64
	// Length is the number of trailing bytes.
	Length int64
}

func (err TrailingWarning) Error() string {
	return fmt.Sprintf("%d bytes of trailing data at %d", err.Length, err.Offset)
}

// VersionWarning indicates that a document was encoded with a version other
// than the one it reports.
type VersionWarning struct {
	Version float32
}

func (err VersionWarning) Error() string {
	return "version " + strconv.FormatFloat(float64(err.Version), 'g', -1, 32) + " encoded as 2.0"
}
