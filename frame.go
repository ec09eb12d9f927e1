package pmxfile

// FrameTarget indicates what a frame element refers to.
type FrameTarget uint8

const (
	FrameBone  FrameTarget = 0
	FrameMorph FrameTarget = 1
)

// FrameElement refers to a bone or a morph. Any target other than FrameBone
// is treated as a morph reference.
type FrameElement struct {
	Target FrameTarget
	Index  int32
}

// IsBone returns whether Index refers to Document.Bones.
func (e FrameElement) IsBone() bool {
	return e.Target == FrameBone
}

// Frame groups bones and morphs for display. It does not affect geometry.
type Frame struct {
	Name        string
	EnglishName string

	// Special is non-zero for the root and expression frames.
	Special uint8

	Elements []FrameElement
}
