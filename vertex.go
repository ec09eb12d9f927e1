package pmxfile

// Vertex is a single mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32

	// AdditionalUV holds the additional UV channels. Only the first
	// Settings.AdditionalUV channels are encoded.
	AdditionalUV [MaxAdditionalUV][4]float32

	// Skinning determines how the vertex is deformed by bones. It must not be
	// nil when the vertex is encoded.
	Skinning Skinning

	// EdgeScale scales the edge size of the material drawing the vertex.
	EdgeScale float32
}

////////////////////////////////////////////////////////////////

// SkinningType is the wire tag selecting a skinning variant.
type SkinningType uint8

const (
	SkinningBDEF1 SkinningType = 0
	SkinningBDEF2 SkinningType = 1
	SkinningBDEF4 SkinningType = 2
	SkinningSDEF  SkinningType = 3
	SkinningQDEF  SkinningType = 4
)

var skinningTypeStrings = map[SkinningType]string{
	SkinningBDEF1: "BDEF1",
	SkinningBDEF2: "BDEF2",
	SkinningBDEF4: "BDEF4",
	SkinningSDEF:  "SDEF",
	SkinningQDEF:  "QDEF",
}

// Valid returns whether the tag names a known skinning variant.
func (t SkinningType) Valid() bool {
	return t <= SkinningQDEF
}

func (t SkinningType) String() string {
	s, ok := skinningTypeStrings[t]
	if !ok {
		return "Invalid"
	}
	return s
}

// Skinning is one of BDEF1, BDEF2, BDEF4, SDEF, or QDEF. The set of
// implementations is closed; the variant's Type is the tag it is encoded with.
type Skinning interface {
	Type() SkinningType
	skinning()
}

// NewSkinning returns the zero value of the variant with the given tag, or
// nil if the tag is unknown.
func NewSkinning(t SkinningType) Skinning {
	switch t {
	case SkinningBDEF1:
		return BDEF1{}
	case SkinningBDEF2:
		return BDEF2{}
	case SkinningBDEF4:
		return BDEF4{}
	case SkinningSDEF:
		return SDEF{}
	case SkinningQDEF:
		return QDEF{}
	}
	return nil
}

// BDEF1 binds a vertex entirely to one bone.
type BDEF1 struct {
	Bone int32
}

// BDEF2 blends two bones. The second bone's weight is 1-Weight.
type BDEF2 struct {
	Bones  [2]int32
	Weight float32
}

// BDEF4 blends four bones. Weights are stored as given, and are not
// normalized.
type BDEF4 struct {
	Bones   [4]int32
	Weights [4]float32
}

// SDEF is a spherical deform between two bones.
type SDEF struct {
	Bones  [2]int32
	Weight float32

	// C is the center of the deform, R0 and R1 are the rotation references.
	C  [3]float32
	R0 [3]float32
	R1 [3]float32
}

// QDEF is a dual-quaternion blend of four bones. It has the same layout as
// BDEF4.
type QDEF struct {
	Bones   [4]int32
	Weights [4]float32
}

func (BDEF1) Type() SkinningType { return SkinningBDEF1 }
func (BDEF2) Type() SkinningType { return SkinningBDEF2 }
func (BDEF4) Type() SkinningType { return SkinningBDEF4 }
func (SDEF) Type() SkinningType  { return SkinningSDEF }
func (QDEF) Type() SkinningType  { return SkinningQDEF }

func (BDEF1) skinning() {}
func (BDEF2) skinning() {}
func (BDEF4) skinning() {}
func (SDEF) skinning()  {}
func (QDEF) skinning()  {}
