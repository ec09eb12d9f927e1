package pmxfile

// MorphCategory is the panel a morph is shown in.
type MorphCategory uint8

const (
	MorphCategorySystem MorphCategory = iota
	MorphCategoryEyebrow
	MorphCategoryEye
	MorphCategoryMouth
	MorphCategoryOther
)

// MorphType is the wire tag selecting which offset list a morph carries.
type MorphType uint8

const (
	MorphGroup    MorphType = 0
	MorphVertex   MorphType = 1
	MorphBone     MorphType = 2
	MorphUV       MorphType = 3
	MorphUV1      MorphType = 4
	MorphUV2      MorphType = 5
	MorphUV3      MorphType = 6
	MorphUV4      MorphType = 7
	MorphMaterial MorphType = 8
	MorphFlip     MorphType = 9  // 2.1
	MorphImpulse  MorphType = 10 // 2.1
)

var morphTypeStrings = map[MorphType]string{
	MorphGroup:    "Group",
	MorphVertex:   "Vertex",
	MorphBone:     "Bone",
	MorphUV:       "UV",
	MorphUV1:      "UV1",
	MorphUV2:      "UV2",
	MorphUV3:      "UV3",
	MorphUV4:      "UV4",
	MorphMaterial: "Material",
	MorphFlip:     "Flip",
	MorphImpulse:  "Impulse",
}

// Valid returns whether the tag names a known morph type.
func (t MorphType) Valid() bool {
	return t <= MorphImpulse
}

// IsUV returns whether the morph type uses UVOffsets. The UV type and the four
// additional UV types share one offset layout.
func (t MorphType) IsUV() bool {
	return MorphUV <= t && t <= MorphUV4
}

func (t MorphType) String() string {
	s, ok := morphTypeStrings[t]
	if !ok {
		return "Invalid"
	}
	return s
}

// Morph is a named deformation. Type selects the one offset list that is
// encoded; every other list must be empty.
type Morph struct {
	Name        string
	EnglishName string

	Category MorphCategory
	Type     MorphType

	GroupOffsets    []GroupOffset
	VertexOffsets   []VertexOffset
	BoneOffsets     []BoneOffset
	UVOffsets       []UVOffset
	MaterialOffsets []MaterialOffset
	FlipOffsets     []FlipOffset
	ImpulseOffsets  []ImpulseOffset
}

// OffsetCount returns the length of the offset list selected by Type, or -1
// if Type is unknown.
func (m *Morph) OffsetCount() int {
	switch {
	case m.Type == MorphGroup:
		return len(m.GroupOffsets)
	case m.Type == MorphVertex:
		return len(m.VertexOffsets)
	case m.Type == MorphBone:
		return len(m.BoneOffsets)
	case m.Type.IsUV():
		return len(m.UVOffsets)
	case m.Type == MorphMaterial:
		return len(m.MaterialOffsets)
	case m.Type == MorphFlip:
		return len(m.FlipOffsets)
	case m.Type == MorphImpulse:
		return len(m.ImpulseOffsets)
	}
	return -1
}

// Consistent returns whether every offset list other than the one selected by
// Type is empty.
func (m *Morph) Consistent() bool {
	total := len(m.GroupOffsets) + len(m.VertexOffsets) + len(m.BoneOffsets) +
		len(m.UVOffsets) + len(m.MaterialOffsets) + len(m.FlipOffsets) +
		len(m.ImpulseOffsets)
	return m.OffsetCount() == total
}

// GroupOffset applies another morph with a weight.
type GroupOffset struct {
	Morph  int32
	Weight float32
}

// VertexOffset moves one vertex.
type VertexOffset struct {
	Vertex   int32
	Position [3]float32
}

// BoneOffset moves and rotates one bone.
type BoneOffset struct {
	Bone        int32
	Translation [3]float32
	Rotation    [4]float32 // quaternion XYZW
}

// UVOffset shifts the primary or an additional UV channel of one vertex.
type UVOffset struct {
	Vertex int32
	Offset [4]float32
}

// MaterialOperation indicates how a material offset is combined.
type MaterialOperation uint8

const (
	MaterialMultiply MaterialOperation = iota
	MaterialAdd
)

// MaterialOffset changes the colors of one material, or of every material
// when Material is -1.
type MaterialOffset struct {
	Material  int32
	Operation MaterialOperation

	Diffuse   [4]float32
	Specular  [3]float32
	Shininess float32
	Ambient   [3]float32
	EdgeColor [4]float32
	EdgeSize  float32

	Texture       [4]float32 // ARGB
	SphereTexture [4]float32 // ARGB
	ToonTexture   [4]float32 // ARGB
}

// FlipOffset selects another morph by value.
type FlipOffset struct {
	Morph int32
	Value float32
}

// ImpulseOffset applies velocity and torque to one rigid body.
type ImpulseOffset struct {
	RigidBody int32
	Local     uint8
	Velocity  [3]float32
	Torque    [3]float32
}
