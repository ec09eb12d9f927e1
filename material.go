package pmxfile

// MaterialFlags is the drawing flag register of a material.
type MaterialFlags uint8

const (
	MaterialDoubleSided MaterialFlags = 1 << iota
	MaterialGroundShadow
	MaterialCastSelfShadow
	MaterialReceiveSelfShadow
	MaterialEdge
	MaterialVertexColor // 2.1
	MaterialPoint       // 2.1
	MaterialLine        // 2.1
)

// Has returns whether every bit of f is set.
func (m MaterialFlags) Has(f MaterialFlags) bool {
	return m&f == f
}

// SphereMode indicates how a sphere texture is blended.
type SphereMode uint8

const (
	SphereNone SphereMode = iota
	SphereMultiply
	SphereAdd
	SphereSubTexture
)

// ToonPaletteSize is the number of shared toon textures a material can select
// when it uses the shared palette.
const ToonPaletteSize = 10

// Material describes how a range of faces is drawn.
type Material struct {
	Name        string
	EnglishName string

	Diffuse   [4]float32 // RGBA
	Specular  [3]float32 // RGB
	Shininess float32
	Ambient   [3]float32 // RGB

	Flags MaterialFlags

	EdgeColor [4]float32 // RGBA
	EdgeSize  float32

	// Texture and SphereTexture are indices into Document.Textures.
	Texture       int32
	SphereTexture int32
	SphereMode    SphereMode

	// SharedToon is the raw toon flag. When non-zero, ToonTexture selects an
	// entry of the shared toon palette and is encoded in one byte. When zero,
	// ToonTexture is an index into Document.Textures.
	SharedToon  uint8
	ToonTexture int32

	Memo string

	// IndexCount is the number of entries of Document.Indices drawn with this
	// material. Materials consume the face list in order.
	IndexCount int32
}

// UsesSharedToon returns whether ToonTexture refers to the shared palette.
func (m *Material) UsesSharedToon() bool {
	return m.SharedToon != 0
}
