package pmxfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoneFlags(t *testing.T) {
	var f BoneFlags
	assert.False(t, f.HasTailBone())
	assert.False(t, f.HasGrant())
	assert.False(t, f.HasIK())

	f = BoneTailIsBone | BoneGrantTranslation | BoneFixedAxis | BoneLocalAxis | BoneExternalParent | BoneIK
	assert.True(t, f.HasTailBone())
	assert.True(t, f.HasGrant())
	assert.True(t, f.HasFixedAxis())
	assert.True(t, f.HasLocalAxis())
	assert.True(t, f.HasExternalParent())
	assert.True(t, f.HasIK())

	assert.True(t, BoneGrantRotation.HasGrant())
	assert.False(t, BoneLocalGrant.HasGrant())
}

func TestIKLinkLimits(t *testing.T) {
	assert.True(t, (&IKLink{AngleLock: 1}).HasLimits())
	assert.False(t, (&IKLink{AngleLock: 0}).HasLimits())
	assert.False(t, (&IKLink{AngleLock: 2}).HasLimits())
}

func TestMaterialFlags(t *testing.T) {
	f := MaterialDoubleSided | MaterialEdge
	assert.True(t, f.Has(MaterialDoubleSided))
	assert.True(t, f.Has(MaterialDoubleSided|MaterialEdge))
	assert.False(t, f.Has(MaterialDoubleSided|MaterialPoint))
	assert.Equal(t, MaterialFlags(0x80), MaterialLine)

	assert.True(t, (&Material{SharedToon: 1}).UsesSharedToon())
	assert.False(t, (&Material{}).UsesSharedToon())
}

func TestSkinning(t *testing.T) {
	for _, typ := range []SkinningType{SkinningBDEF1, SkinningBDEF2, SkinningBDEF4, SkinningSDEF, SkinningQDEF} {
		k := NewSkinning(typ)
		if assert.NotNil(t, k, typ.String()) {
			assert.Equal(t, typ, k.Type())
		}
		assert.True(t, typ.Valid())
	}
	assert.Nil(t, NewSkinning(5))
	assert.False(t, SkinningType(5).Valid())
	assert.Equal(t, "Invalid", SkinningType(5).String())
	assert.Equal(t, "SDEF", SkinningSDEF.String())
}

func TestMorphType(t *testing.T) {
	for typ := MorphGroup; typ <= MorphImpulse; typ++ {
		assert.True(t, typ.Valid())
		assert.NotEqual(t, "Invalid", typ.String())
	}
	assert.False(t, MorphType(11).Valid())
	assert.Equal(t, "Invalid", MorphType(11).String())

	assert.True(t, MorphUV.IsUV())
	assert.True(t, MorphUV4.IsUV())
	assert.False(t, MorphBone.IsUV())
	assert.False(t, MorphMaterial.IsUV())
}

func TestMorphConsistent(t *testing.T) {
	m := Morph{Type: MorphUV2, UVOffsets: []UVOffset{{Vertex: 1}}}
	assert.Equal(t, 1, m.OffsetCount())
	assert.True(t, m.Consistent())

	m.VertexOffsets = []VertexOffset{{Vertex: 1}}
	assert.False(t, m.Consistent())

	m = Morph{Type: MorphImpulse}
	assert.Equal(t, 0, m.OffsetCount())
	assert.True(t, m.Consistent())

	m = Morph{Type: 11}
	assert.Equal(t, -1, m.OffsetCount())
	assert.False(t, m.Consistent())
}

func TestFrameElement(t *testing.T) {
	assert.True(t, FrameElement{Target: FrameBone}.IsBone())
	assert.False(t, FrameElement{Target: FrameMorph}.IsBone())
	assert.False(t, FrameElement{Target: 7}.IsBone())
}
