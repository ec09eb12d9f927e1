package pmxfile

// BoneFlags is the 16-bit flag register of a bone. Several bits gate optional
// fields of the encoded bone; the predicate methods are the single source of
// truth for which fields are present.
type BoneFlags uint16

const (
	BoneTailIsBone       BoneFlags = 0x0001 // tail is TailBone rather than TailOffset
	BoneRotatable        BoneFlags = 0x0002
	BoneTranslatable     BoneFlags = 0x0004
	BoneVisible          BoneFlags = 0x0008
	BoneOperable         BoneFlags = 0x0010
	BoneIK               BoneFlags = 0x0020
	BoneLocalGrant       BoneFlags = 0x0080
	BoneGrantRotation    BoneFlags = 0x0100
	BoneGrantTranslation BoneFlags = 0x0200
	BoneFixedAxis        BoneFlags = 0x0400
	BoneLocalAxis        BoneFlags = 0x0800
	BoneAfterPhysics     BoneFlags = 0x1000
	BoneExternalParent   BoneFlags = 0x2000
)

// HasTailBone returns whether the tail is stored as a bone index. Otherwise
// it is stored as an offset.
func (f BoneFlags) HasTailBone() bool { return f&BoneTailIsBone != 0 }

// HasGrant returns whether a grant parent and weight are stored.
func (f BoneFlags) HasGrant() bool { return f&(BoneGrantRotation|BoneGrantTranslation) != 0 }

// HasFixedAxis returns whether a fixed rotation axis is stored.
func (f BoneFlags) HasFixedAxis() bool { return f&BoneFixedAxis != 0 }

// HasLocalAxis returns whether local X and Y axis vectors are stored.
func (f BoneFlags) HasLocalAxis() bool { return f&BoneLocalAxis != 0 }

// HasExternalParent returns whether an external parent key is stored.
func (f BoneFlags) HasExternalParent() bool { return f&BoneExternalParent != 0 }

// HasIK returns whether an inverse-kinematics block is stored.
func (f BoneFlags) HasIK() bool { return f&BoneIK != 0 }

// Bone is a single bone of the skeleton.
type Bone struct {
	Name        string
	EnglishName string

	Position [3]float32
	Parent   int32

	// Level orders the deformation of bones.
	Level int32

	Flags BoneFlags

	// TailBone is present when Flags.HasTailBone, TailOffset otherwise.
	TailBone   int32
	TailOffset [3]float32

	// Present when Flags.HasGrant.
	GrantParent int32
	GrantWeight float32

	// Present when Flags.HasFixedAxis.
	FixedAxis [3]float32

	// Present when Flags.HasLocalAxis.
	LocalAxisX [3]float32
	LocalAxisY [3]float32

	// Present when Flags.HasExternalParent.
	ExternalKey int32

	// Present when Flags.HasIK.
	IK IK
}

// IK is the inverse-kinematics block of a bone.
type IK struct {
	Target     int32
	Loop       int32
	LimitAngle float32
	Links      []IKLink
}

// IKLink is one bone of an IK chain.
type IKLink struct {
	Bone int32

	// AngleLock is the raw limit flag. LowerLimit and UpperLimit are present
	// only when it is exactly 1.
	AngleLock  uint8
	LowerLimit [3]float32
	UpperLimit [3]float32
}

// HasLimits returns whether the link stores rotation limits.
func (l *IKLink) HasLimits() bool {
	return l.AngleLock == 1
}
