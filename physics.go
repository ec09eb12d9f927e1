package pmxfile

// RigidShape is the collision shape of a rigid body.
type RigidShape uint8

const (
	ShapeSphere RigidShape = iota
	ShapeBox
	ShapeCapsule
)

// PhysicsMode indicates how a rigid body relates to its bone.
type PhysicsMode uint8

const (
	PhysicsStatic      PhysicsMode = iota // follows the bone
	PhysicsDynamic                        // simulated
	PhysicsDynamicBone                    // simulated, aligned to the bone position
)

// RigidBody is a collision body, optionally attached to a bone.
type RigidBody struct {
	Name        string
	EnglishName string

	Bone int32

	Group uint8
	// Mask is the set of groups the body does not collide with.
	Mask uint16

	Shape    RigidShape
	Size     [3]float32
	Position [3]float32
	Rotation [3]float32 // radians

	Mass           float32
	LinearDamping  float32
	AngularDamping float32
	Restitution    float32
	Friction       float32

	Mode PhysicsMode
}

// JointType is the constraint type of a joint.
type JointType uint8

const (
	JointSpring6DOF JointType = iota
	Joint6DOF                 // 2.1
	JointP2P                  // 2.1
	JointConeTwist            // 2.1
	JointSlider               // 2.1
	JointHinge                // 2.1
)

// Joint constrains two rigid bodies.
type Joint struct {
	Name        string
	EnglishName string

	Type  JointType
	Param JointParam
}

// JointParam is the parameter block shared by every joint type.
type JointParam struct {
	RigidBodyA int32
	RigidBodyB int32

	Position [3]float32
	Rotation [3]float32

	LinearLower  [3]float32
	LinearUpper  [3]float32
	AngularLower [3]float32
	AngularUpper [3]float32

	LinearSpring  [3]float32
	AngularSpring [3]float32
}

////////////////////////////////////////////////////////////////

// SoftBodyShape is the shape of a soft body.
type SoftBodyShape uint8

const (
	SoftBodyTriMesh SoftBodyShape = iota
	SoftBodyRope
)

// SoftBody is a 2.1 soft body. The binary codec does not implement soft
// bodies; the type exists so that documents can describe them.
type SoftBody struct {
	Name        string
	EnglishName string

	Shape    SoftBodyShape
	Material int32

	Group uint8
	Mask  uint16

	Flags           uint8
	BLinkDistance   int32
	Clusters        int32
	TotalMass       float32
	CollisionMargin float32
	AeroModel       int32

	Anchors     []SoftBodyAnchor
	PinVertices []int32
}

// SoftBodyAnchor ties a soft-body vertex to a rigid body.
type SoftBodyAnchor struct {
	RigidBody int32
	Vertex    int32
	Near      uint8
}
