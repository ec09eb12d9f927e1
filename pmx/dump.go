package pmx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/mmdformats/pmxfile"
	"github.com/mmdformats/pmxfile/errors"
)

// Dump writes to w a readable representation of the document decoded from r.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}

	doc, warn, err := d.Decode(r)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)
	s := doc.Settings
	fmt.Fprintf(bw, "Version: %g", doc.Version)
	fmt.Fprint(bw, "\nSettings: {")
	dumpNewline(bw, 1)
	fmt.Fprintf(bw, "Encoding: %s", s.Encoding)
	dumpNewline(bw, 1)
	fmt.Fprintf(bw, "AdditionalUV: %d", s.AdditionalUV)
	for _, kind := range pmxfile.IndexKinds() {
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "IndexSize[%s]: %d", kind, s.IndexSize(kind))
	}
	fmt.Fprint(bw, "\n}")
	fmt.Fprint(bw, "\nName: ")
	dumpString(bw, 0, doc.Name)
	fmt.Fprint(bw, "\nEnglishName: ")
	dumpString(bw, 0, doc.EnglishName)
	fmt.Fprint(bw, "\nComment: ")
	dumpString(bw, 0, doc.Comment)
	fmt.Fprint(bw, "\nEnglishComment: ")
	dumpString(bw, 0, doc.EnglishComment)

	dumpList(bw, "Vertices", doc.Vertices, dumpVertex)
	dumpFaces(bw, doc.Indices)
	dumpList(bw, "Textures", doc.Textures, func(w *bufio.Writer, indent int, t *string) {
		dumpNewline(w, indent)
		dumpString(w, indent, *t)
	})
	dumpList(bw, "Materials", doc.Materials, dumpMaterial)
	dumpList(bw, "Bones", doc.Bones, dumpBone)
	dumpList(bw, "Morphs", doc.Morphs, dumpMorph)
	dumpList(bw, "Frames", doc.Frames, dumpFrame)
	dumpList(bw, "RigidBodies", doc.RigidBodies, dumpRigidBody)
	dumpList(bw, "Joints", doc.Joints, dumpJoint)
	fmt.Fprint(bw, "\n")

	if err := bw.Flush(); err != nil {
		return warn, err
	}
	return warn, nil
}

func dumpList[T any](w *bufio.Writer, name string, list []T, dump func(*bufio.Writer, int, *T)) {
	fmt.Fprintf(w, "\n%s: (count:%d) {", name, len(list))
	for i := range list {
		dumpNewline(w, 1)
		fmt.Fprintf(w, "#%d: {", i)
		dump(w, 2, &list[i])
		dumpNewline(w, 1)
		w.WriteString("}")
	}
	fmt.Fprint(w, "\n}")
}

func dumpFaces(w *bufio.Writer, indices []int32) {
	fmt.Fprintf(w, "\nFaces: (count:%d) {", len(indices))
	for i := 0; i < len(indices); i += 3 {
		dumpNewline(w, 1)
		fmt.Fprintf(w, "%d:", i/3)
		for _, v := range indices[i:min(i+3, len(indices))] {
			fmt.Fprintf(w, " %d", v)
		}
	}
	fmt.Fprint(w, "\n}")
}

func dumpField(w *bufio.Writer, indent int, name string, value any) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "%s: %v", name, value)
}

func dumpText(w *bufio.Writer, indent int, name string, s string) {
	dumpNewline(w, indent)
	w.WriteString(name)
	w.WriteString(": ")
	dumpString(w, indent, s)
}

func dumpVertex(w *bufio.Writer, indent int, v *pmxfile.Vertex) {
	dumpField(w, indent, "Position", v.Position)
	dumpField(w, indent, "Normal", v.Normal)
	dumpField(w, indent, "UV", v.UV)
	dumpField(w, indent, "AdditionalUV", v.AdditionalUV)
	if v.Skinning == nil {
		dumpField(w, indent, "Skinning", "<nil>")
	} else {
		dumpField(w, indent, "Skinning", fmt.Sprintf("%s %+v", v.Skinning.Type(), v.Skinning))
	}
	dumpField(w, indent, "EdgeScale", v.EdgeScale)
}

func dumpMaterial(w *bufio.Writer, indent int, m *pmxfile.Material) {
	dumpText(w, indent, "Name", m.Name)
	dumpText(w, indent, "EnglishName", m.EnglishName)
	dumpField(w, indent, "Diffuse", m.Diffuse)
	dumpField(w, indent, "Specular", m.Specular)
	dumpField(w, indent, "Shininess", m.Shininess)
	dumpField(w, indent, "Ambient", m.Ambient)
	dumpField(w, indent, "Flags", fmt.Sprintf("%08b", uint8(m.Flags)))
	dumpField(w, indent, "EdgeColor", m.EdgeColor)
	dumpField(w, indent, "EdgeSize", m.EdgeSize)
	dumpField(w, indent, "Texture", m.Texture)
	dumpField(w, indent, "SphereTexture", m.SphereTexture)
	dumpField(w, indent, "SphereMode", m.SphereMode)
	if m.UsesSharedToon() {
		dumpField(w, indent, "SharedToon", m.ToonTexture)
	} else {
		dumpField(w, indent, "ToonTexture", m.ToonTexture)
	}
	dumpText(w, indent, "Memo", m.Memo)
	dumpField(w, indent, "IndexCount", m.IndexCount)
}

func dumpBone(w *bufio.Writer, indent int, b *pmxfile.Bone) {
	dumpText(w, indent, "Name", b.Name)
	dumpText(w, indent, "EnglishName", b.EnglishName)
	dumpField(w, indent, "Position", b.Position)
	dumpField(w, indent, "Parent", b.Parent)
	dumpField(w, indent, "Level", b.Level)
	dumpField(w, indent, "Flags", fmt.Sprintf("%016b", uint16(b.Flags)))
	if b.Flags.HasTailBone() {
		dumpField(w, indent, "TailBone", b.TailBone)
	} else {
		dumpField(w, indent, "TailOffset", b.TailOffset)
	}
	if b.Flags.HasGrant() {
		dumpField(w, indent, "GrantParent", b.GrantParent)
		dumpField(w, indent, "GrantWeight", b.GrantWeight)
	}
	if b.Flags.HasFixedAxis() {
		dumpField(w, indent, "FixedAxis", b.FixedAxis)
	}
	if b.Flags.HasLocalAxis() {
		dumpField(w, indent, "LocalAxisX", b.LocalAxisX)
		dumpField(w, indent, "LocalAxisY", b.LocalAxisY)
	}
	if b.Flags.HasExternalParent() {
		dumpField(w, indent, "ExternalKey", b.ExternalKey)
	}
	if b.Flags.HasIK() {
		dumpNewline(w, indent)
		w.WriteString("IK: {")
		dumpField(w, indent+1, "Target", b.IK.Target)
		dumpField(w, indent+1, "Loop", b.IK.Loop)
		dumpField(w, indent+1, "LimitAngle", b.IK.LimitAngle)
		for i, l := range b.IK.Links {
			dumpNewline(w, indent+1)
			fmt.Fprintf(w, "Link #%d: bone %d", i, l.Bone)
			if l.HasLimits() {
				fmt.Fprintf(w, " limits %v %v", l.LowerLimit, l.UpperLimit)
			}
		}
		dumpNewline(w, indent)
		w.WriteString("}")
	}
}

func dumpMorph(w *bufio.Writer, indent int, m *pmxfile.Morph) {
	dumpText(w, indent, "Name", m.Name)
	dumpText(w, indent, "EnglishName", m.EnglishName)
	dumpField(w, indent, "Category", m.Category)
	dumpField(w, indent, "Type", m.Type)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Offsets: (count:%d) {", m.OffsetCount())
	dumpOffsets(w, indent+1, m.GroupOffsets)
	dumpOffsets(w, indent+1, m.VertexOffsets)
	dumpOffsets(w, indent+1, m.BoneOffsets)
	dumpOffsets(w, indent+1, m.UVOffsets)
	dumpOffsets(w, indent+1, m.MaterialOffsets)
	dumpOffsets(w, indent+1, m.FlipOffsets)
	dumpOffsets(w, indent+1, m.ImpulseOffsets)
	dumpNewline(w, indent)
	w.WriteString("}")
}

func dumpOffsets[T any](w *bufio.Writer, indent int, offsets []T) {
	for _, o := range offsets {
		dumpNewline(w, indent)
		fmt.Fprintf(w, "%+v", o)
	}
}

func dumpFrame(w *bufio.Writer, indent int, f *pmxfile.Frame) {
	dumpText(w, indent, "Name", f.Name)
	dumpText(w, indent, "EnglishName", f.EnglishName)
	dumpField(w, indent, "Special", f.Special)
	for _, e := range f.Elements {
		dumpNewline(w, indent)
		if e.IsBone() {
			fmt.Fprintf(w, "Bone %d", e.Index)
		} else {
			fmt.Fprintf(w, "Morph %d", e.Index)
		}
	}
}

func dumpRigidBody(w *bufio.Writer, indent int, b *pmxfile.RigidBody) {
	dumpText(w, indent, "Name", b.Name)
	dumpText(w, indent, "EnglishName", b.EnglishName)
	dumpField(w, indent, "Bone", b.Bone)
	dumpField(w, indent, "Group", b.Group)
	dumpField(w, indent, "Mask", fmt.Sprintf("%016b", b.Mask))
	dumpField(w, indent, "Shape", b.Shape)
	dumpField(w, indent, "Size", b.Size)
	dumpField(w, indent, "Position", b.Position)
	dumpField(w, indent, "Rotation", b.Rotation)
	dumpField(w, indent, "Mass", b.Mass)
	dumpField(w, indent, "LinearDamping", b.LinearDamping)
	dumpField(w, indent, "AngularDamping", b.AngularDamping)
	dumpField(w, indent, "Restitution", b.Restitution)
	dumpField(w, indent, "Friction", b.Friction)
	dumpField(w, indent, "Mode", b.Mode)
}

func dumpJoint(w *bufio.Writer, indent int, j *pmxfile.Joint) {
	p := &j.Param
	dumpText(w, indent, "Name", j.Name)
	dumpText(w, indent, "EnglishName", j.EnglishName)
	dumpField(w, indent, "Type", j.Type)
	dumpField(w, indent, "RigidBodies", [2]int32{p.RigidBodyA, p.RigidBodyB})
	dumpField(w, indent, "Position", p.Position)
	dumpField(w, indent, "Rotation", p.Rotation)
	dumpField(w, indent, "Linear", [2][3]float32{p.LinearLower, p.LinearUpper})
	dumpField(w, indent, "Angular", [2][3]float32{p.AngularLower, p.AngularUpper})
	dumpField(w, indent, "LinearSpring", p.LinearSpring)
	dumpField(w, indent, "AngularSpring", p.AngularSpring)
}

////////////////////////////////////////////////////////////////

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpString(w *bufio.Writer, indent int, s string) {
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			dumpBytes(w, indent, []byte(s))
			return
		}
	}
	fmt.Fprintf(w, "(len:%d) ", len(s))
	w.WriteString(strconv.Quote(s))
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		n := min(j+width, len(b))
		for i := j; i < j+width; i++ {
			if i < n {
				fmt.Fprintf(w, "%02x ", b[i])
			} else {
				w.WriteString("   ")
			}
			if i%width == width/2-1 {
				w.WriteByte(' ')
			}
		}
		w.WriteByte('|')
		for _, c := range b[j:n] {
			if 32 <= c && c <= 126 {
				w.WriteByte(c)
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
