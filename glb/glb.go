// Package glb exports the mesh portion of a PMX document as binary glTF.
//
// The exported scene holds a single node with a single mesh. Each material
// that draws at least one triangle becomes one primitive of the mesh, sharing
// the vertex attributes of the whole model. Skinning, morphs and physics are
// not exported.
//
// PMX models are left-handed. Positions and normals are mirrored along Z, and
// triangle winding is reversed, to produce the right-handed space of glTF.
package glb

import (
	"errors"
	"io"
	"strings"

	"github.com/mmdformats/pmxfile"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Generator is written to the asset metadata of built documents.
const Generator = "pmxfile"

// Build converts doc to a glTF document.
func Build(doc *pmxfile.Document) (*gltf.Document, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}
	faces, err := doc.MaterialFaces()
	if err != nil {
		return nil, err
	}

	g := gltf.NewDocument()
	g.Asset.Generator = Generator

	for _, path := range doc.Textures {
		g.Images = append(g.Images, &gltf.Image{URI: strings.ReplaceAll(path, `\`, "/")})
		g.Textures = append(g.Textures, &gltf.Texture{Source: gltf.Index(len(g.Images) - 1)})
	}
	for i := range doc.Materials {
		g.Materials = append(g.Materials, buildMaterial(&doc.Materials[i], len(doc.Textures)))
	}

	var primitives []*gltf.Primitive
	var attributes gltf.PrimitiveAttributes
	for i, face := range faces {
		indices := triangles(face, len(doc.Vertices))
		if len(indices) == 0 {
			continue
		}
		if attributes == nil {
			attributes = writeVertices(g, doc.Vertices)
		}
		primitives = append(primitives, &gltf.Primitive{
			Attributes: attributes,
			Indices:    gltf.Index(modeler.WriteIndices(g, indices)),
			Material:   gltf.Index(i),
		})
	}
	if len(primitives) == 0 {
		return g, nil
	}

	g.Meshes = []*gltf.Mesh{{Name: doc.Name, Primitives: primitives}}
	g.Nodes = []*gltf.Node{{Name: doc.Name, Mesh: gltf.Index(0)}}
	g.Scenes[0].Nodes = append(g.Scenes[0].Nodes, 0)
	return g, nil
}

// Encode converts doc to binary glTF and writes it to w.
func Encode(w io.Writer, doc *pmxfile.Document) error {
	if w == nil {
		return errors.New("nil writer")
	}
	g, err := Build(doc)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(g)
}

func buildMaterial(m *pmxfile.Material, textures int) *gltf.Material {
	var diffuse [4]float64
	for i, c := range m.Diffuse {
		diffuse[i] = float64(c)
	}
	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &diffuse,
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	if 0 <= m.Texture && int(m.Texture) < textures {
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: int(m.Texture)}
	}

	material := &gltf.Material{
		Name:                 m.Name,
		PBRMetallicRoughness: pbr,
		DoubleSided:          m.Flags.Has(pmxfile.MaterialDoubleSided),
		AlphaMode:            gltf.AlphaOpaque,
	}
	if m.Diffuse[3] < 1 {
		material.AlphaMode = gltf.AlphaBlend
	}
	return material
}

// triangles returns the triangles of face that refer only to existing
// vertices, with reversed winding.
func triangles(face []int32, vertices int) []uint32 {
	indices := make([]uint32, 0, len(face))
	for i := 0; i+2 < len(face); i += 3 {
		a, b, c := face[i], face[i+1], face[i+2]
		if !inRange(a, vertices) || !inRange(b, vertices) || !inRange(c, vertices) {
			continue
		}
		indices = append(indices, uint32(a), uint32(c), uint32(b))
	}
	return indices
}

func inRange(i int32, n int) bool {
	return 0 <= i && int(i) < n
}

func writeVertices(g *gltf.Document, vertices []pmxfile.Vertex) gltf.PrimitiveAttributes {
	positions := make([][3]float32, len(vertices))
	normals := make([][3]float32, len(vertices))
	uvs := make([][2]float32, len(vertices))
	for i, v := range vertices {
		positions[i] = [3]float32{v.Position[0], v.Position[1], -v.Position[2]}
		normals[i] = [3]float32{v.Normal[0], v.Normal[1], -v.Normal[2]}
		uvs[i] = v.UV
	}
	return gltf.PrimitiveAttributes{
		gltf.POSITION:   modeler.WritePosition(g, positions),
		gltf.NORMAL:     modeler.WriteNormal(g, normals),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(g, uvs),
	}
}
