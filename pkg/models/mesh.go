// Package models loads glTF meshes and flattens them into 2D polygons.
package models

import (
	"math"

	"github.com/taigrr/pixmap/pkg/math2d"
	"github.com/taigrr/pixmap/pkg/render"
)

// Mesh is a triangle mesh with per-face materials.
type Mesh struct {
	Name      string
	Vertices  [][3]float64
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin [3]float64
	BoundsMax [3]float64
}

// Face is a triangle referencing three vertices and a material.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the flat color of a glTF material.
type Material struct {
	Name      string
	BaseColor render.Color
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = [3]float64{}, [3]float64{}
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			m.BoundsMin[i] = min(m.BoundsMin[i], v[i])
			m.BoundsMax[i] = max(m.BoundsMax[i], v[i])
		}
	}
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (lo, hi [3]float64) {
	return m.BoundsMin, m.BoundsMax
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([][3]float64, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// FaceColor returns the base color of face i, or fallback when the face
// has no material.
func (m *Mesh) FaceColor(i int, fallback render.Color) render.Color {
	if mat := m.GetMaterial(m.Faces[i].Material); mat != nil {
		return mat.BaseColor
	}
	return fallback
}

// Project maps every face onto a width×height canvas using an orthographic
// front view: Z is dropped and Y is flipped so +Y points up. The mesh is
// scaled uniformly to fit inside margin pixels of padding and centered.
func (m *Mesh) Project(width, height, margin int) [][3]math2d.Vec2 {
	lo, hi := m.Bounds()
	spanX, spanY := hi[0]-lo[0], hi[1]-lo[1]
	availX := float64(max(width-2*margin, 1))
	availY := float64(max(height-2*margin, 1))

	scale := math.Inf(1)
	if spanX > 0 {
		scale = availX / spanX
	}
	if spanY > 0 {
		scale = min(scale, availY/spanY)
	}
	if math.IsInf(scale, 1) {
		scale = 1 // Single point
	}

	mid := math2d.V2((lo[0]+hi[0])/2, (lo[1]+hi[1])/2)
	center := math2d.V2(float64(width)/2, float64(height)/2)
	project := func(v [3]float64) math2d.Vec2 {
		return math2d.V2(
			center.X+(v[0]-mid.X)*scale,
			center.Y-(v[1]-mid.Y)*scale,
		)
	}

	tris := make([][3]math2d.Vec2, len(m.Faces))
	for i, f := range m.Faces {
		for j, vi := range f.V {
			tris[i][j] = project(m.Vertices[vi])
		}
	}
	return tris
}

// Polygons projects the mesh and returns one polygon per face in color c.
func (m *Mesh) Polygons(width, height, margin int, c render.Color, filled bool) []*render.Polygon {
	return m.polygons(width, height, margin, filled, func(int) render.Color { return c })
}

// MaterialPolygons is like Polygons but colors each face with its material,
// using fallback for faces without one.
func (m *Mesh) MaterialPolygons(width, height, margin int, fallback render.Color, filled bool) []*render.Polygon {
	return m.polygons(width, height, margin, filled, func(i int) render.Color {
		return m.FaceColor(i, fallback)
	})
}

func (m *Mesh) polygons(width, height, margin int, filled bool, color func(int) render.Color) []*render.Polygon {
	tris := m.Project(width, height, margin)
	polys := make([]*render.Polygon, len(tris))
	for i, tri := range tris {
		p := render.NewPolygon(tri[:]...)
		p.SetColor(color(i))
		p.SetFilled(filled)
		polys[i] = p
	}
	return polys
}
