package cdt

import (
	"image"
	"io"

	"github.com/quadedge/cdt/internal/render"
)

// WriteSVG and Raster are debug-only visualisation helpers (section 5's
// "no on-disk format is dictated by the core" applies here too — these
// exist for development, not as part of the external interface).
func (m *Mesh) renderInputs() ([]render.Point, []render.Triangle, []render.Edge) {
	verts := make([]render.Point, len(m.Vertices))
	for i, p := range m.Vertices {
		verts[i] = render.Point{X: p.X, Y: p.Y}
	}
	tris := make([]render.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = render.Triangle{A: verts[t.A], B: verts[t.B], C: verts[t.C]}
	}
	edges := make([]render.Edge, len(m.Edges))
	for i, e := range m.Edges {
		edges[i] = render.Edge{
			A:           verts[e.A],
			B:           verts[e.B],
			Constrained: m.EdgeTags[i] == Constrained,
			Boundary:    m.EdgeTags[i] == Boundary,
		}
	}
	return verts, tris, edges
}

// WriteSVG writes a debug SVG view of m to w.
func (m *Mesh) WriteSVG(w io.Writer) {
	verts, tris, edges := m.renderInputs()
	render.SVG(w, verts, tris, edges, render.DefaultOptions())
}

// Raster rasterises a debug view of m in-memory.
func (m *Mesh) Raster() *image.RGBA {
	verts, tris, edges := m.renderInputs()
	return render.Raster(verts, tris, edges, render.DefaultOptions())
}
