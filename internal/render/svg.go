package render

import (
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVG writes a debug view of triangles and edges to w: triangles filled
// pale grey, regular edges thin black, boundary edges red, constrained
// edges blue and thicker. Ported from tjim-manifold/manifold.go's draw,
// generalized from that function's single walked edge ring to an
// explicit triangle/edge list and from its SetOrg-mutates-geometry
// style (inappropriate once geometry belongs to a *quadedge.Store) to a
// pure read of caller-supplied slices.
func SVG(w io.Writer, vertices []Point, triangles []Triangle, edges []Edge, opt Options) {
	s := svg.New(w)
	s.Start(opt.Width, opt.Height)
	defer s.End()

	to := fitTransform(vertices, opt)

	for _, t := range triangles {
		ax, ay := to(t.A)
		bx, by := to(t.B)
		cx, cy := to(t.C)
		s.Polygon([]float64{ax, bx, cx}, []float64{ay, by, cy}, "fill:#eee;stroke:none")
	}

	for _, e := range edges {
		ax, ay := to(e.A)
		bx, by := to(e.B)
		style := "stroke:#000;stroke-width:1"
		switch {
		case e.Constrained:
			style = "stroke:#00c;stroke-width:2"
		case e.Boundary:
			style = "stroke:#c00;stroke-width:1"
		}
		s.Line(ax, ay, bx, by, style)
	}
}
