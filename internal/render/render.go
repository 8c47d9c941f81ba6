// Package render provides debug-only visualisation of a triangulation:
// an SVG view (github.com/ajstarks/svgo/float, grounded on
// tjim-manifold/manifold.go's debugDraw and draw) and a rasterised PNG
// view (github.com/llgcode/draw2d/draw2dimg, grounded on the root
// quadedge.go teacher copy's main, the only draw2d call site in the
// retrieval pack). Nothing here is part of the core CDT contract
// (section 5 states the core dictates no on-disk format); it exists
// purely to let a developer look at a triangulation while working on
// it, so it takes plain point/edge/triangle slices rather than
// importing the root package.
package render

// Point is a finite point in the plane, mirroring the root package's
// Point without creating an import cycle.
type Point struct {
	X, Y float64
}

// Edge is one edge to draw, with enough classification to style it.
type Edge struct {
	A, B        Point
	Constrained bool
	Boundary    bool
}

// Triangle is one bounded face to draw, filled lightly before edges are
// drawn over it.
type Triangle struct {
	A, B, C Point
}

// Options controls the viewport a Mesh is rendered into.
type Options struct {
	Width, Height float64
	Margin        float64
}

// DefaultOptions mirrors manifold.go's hard-coded 1000x1000 debug canvas
// with a fixed origin offset, generalized into a reusable margin.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 1000, Margin: 40}
}

func boundingBox(vertices []Point) (small, big Point) {
	if len(vertices) == 0 {
		return Point{}, Point{}
	}
	small, big = vertices[0], vertices[0]
	for _, p := range vertices[1:] {
		if p.X < small.X {
			small.X = p.X
		}
		if p.Y < small.Y {
			small.Y = p.Y
		}
		if p.X > big.X {
			big.X = p.X
		}
		if p.Y > big.Y {
			big.Y = p.Y
		}
	}
	return small, big
}

// fitTransform returns a function mapping a model-space point into
// viewport space, scaled to fit opt's margin-inset viewport and
// translated so the bounding box's minimum corner lands at the margin —
// the same scale-then-translate sequence manifold.go's draw uses.
func fitTransform(vertices []Point, opt Options) func(Point) (float64, float64) {
	small, big := boundingBox(vertices)
	width, height := big.X-small.X, big.Y-small.Y
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	scaleX := (opt.Width - 2*opt.Margin) / width
	scaleY := (opt.Height - 2*opt.Margin) / height
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	return func(p Point) (float64, float64) {
		return opt.Margin + (p.X-small.X)*scale, opt.Margin + (p.Y-small.Y)*scale
	}
}
