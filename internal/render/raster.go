package render

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
)

// Raster renders the same triangulation as SVG does, but rasterised
// in-memory — grounded on the root quadedge.go copy's main, the only
// draw2d call site in the retrieval pack. It returns the image rather
// than writing a file directly (unlike that main, which calls
// draw2dimg.SaveToPngFile), since a library function should let the
// caller decide the sink; callers that want a file can pass the result
// to draw2dimg.SaveToPngFile themselves.
func Raster(vertices []Point, triangles []Triangle, edges []Edge, opt Options) *image.RGBA {
	dest := image.NewRGBA(image.Rect(0, 0, int(opt.Width), int(opt.Height)))
	gc := draw2dimg.NewGraphicContext(dest)

	to := fitTransform(vertices, opt)

	gc.SetFillColor(color.RGBA{0xee, 0xee, 0xee, 0xff})
	gc.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	for _, t := range triangles {
		ax, ay := to(t.A)
		bx, by := to(t.B)
		cx, cy := to(t.C)
		gc.MoveTo(ax, ay)
		gc.LineTo(bx, by)
		gc.LineTo(cx, cy)
		gc.Close()
		gc.Fill()
	}

	gc.SetLineWidth(1)
	for _, e := range edges {
		ax, ay := to(e.A)
		bx, by := to(e.B)
		switch {
		case e.Constrained:
			gc.SetStrokeColor(color.RGBA{0, 0, 0xcc, 0xff})
			gc.SetLineWidth(2)
		case e.Boundary:
			gc.SetStrokeColor(color.RGBA{0xcc, 0, 0, 0xff})
			gc.SetLineWidth(1)
		default:
			gc.SetStrokeColor(color.RGBA{0, 0, 0, 0xff})
			gc.SetLineWidth(1)
		}
		gc.MoveTo(ax, ay)
		gc.LineTo(bx, by)
		gc.Stroke()
	}

	return dest
}
