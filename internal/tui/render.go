package tui

import (
	"strings"

	"sierpinski/internal/geom"
	"sierpinski/internal/ifs"
)

// plotMargin is the share of the data box left empty on every side.
const plotMargin = 0.05

// view is the pan and zoom state of a plot.
type view struct {
	zoom    float64
	offsetX int
	offsetY int
}

// plotSize returns the largest cell area inside w×h whose braille dot grid is
// square, so x and y share one scale.
func plotSize(w, h int) (int, int) {
	side := min(w*2, h*4)
	side -= side % 4
	return side / 2, side / 4
}

// plotBox squares the data box and pads it by plotMargin.
func plotBox(bounds geom.BBox) geom.BBox {
	b := bounds.Square()
	pad := b.Width() * plotMargin
	if pad == 0 {
		pad = 0.5
	}
	b.MinX -= pad
	b.MinY -= pad
	b.MaxX += pad
	b.MaxY += pad
	return b
}

// plotViewport is the projection renderPlot uses for a w×h area. ok is false
// when the area is too small to hold a plot.
func plotViewport(bounds geom.BBox, w, h int, v view) (vp geom.Viewport, ok bool) {
	cw, ch := plotSize(w, h)
	if cw < 1 || ch < 1 {
		return vp, false
	}
	return geom.Viewport{
		BBox:    plotBox(bounds),
		W:       cw,
		H:       ch,
		Zoom:    v.zoom,
		OffsetX: v.offsetX,
		OffsetY: v.offsetY,
	}, true
}

// renderPlot draws pts as a braille scatter plot with an axes frame around
// bounds. The result has at most w columns and h rows.
func renderPlot(pts ifs.PointSet, bounds geom.BBox, w, h int, v view) string {
	vp, ok := plotViewport(bounds, w, h, v)
	if !ok {
		return ""
	}
	c := newCanvas(vp.W, vp.H)

	// axes frame
	corners := []geom.Point{
		{X: vp.BBox.MinX, Y: vp.BBox.MinY},
		{X: vp.BBox.MaxX, Y: vp.BBox.MinY},
		{X: vp.BBox.MaxX, Y: vp.BBox.MaxY},
		{X: vp.BBox.MinX, Y: vp.BBox.MaxY},
	}
	for i := range corners {
		x0, y0, ok0 := vp.Micro(corners[i])
		x1, y1, ok1 := vp.Micro(corners[(i+1)%len(corners)])
		if ok0 && ok1 {
			c.line(x0, y0, x1, y1)
		}
	}

	for _, p := range pts {
		mx, my, ok := vp.Micro(p)
		if !ok {
			continue
		}
		c.set(mx, my)
	}
	return strings.Join(c.lines(), "\n")
}
