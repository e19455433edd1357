package geom

// Viewport maps plane coordinates onto a w×h grid of terminal cells, with
// zoom applied around the center and a pan offset counted in cells.
type Viewport struct {
	BBox    BBox
	W, H    int
	Zoom    float64
	OffsetX int
	OffsetY int
}

// normalize returns p relative to the box in [0,1] before zoom is applied.
func (v Viewport) normalize(p Point) (float64, float64, bool) {
	if !v.BBox.Valid() {
		return 0, 0, false
	}
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	nx := (p.X - v.BBox.MinX) / v.BBox.Width()
	ny := (p.Y - v.BBox.MinY) / v.BBox.Height()
	// zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*zoom
	zy := 0.5 + (ny-0.5)*zoom
	return zx, zy, true
}

// Micro maps p into a 2x4 microgrid per cell for braille rendering.
func (v Viewport) Micro(p Point) (int, int, bool) {
	zx, zy, ok := v.normalize(p)
	if !ok {
		return 0, 0, false
	}
	wMic := v.W * 2
	hMic := v.H * 4
	sx := int(zx*float64(wMic-1)) + v.OffsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + v.OffsetY*4
	return sx, sy, true
}

// Point converts a cell coordinate back to plane coordinates. It inverts the
// projection used by Micro at cell granularity.
func (v Viewport) Point(cx, cy int) (Point, bool) {
	if !v.BBox.Valid() || v.W <= 1 || v.H <= 1 {
		return Point{}, false
	}
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	zx := float64(cx-v.OffsetX) / float64(v.W-1)
	zy := 1.0 - float64(cy-v.OffsetY)/float64(v.H-1)
	nx := 0.5 + (zx-0.5)/zoom
	ny := 0.5 + (zy-0.5)/zoom
	return Point{
		X: v.BBox.MinX + nx*v.BBox.Width(),
		Y: v.BBox.MinY + ny*v.BBox.Height(),
	}, true
}
