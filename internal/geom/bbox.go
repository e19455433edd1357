package geom

// BBoxOf returns the bounding box of pts. ok is false for an empty slice.
func BBoxOf(pts []Point) (bbox BBox, ok bool) {
	for i, p := range pts {
		if i == 0 {
			bbox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			continue
		}
		bbox = bbox.Extend(p)
	}
	return bbox, len(pts) > 0
}

// Extend grows b so that it covers p.
func (b BBox) Extend(p Point) BBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Valid reports whether the box has a positive area.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Square expands the shorter side of b around its center so both sides match.
// Plots drawn into a square box keep equal axis scaling.
func (b BBox) Square() BBox {
	w, h := b.Width(), b.Height()
	switch {
	case w > h:
		d := (w - h) / 2
		b.MinY -= d
		b.MaxY += d
	case h > w:
		d := (h - w) / 2
		b.MinX -= d
		b.MaxX += d
	}
	return b
}
