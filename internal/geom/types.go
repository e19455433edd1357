package geom

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// BBox is an axis-aligned box. MinX/MinY is the lower-left corner.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}
