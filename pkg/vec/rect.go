package vec

// Rect is an axis-aligned box. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Vec
}

// RectCentered builds a box of the given size around center.
func RectCentered(center, size Vec) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

// Contains reports whether the point lies inside the box.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union is the smallest box enclosing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Vec{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}
