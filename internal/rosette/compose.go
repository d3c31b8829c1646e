package rosette

// Layer is one polyline drawn every frame.
type Layer struct {
	Kind   Kind
	Weight float64
	// Width is the sliding window size in degrees; 0 draws a full revolution.
	Width int
}

// Angles returns the sweep of l at frame.
func (l Layer) Angles(frame int) []int {
	if l.Width == 0 {
		return FullRevolution()
	}
	return Window(frame, l.Width)
}

// Stroke is a computed layer ready for a renderer.
type Stroke struct {
	Kind   Kind
	Weight float64
	Curve  Curve
}

// Compose computes every layer for frame, in layer order.
func Compose(g *Generator, frame int, layers []Layer) []Stroke {
	strokes := make([]Stroke, 0, len(layers))
	for _, l := range layers {
		strokes = append(strokes, Stroke{
			Kind:   l.Kind,
			Weight: l.Weight,
			Curve:  g.Curve(l.Kind, l.Angles(frame)),
		})
	}
	return strokes
}
