package rosette

import "github.com/lucasb-eyer/go-colorful"

// Sample is one vertex of a polyline together with its colour.
type Sample struct {
	Point     Point
	Intensity float64
	Color     colorful.Color
}

// Curve is an ordered polyline; consecutive samples are connected.
type Curve []Sample

// Points returns the positions of c without their colours.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c))
	for i, s := range c {
		pts[i] = s.Point
	}
	return pts
}

// GenerateCurve samples the curve of the given kind at every angle, keeping
// the order of angles.
func GenerateCurve(kind Kind, angles []int, p Params, cm ColorMap) Curve {
	c := make(Curve, len(angles))
	for i, a := range angles {
		c[i] = cm.At(PointAt(a, kind, p))
	}
	return c
}

// FullRevolution returns the angles 0 through 360, both ends included, so
// the polyline closes on itself.
func FullRevolution() []int {
	return Window(0, 361)
}

// Window returns width consecutive angles starting at frame mod 360.
func Window(frame, width int) []int {
	if width <= 0 {
		return nil
	}
	start := frame % 360
	if start < 0 {
		start += 360
	}
	angles := make([]int, width)
	for i := range angles {
		angles[i] = start + i
	}
	return angles
}

// Generator bundles validated parameters with a colour map.
type Generator struct {
	params Params
	colors ColorMap
}

// NewGenerator returns a Generator, or an error wrapping ErrInvalidParameter
// if p or cm is unusable.
func NewGenerator(p Params, cm ColorMap) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := cm.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: p, colors: cm}, nil
}

func (g *Generator) Params() Params     { return g.params }
func (g *Generator) ColorMap() ColorMap { return g.colors }

func (g *Generator) PointAt(angle int, kind Kind) Point {
	return PointAt(angle, kind, g.params)
}

func (g *Generator) Curve(kind Kind, angles []int) Curve {
	return GenerateCurve(kind, angles, g.params, g.colors)
}
