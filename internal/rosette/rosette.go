// Package rosette generates the inner and outer rosette polylines drawn by the
// visualizer. Everything here is a pure function of its inputs; hosts own the
// animation state and hand a snapshot of it in every frame.
package rosette

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when parameters cannot describe a rosette.
var ErrInvalidParameter = errors.New("rosette: invalid parameter")

// Params describes one rosette. N sets the lobe count, D the angular stretch
// of the inner curve and Radius the maximum distance from the centre.
type Params struct {
	N      float64
	D      float64
	Radius float64
}

// Validate reports whether p can be used to generate curves.
func (p Params) Validate() error {
	switch {
	case !finite(p.N):
		return fmt.Errorf("%w: n=%v", ErrInvalidParameter, p.N)
	case !finite(p.D):
		return fmt.Errorf("%w: d=%v", ErrInvalidParameter, p.D)
	case !finite(p.Radius) || p.Radius <= 0:
		return fmt.Errorf("%w: radius=%v", ErrInvalidParameter, p.Radius)
	}
	return nil
}

// Kind selects which of the two curves a point belongs to.
type Kind int

const (
	Inner Kind = iota
	Outer
)

func (k Kind) String() string {
	switch k {
	case Inner:
		return "inner"
	case Outer:
		return "outer"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Factor is the angular stretch applied before the radius is evaluated.
func (k Kind) Factor(p Params) float64 {
	if k == Inner {
		return p.D
	}
	return 1
}

// Point is a position relative to the rosette centre, y pointing up.
type Point struct {
	X, Y float64
}

// Dist returns the distance from the origin.
func (p Point) Dist() float64 {
	return math.Hypot(p.X, p.Y)
}

// PointAt returns the point of the given curve at angle degrees.
func PointAt(angle int, kind Kind, p Params) Point {
	k := float64(angle) * kind.Factor(p)
	r := p.Radius * sinDeg(k*p.N)
	return Point{
		X: sinDeg(k) * r,
		Y: cosDeg(k) * r,
	}
}

// reduce keeps large products of angle and stretch within one turn so the
// conversion to radians doesn't lose precision.
func reduce(deg float64) float64 {
	return math.Mod(deg, 360) * math.Pi / 180
}

func sinDeg(deg float64) float64 { return math.Sin(reduce(deg)) }
func cosDeg(deg float64) float64 { return math.Cos(reduce(deg)) }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
