// Package vector
// Author: momentics <momentics@gmail.com>
//
// Vector2 is a 2-D quantity generic over its component type. Operations that
// need more than +, - and * are free functions whose type parameter carries
// the extra requirement, so Negated on a Vector2[uint] is a compile error,
// not a runtime one.

package vector

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any component type supporting +, - and *.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is any component type that can be negated.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Vector2 is a (DX, DY) pair.
type Vector2[C Number] struct {
	DX C
	DY C
}

// New is shorthand for Vector2[C]{dx, dy}.
func New[C Number](dx, dy C) Vector2[C] { return Vector2[C]{DX: dx, DY: dy} }

// Zero returns (0, 0).
func Zero[C Number]() Vector2[C] { return Vector2[C]{} }

// Add adds component-wise.
func (v Vector2[C]) Add(o Vector2[C]) Vector2[C] {
	return Vector2[C]{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

// Sub subtracts component-wise.
func (v Vector2[C]) Sub(o Vector2[C]) Vector2[C] {
	return Vector2[C]{DX: v.DX - o.DX, DY: v.DY - o.DY}
}

// Scale multiplies both components by k.
func (v Vector2[C]) Scale(k C) Vector2[C] {
	return Vector2[C]{DX: v.DX * k, DY: v.DY * k}
}

func (v Vector2[C]) String() string {
	return fmt.Sprintf("Vector2(dx: %v, dy: %v)", v.DX, v.DY)
}

// Map applies f to both components.
func Map[C, T Number](v Vector2[C], f func(C) T) Vector2[T] {
	return Vector2[T]{DX: f(v.DX), DY: f(v.DY)}
}

// Negated flips the sign of both components.
func Negated[C Signed](v Vector2[C]) Vector2[C] {
	return Map(v, func(c C) C { return -c })
}

// Magnitude is sqrt(dx² + dy²).
func Magnitude[C constraints.Float](v Vector2[C]) C {
	return C(math.Sqrt(float64(v.DX*v.DX + v.DY*v.DY)))
}

// Infinity returns (+Inf, +Inf).
func Infinity[C constraints.Float]() Vector2[C] {
	inf := C(math.Inf(1))
	return Vector2[C]{DX: inf, DY: inf}
}

// Direction is the angle of v in radians, counter-clockwise from +x.
// atan alone covers (-π/2, π/2); vectors pointing left get π added.
func Direction(v Vector2[float64]) float64 {
	if v.DX < 0 {
		return math.Pi + math.Atan(v.DY/v.DX)
	}
	return math.Atan(v.DY / v.DX)
}

// Angle is the direction of other relative to v, in radians.
func Angle(v, other Vector2[float64]) float64 {
	return Direction(other) - Direction(v)
}

// Interpolate moves from a towards b by ratio (0 → a, 1 → b).
func Interpolate[C constraints.Float](a, b Vector2[C], ratio C) Vector2[C] {
	return a.Add(b.Sub(a).Scale(ratio))
}

// RadiansToDegrees converts an angle.
func RadiansToDegrees[F constraints.Float](r F) F {
	return r * 180 / math.Pi
}

// SameSign reports whether a and b are both negative or both non-negative.
func SameSign[S Signed](a, b S) bool {
	return (a < 0 && b < 0) || (a >= 0 && b >= 0)
}
