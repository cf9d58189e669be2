// SPDX-License-Identifier: MIT

// Package linalg - fixed-size vectors.
//
// Vector[D] is a value type: every operation returns a new Vector and leaves
// its operands untouched. Copying is plain assignment. The zero value is the
// zero vector. Components are named x, y, z, w in that order.

package linalg

import (
	"math"
	"strconv"
)

// Vector is an N-component float64 tuple, N given by the dimension tag D.
type Vector[D Dim] struct {
	c [maxDim]float64 // components; c[N:] is always zero
}

// Vector2 is a two-component vector (x, y).
type Vector2 = Vector[D2]

// Vector3 is a three-component vector (x, y, z).
type Vector3 = Vector[D3]

// Vector4 is a four-component vector (x, y, z, w).
type Vector4 = Vector[D4]

// Vec2 returns the vector (x, y).
func Vec2(x, y float64) Vector2 {
	return Vector2{c: [maxDim]float64{x, y}}
}

// Vec3 returns the vector (x, y, z).
func Vec3(x, y, z float64) Vector3 {
	return Vector3{c: [maxDim]float64{x, y, z}}
}

// Vec4 returns the vector (x, y, z, w).
func Vec4(x, y, z, w float64) Vector4 {
	return Vector4{c: [maxDim]float64{x, y, z, w}}
}

// NewVector builds a Vector[D] from exactly N components.
// Returns the zero vector and ErrInvalidArgumentCount on any other count.
func NewVector[D Dim](components ...float64) (Vector[D], error) {
	n := sizeOf[D]()
	if len(components) != n {
		return Vector[D]{}, countErrorf(opNewVector, len(components), strconv.Itoa(n))
	}
	var v Vector[D]
	copy(v.c[:n], components)

	return v, nil
}

// Splat returns a Vector[D] with every component set to d.
func Splat[D Dim](d float64) Vector[D] {
	var v Vector[D]
	ewFill(v.c[:v.Dim()], d)

	return v
}

// Dim returns the number of components N.
func (v Vector[D]) Dim() int { return sizeOf[D]() }

// X returns the first component.
func (v Vector[D]) X() float64 { return v.c[0] }

// Y returns the second component.
func (v Vector[D]) Y() float64 { return v.c[1] }

// Z returns the third component, or 0 for a Vector2.
func (v Vector[D]) Z() float64 { return v.c[2] }

// W returns the fourth component, or 0 below four dimensions.
func (v Vector[D]) W() float64 { return v.c[3] }

// Component returns component i, or ErrIndexOutOfRange when i is outside [0, N-1].
func (v Vector[D]) Component(i int) (float64, error) {
	if i < 0 || i >= v.Dim() {
		return 0, opErrorf(opComponent, strconv.Itoa(i), ErrIndexOutOfRange)
	}

	return v.c[i], nil
}

// Components returns a fresh slice holding the N components.
func (v Vector[D]) Components() []float64 {
	out := make([]float64, v.Dim())
	copy(out, v.c[:])

	return out
}

// Plus returns v + u.
func (v Vector[D]) Plus(u Vector[D]) Vector[D] {
	var out Vector[D]
	ewAdd(out.c[:v.Dim()], v.c[:], u.c[:])

	return out
}

// Minus returns v - u.
func (v Vector[D]) Minus(u Vector[D]) Vector[D] {
	var out Vector[D]
	ewSub(out.c[:v.Dim()], v.c[:], u.c[:])

	return out
}

// Negative returns -v.
func (v Vector[D]) Negative() Vector[D] {
	return v.Scale(-1)
}

// Scale returns v with every component multiplied by factor.
func (v Vector[D]) Scale(factor float64) Vector[D] {
	var out Vector[D]
	ewScale(out.c[:v.Dim()], v.c[:], factor)

	return out
}

// Dot returns the dot product of v and u.
func (v Vector[D]) Dot(u Vector[D]) float64 {
	n := v.Dim()
	return ewDot(v.c[:n], u.c[:n])
}

// Length returns the Euclidean norm of v.
func (v Vector[D]) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v divided by its length.
// A zero-length v is not guarded: the result has NaN components.
func (v Vector[D]) Normalize() Vector[D] {
	var out Vector[D]
	ewDiv(out.c[:v.Dim()], v.c[:], v.Length())

	return out
}

// ApproxEqual reports whether every component of v is within the configured
// tolerance (DefaultEpsilon unless WithEpsilon is given) of the one in u.
func (v Vector[D]) ApproxEqual(u Vector[D], opts ...Option) bool {
	o := gatherOptions(opts...)
	n := v.Dim()

	return ewClose(v.c[:n], u.c[:n], o.eps)
}
