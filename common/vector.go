package common

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/exp/constraints"
)

// Number is any integer or float type a Vector2 can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector2 is a 2-component value. Methods never modify the receiver; they
// return a new vector so a value read by one component can't change under it.
type Vector2[T Number] struct {
	X T
	Y T
}

func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vector2[T]) Scale(k T) Vector2[T] {
	return Vector2[T]{X: v.X * k, Y: v.Y * k}
}

// Mul multiplies componentwise.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vector2[T]) WithX(x T) Vector2[T] {
	return Vector2[T]{X: x, Y: v.Y}
}

func (v Vector2[T]) WithY(y T) Vector2[T] {
	return Vector2[T]{X: v.X, Y: y}
}

func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the Euclidean length as float64 for any component type.
func (v Vector2[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Convert changes the component type, truncating toward zero when the
// destination is an integer type.
func Convert[U, T Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{X: U(v.X), Y: U(v.Y)}
}

// Distance returns the Euclidean distance between points of possibly
// different component types.
func Distance[T, U Number](a Vector2[T], b Vector2[U]) float64 {
	return math.Hypot(float64(a.X)-float64(b.X), float64(a.Y)-float64(b.Y))
}

func ToCP(v Vector2[float64]) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func FromCP(v cp.Vector) Vector2[float64] {
	return Vector2[float64]{X: v.X, Y: v.Y}
}

// ClampToBB clamps v into bb per axis. bb may be y-down (B above T on
// screen) as long as B <= T numerically. When an axis is inverted the
// result is the upper bound, matching cp.Clamp.
func ClampToBB(v Vector2[float64], bb cp.BB) Vector2[float64] {
	return Vec2(cp.Clamp(v.X, bb.L, bb.R), cp.Clamp(v.Y, bb.B, bb.T))
}
