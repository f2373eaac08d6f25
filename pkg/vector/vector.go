// pkg/vector/vector.go
package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned by the angle operations when both components are zero.
var ErrZeroVector = errors.New("zero vector")

// Vector represents a 2D vector with x and y components
type Vector struct {
	X float64
	Y float64
}

// New creates a vector from its components
func New(x, y float64) *Vector {
	return &Vector{X: x, Y: y}
}

// Zero creates the zero vector
func Zero() *Vector {
	return &Vector{}
}

// Copy creates an independent copy of another vector
func Copy(other Vector) *Vector {
	return New(other.X, other.Y)
}

// smallestNormal is the smallest positive normal float64
const smallestNormal = 0x1p-1022

// Length returns the magnitude of the vector.
// Squares that overflow or underflow fall back to math.Hypot.
func (v Vector) Length() float64 {
	sq := v.X*v.X + v.Y*v.Y
	if math.IsInf(sq, 1) || (sq < smallestNormal && !v.IsZero()) {
		return math.Hypot(v.X, v.Y)
	}
	return math.Sqrt(sq)
}

// Add adds other to the vector in place
func (v *Vector) Add(other Vector) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts other from the vector in place
func (v *Vector) Sub(other Vector) {
	v.X -= other.X
	v.Y -= other.Y
}

// MulComponents multiplies each component by the matching component of other
// in place. The result is the Hadamard product, not a dot product.
func (v *Vector) MulComponents(other Vector) {
	v.X *= other.X
	v.Y *= other.Y
}

// AngleToXAxis returns the angle between the vector and the 0X axis in degrees
func (v Vector) AngleToXAxis() (float64, error) {
	if v.IsZero() {
		return 0, ErrZeroVector
	}
	return toDegrees(math.Acos(v.X / v.Length())), nil
}

// AngleToYAxis returns the angle between the vector and the 0Y axis in degrees
func (v Vector) AngleToYAxis() (float64, error) {
	if v.IsZero() {
		return 0, ErrZeroVector
	}
	return toDegrees(math.Acos(v.Y / v.Length())), nil
}

// IsZero reports whether both components are exactly zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal reports whether both components differ by at most tolerance
func (v Vector) Equal(other Vector, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance && math.Abs(v.Y-other.Y) <= tolerance
}

// String renders the vector as "( X; Y)"
func (v Vector) String() string {
	return fmt.Sprintf("( %v; %v)", v.X, v.Y)
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
