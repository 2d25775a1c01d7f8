package main

import "math"

// Vec3 is a point or direction in scene space. X goes from the spawn side
// (negative) towards the exit side (positive), Y is the lateral offset and Z
// is the depth offset. The portal sits at X = 0.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v *Vec3) Add(other Vec3) {
	v.X = v.X + other.X
	v.Y = v.Y + other.Y
	v.Z = v.Z + other.Z
}

func (v Vec3) Plus(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Minus(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) Times(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) SquaredLen() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.SquaredLen())
}

func (v Vec3) To(other Vec3) Vec3 {
	return Vec3{other.X - v.X, other.Y - v.Y, other.Z - v.Z}
}
