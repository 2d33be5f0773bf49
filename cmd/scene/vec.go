// Package scene is the parameter model behind the cave: knobs, palettes,
// orbiting lights, audio smoothing and the intro camera. Everything here is
// pure and driven by the caller's clock.
package scene

import "math"

// Vec3 is a point or direction in scene space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Lerp moves v toward o by fraction f.
func (v Vec3) Lerp(o Vec3, f float64) Vec3 {
	return Vec3{Smooth(v.X, o.X, f), Smooth(v.Y, o.Y, f), Smooth(v.Z, o.Z, f)}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Smooth is linear interpolation: prev + (target-prev)*f.
func Smooth(prev, target, f float64) float64 {
	return prev + (target-prev)*f
}
