package scene

import (
	"math"
	"time"
)

const (
	IntroDuration = 3 * time.Second

	// FieldOfView is the vertical field of view in degrees.
	FieldOfView = 50.0
)

var (
	IntroStart = Vec3{0, 15, 0}
	IntroEnd   = Vec3{1.2, 1.0, 5.4}
	LookAt     = Vec3{-0.53, -0.08, -6}
)

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

// CameraIntro is the descent from above the cave down to the viewing spot.
type CameraIntro struct {
	Duration time.Duration
	From, To Vec3
}

func NewCameraIntro() CameraIntro {
	return CameraIntro{Duration: IntroDuration, From: IntroStart, To: IntroEnd}
}

// Position returns the camera position after elapsed and whether the intro
// has finished.
func (c CameraIntro) Position(elapsed time.Duration) (Vec3, bool) {
	if c.Duration <= 0 || elapsed >= c.Duration {
		return c.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := EaseInOutCubic(float64(elapsed) / float64(c.Duration))
	return c.From.Lerp(c.To, p), false
}

// PickPlane casts a ray from the camera through a screen point and returns
// where it meets the plane z = depth. ndcX and ndcY run from -1 to 1 with y
// up; aspect is width over height.
func PickPlane(camera Vec3, ndcX, ndcY, aspect, depth float64) (Vec3, bool) {
	forward := LookAt.Sub(camera).Normalize()
	right := forward.Cross(Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)

	h := math.Tan(FieldOfView * math.Pi / 360)
	dir := forward.
		Add(right.Scale(ndcX * h * aspect)).
		Add(up.Scale(ndcY * h))

	if dir.Z == 0 {
		return Vec3{}, false
	}
	t := (depth - camera.Z) / dir.Z
	if t <= 0 {
		return Vec3{}, false
	}
	return camera.Add(dir.Scale(t)), true
}

// Project maps a scene point to screen coordinates for a camera looking at
// LookAt. It is the inverse of PickPlane; ok is false for points behind the
// camera.
func Project(camera, p Vec3, aspect float64) (ndcX, ndcY float64, ok bool) {
	forward := LookAt.Sub(camera).Normalize()
	right := forward.Cross(Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)

	rel := p.Sub(camera)
	depth := dot(rel, forward)
	if depth <= 0 {
		return 0, 0, false
	}
	h := math.Tan(FieldOfView * math.Pi / 360)
	ndcX = dot(rel, right) / depth / (h * aspect)
	ndcY = dot(rel, up) / depth / h
	return ndcX, ndcY, true
}

func dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
