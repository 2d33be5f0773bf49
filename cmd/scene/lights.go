package scene

import "math"

const (
	LightCount = 3

	// FollowFactor is how far a light closes the gap to its orbit point each
	// frame.
	FollowFactor = 0.02
)

// OrbitOffset is where light index wants to be relative to the target at
// time t (seconds).
func OrbitOffset(index int, t, phi float64, lowPerf bool) Vec3 {
	i := float64(index)
	if lowPerf {
		a := t*0.2 + i
		return Vec3{math.Cos(a) * 1.5, 0.5, math.Sin(a) * 1.5}
	}

	angle := t*0.3 + i*2*math.Pi/3
	radius := 1.2 + phi*0.3 + math.Sin(t*0.5)*0.1
	return Vec3{
		X: math.Cos(angle) * radius,
		Y: math.Sin(t*0.4+i*1.5) * 0.5,
		Z: math.Sin(angle) * radius,
	}
}

// Follower lags a light behind its orbit point.
type Follower struct {
	Pos Vec3
}

// Step moves one frame toward goal and returns the new position.
func (f *Follower) Step(goal Vec3) Vec3 {
	f.Pos = f.Pos.Lerp(goal, FollowFactor)
	return f.Pos
}

func BaseIntensity(shu float64) float64 {
	return shu/ShuMax*3.5 + 0.5
}

func AudioMultiplier(shu float64) float64 {
	return shu/ShuMax*1.95 + 0.65
}

// LightIntensity is the full-mode brightness of a light.
func LightIntensity(base, volume, mult float64, listening, constrained bool) float64 {
	v := base
	if listening {
		v += volume * mult
	}
	if constrained {
		v *= 0.7
	}
	return v
}

// LowPerfIntensity ignores audio entirely.
func LowPerfIntensity(base float64) float64 {
	return base * 0.5
}

func StatueGlow(shu float64, constrained bool) float64 {
	g := 1 + 2*shu
	if constrained {
		g *= 0.3
	}
	return g
}

// StatueScale is the statue's slow breathing.
func StatueScale(t, shu float64) float64 {
	return 1 + math.Sin(t*0.5)*0.1*shu/ShuMax
}

func LightEmission(shu float64) float64 {
	return shu / ShuMax * 2
}

// Effects are the statue's surface distortions.
type Effects struct {
	Noise float64
	Wave  float64
	Morph float64
	Bulge float64
}

func DerivedEffects(phi, theta float64) Effects {
	return Effects{Noise: phi, Wave: phi, Morph: theta, Bulge: theta}
}
