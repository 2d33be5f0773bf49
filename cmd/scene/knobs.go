package scene

import (
	"fmt"
	"math"
)

const (
	ShuMax   = 4.0
	PhiMax   = 2.0
	ThetaMax = 5.0

	// Step is how far one key press turns a knob.
	Step = 0.1
)

// Knobs are the three listener-controlled dials.
type Knobs struct {
	Shu   float64 // Light strength, statue glow and breathing [0,4]
	Phi   float64 // Orbit radius, noise and wave distortion [0,2]
	Theta float64 // Morph and bulge [0,5]
}

func DefaultKnobs() Knobs {
	return Knobs{Shu: 0, Phi: 0, Theta: 0.6}
}

// Clamp returns k with every knob inside its range.
func (k Knobs) Clamp() Knobs {
	return Knobs{
		Shu:   clamp(k.Shu, 0, ShuMax),
		Phi:   clamp(k.Phi, 0, PhiMax),
		Theta: clamp(k.Theta, 0, ThetaMax),
	}
}

// Normalized returns each knob divided by its max.
func (k Knobs) Normalized() (shu, phi, theta float64) {
	return k.Shu / ShuMax, k.Phi / PhiMax, k.Theta / ThetaMax
}

// Knob identifies one dial.
type Knob int

const (
	KnobShu Knob = iota
	KnobPhi
	KnobTheta
)

func (k Knob) String() string {
	switch k {
	case KnobShu:
		return "Shu"
	case KnobPhi:
		return "Phi"
	case KnobTheta:
		return "Theta"
	default:
		return fmt.Sprintf("Knob(%d)", int(k))
	}
}

// Turn moves one knob by steps and clamps. Results are rounded to the step
// grid so repeated presses do not accumulate float error.
func (k Knobs) Turn(which Knob, steps int) Knobs {
	delta := float64(steps) * Step
	switch which {
	case KnobShu:
		k.Shu = roundStep(k.Shu + delta)
	case KnobPhi:
		k.Phi = roundStep(k.Phi + delta)
	case KnobTheta:
		k.Theta = roundStep(k.Theta + delta)
	}
	return k.Clamp()
}

func (k Knobs) Value(which Knob) float64 {
	switch which {
	case KnobShu:
		return k.Shu
	case KnobPhi:
		return k.Phi
	case KnobTheta:
		return k.Theta
	}
	return 0
}

// ThetaColor is the label tint for the theta dial.
func ThetaColor(theta float64) RGB {
	n := clamp(theta, 0, ThetaMax) / ThetaMax
	return RGB{
		R: uint8(math.Floor(n * 128)),
		G: uint8(math.Floor(255 - n*255)),
		B: uint8(math.Floor(n * 255)),
	}
}

func roundStep(v float64) float64 {
	return math.Round(v/Step) * Step
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
