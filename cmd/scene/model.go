package scene

import "time"

// Light is one orbiting light as it should be drawn this frame.
type Light struct {
	Position  Vec3
	Color     RGB
	Intensity float64
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	Target    Vec3
	Lights    [LightCount]Light
	Palette   Palette
	Effects   Effects
	Glow      float64
	Scale     float64
	Emission  float64
	Camera    Vec3
	IntroDone bool
}

// Model composes the scene state over time.
type Model struct {
	Knobs          Knobs
	Target         *Target
	Constrained    bool
	LowPerformance bool

	followers [LightCount]Follower
	intro     CameraIntro
	introDone bool
}

func NewModel(constrained, lowPerf bool) *Model {
	return &Model{
		Knobs:          DefaultKnobs(),
		Target:         NewTarget(),
		Constrained:    constrained,
		LowPerformance: lowPerf,
		intro:          NewCameraIntro(),
	}
}

// IntroDone reports whether the camera intro has completed.
func (m *Model) IntroDone() bool {
	return m.introDone
}

// SkipIntro jumps the camera to its resting position.
func (m *Model) SkipIntro() {
	m.introDone = true
}

// Frame advances the lights by one frame at time t and composes the result.
// t is the elapsed time since the scene became ready.
func (m *Model) Frame(t time.Duration, levels Levels, listening bool) Frame {
	secs := t.Seconds()
	k := m.Knobs.Clamp()
	target := m.Target.Effective()
	palette := ColorPalette(k.Shu, k.Phi, k.Theta)
	base := BaseIntensity(k.Shu)
	mult := AudioMultiplier(k.Shu)

	f := Frame{
		Target:   target,
		Palette:  palette,
		Effects:  DerivedEffects(k.Phi, k.Theta),
		Glow:     StatueGlow(k.Shu, m.Constrained),
		Scale:    StatueScale(secs, k.Shu),
		Emission: LightEmission(k.Shu),
	}

	for i := range m.followers {
		goal := target.Add(OrbitOffset(i, secs, k.Phi, m.LowPerformance))
		intensity := LightIntensity(base, levels.Volume, mult, listening, m.Constrained)
		if m.LowPerformance {
			intensity = LowPerfIntensity(base)
		}
		f.Lights[i] = Light{
			Position:  m.followers[i].Step(goal),
			Color:     palette.Colors[i],
			Intensity: intensity,
		}
	}

	if m.introDone {
		f.Camera, f.IntroDone = m.intro.To, true
	} else {
		f.Camera, f.IntroDone = m.intro.Position(t)
		m.introDone = f.IntroDone
	}
	return f
}
