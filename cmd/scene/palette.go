package scene

import "fmt"

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Palette holds one color per orbiting light.
type Palette struct {
	Name   string
	Colors [3]RGB
}

var (
	PaletteA = Palette{"A", [3]RGB{hex(0xff0080), hex(0x00ff80), hex(0x8000ff)}}
	PaletteB = Palette{"B", [3]RGB{hex(0x80ffff), hex(0xff8080), hex(0x80ff80)}}
	PaletteC = Palette{"C", [3]RGB{hex(0xffff00), hex(0xff00ff), hex(0x00ffff)}}
	PaletteD = Palette{"D", [3]RGB{hex(0xff8000), hex(0x8000ff), hex(0x00ff00)}}
	PaletteE = Palette{"E", [3]RGB{hex(0x8000ff), hex(0x00ff00), hex(0xff8000)}}
)

// ColorPalette picks the light colors. The first matching rule wins, so a
// high Shu overrides everything else.
func ColorPalette(shu, phi, theta float64) Palette {
	nShu, nPhi, nTheta := Knobs{shu, phi, theta}.Normalized()
	switch {
	case nShu > 0.7:
		return PaletteA
	case nPhi > 0.7:
		return PaletteB
	case nTheta > 0.7:
		return PaletteC
	case nShu > 0.3 || nPhi > 0.3 || nTheta > 0.3:
		return PaletteD
	default:
		return PaletteE
	}
}
