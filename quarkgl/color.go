package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// RGBf converts unit-range channels to a Color, clamping to [0,1].
func RGBf(r, g, b, a float32) Color {
	return Color{R: UnitToByte(r), G: UnitToByte(g), B: UnitToByte(b), A: UnitToByte(a)}
}

// UnitToByte maps [0,1] to [0,255], rounding and clamping.
func UnitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
