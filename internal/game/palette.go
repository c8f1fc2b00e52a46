package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Clear  RGB
	Tint   RGB // untinted sprites
	Time   RGB
	Record RGB
	Over   RGB
	Retry  RGB
}{
	Clear:  RGB{R: 0, G: 0, B: 0},
	Tint:   RGB{R: 255, G: 255, B: 255},
	Time:   RGB{R: 255, G: 255, B: 255},
	Record: RGB{R: 255, G: 215, B: 0},
	Over:   RGB{R: 255, G: 0, B: 0},
	Retry:  RGB{R: 255, G: 255, B: 255},
}
