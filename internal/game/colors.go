package game

import (
	"image/color"
	"math"
)

// Palette generates n evenly spaced candy-style piece colours: hues spread
// around the wheel at medium saturation and high brightness. All entries
// are fully opaque, so none can collide with the empty cell marker.
func Palette(n int) []color.RGBA {
	colors := make([]color.RGBA, 0, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hsvToRGB(hue, 0.6, 0.9)
		colors = append(colors, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return colors
}

// hsvToRGB converts hue/saturation/value (all in [0,1]) to 8-bit RGB.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
