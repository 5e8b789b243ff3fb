package color

import "math"

// RGBToHSV преобразует RGB (0-255) в HSV: H в градусах (0-360), S и V в диапазоне 0-1
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC

	if maxC == 0 {
		s = 0
	} else {
		s = diff / maxC
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = 60 * math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = 60 * ((b-r)/diff + 2)
	} else {
		h = 60 * ((r-g)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	return h, s, v
}

// NormalizeHue приводит произвольный оттенок к диапазону [0, 360)
func NormalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return h
}
