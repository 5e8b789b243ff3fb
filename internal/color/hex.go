package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat возвращается для некорректного hex цвета
var ErrInvalidColorFormat = errors.New("invalid hex color format")

// HexToHue преобразует hex цвет в оттенок HSV в градусах (0-360).
// Принимает форматы "#RRGGBB", "RRGGBB", "#RGB" и "RGB" без учета регистра.
// Трехсимвольная форма расширяется дублированием каждой цифры ("F80" -> "FF8800").
func HexToHue(hexColor string) (float64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")

	switch len(s) {
	case 3:
		var expanded strings.Builder
		for _, c := range s {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		s = expanded.String()
	case 6:
		// Уже полная форма
	default:
		return 0, fmt.Errorf("%w: length must be 3 or 6, got %d", ErrInvalidColorFormat, len(s))
	}

	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, hexColor)
	}

	r := float64((value >> 16) & 0xFF)
	g := float64((value >> 8) & 0xFF)
	b := float64(value & 0xFF)

	h, _, _ := RGBToHSV(r, g, b)
	return h, nil
}
