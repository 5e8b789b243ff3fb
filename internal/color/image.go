package color

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	_ "image/gif"  // Регистрация GIF декодера
	_ "image/jpeg" // Регистрация JPEG декодера
	_ "image/png"  // Регистрация PNG декодера

	_ "golang.org/x/image/bmp" // Регистрация BMP декодера
)

// ErrInvalidImageFormat возвращается для пустых или нераспознаваемых данных изображения
var ErrInvalidImageFormat = errors.New("invalid image format")

const (
	// DefaultHue оттенок по умолчанию (зеленый), используется при деградации анализа
	DefaultHue = 60.0

	// DefaultMaxDimension порог уменьшения изображения по большей стороне
	DefaultMaxDimension = 800

	// DefaultSampleStride шаг выборки пикселей по обеим осям
	DefaultSampleStride = 2

	// hueBucketWidth ширина корзины гистограммы оттенков на шкале 0-255
	hueBucketWidth = 5
)

// Extraction представляет результат извлечения доминирующего оттенка.
// Fallback=true означает, что изображение декодировано, но анализ
// деградировал до оттенка по умолчанию (60°).
type Extraction struct {
	Hue      float64 // Доминирующий оттенок в градусах (0-360)
	Fallback bool    // Использовано значение по умолчанию
	Pixels   int     // Количество проанализированных пикселей
}

// Options параметры извлечения доминирующего оттенка
type Options struct {
	MaxDimension int // Максимальный размер большей стороны, 0 - значение по умолчанию
	SampleStride int // Шаг выборки пикселей, 0 - значение по умолчанию
}

// ExtractDominantHue извлекает доминирующий оттенок из байтов изображения.
//
// Изображение декодируется, при необходимости уменьшается, затем пиксели
// выбираются с заданным шагом. Оттенок каждого пикселя переводится на
// 8-битную шкалу (0-255) и округляется до ближайшего кратного 5 для
// группировки близких оттенков. Побеждает корзина с наибольшим числом
// попаданий; при равенстве счетчиков выбирается корзина с меньшим
// значением оттенка. Итог переводится в градусы: bucket/255*360.
//
// Пустые или недекодируемые данные дают ErrInvalidImageFormat. Если после
// успешного декодирования не удалось собрать ни одной выборки, функция
// возвращает оттенок по умолчанию 60° с флагом Fallback вместо ошибки.
func ExtractDominantHue(data []byte, opts Options) (Extraction, error) {
	if len(data) == 0 {
		return Extraction{}, fmt.Errorf("%w: empty image data", ErrInvalidImageFormat)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", ErrInvalidImageFormat, err)
	}

	maxDimension := opts.MaxDimension
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	stride := opts.SampleStride
	if stride <= 0 {
		stride = DefaultSampleStride
	}

	img = downscale(img, maxDimension)

	counts := make(map[int]int)
	sampled := 0

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			h, _, _ := RGBToHSV(float64(r>>8), float64(g>>8), float64(b>>8))

			// Оттенок на 8-битной шкале, как в HSV представлении PIL
			hue8 := h / 360.0 * 255.0
			bucket := int(math.Round(hue8/hueBucketWidth)) * hueBucketWidth

			counts[bucket]++
			sampled++
		}
	}

	if sampled == 0 {
		return Extraction{Hue: DefaultHue, Fallback: true}, nil
	}

	dominant := dominantBucket(counts)
	return Extraction{
		Hue:    float64(dominant) / 255.0 * 360.0,
		Pixels: sampled,
	}, nil
}

// dominantBucket выбирает корзину с максимальным счетчиком.
// При равных счетчиках побеждает меньшее значение корзины,
// чтобы результат не зависел от порядка обхода map.
func dominantBucket(counts map[int]int) int {
	best := -1
	bestCount := -1
	for bucket, count := range counts {
		if count > bestCount || (count == bestCount && bucket < best) {
			best = bucket
			bestCount = count
		}
	}
	return best
}

// downscale уменьшает изображение, если его большая сторона превышает maxDimension.
// Используется фильтр CatmullRom, сохраняющий качество цветов при уменьшении.
func downscale(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	largest := width
	if height > largest {
		largest = height
	}
	if largest <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(largest)
	newWidth := int(math.Round(float64(width) * scale))
	newHeight := int(math.Round(float64(height) * scale))
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
