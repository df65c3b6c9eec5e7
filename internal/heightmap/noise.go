package heightmap

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// NoiseOptions параметры синтетической карты высот
type NoiseOptions struct {
	Seed  int64
	Scale float64 // масштаб координат шума, по умолчанию 0.05
}

// Noise генерирует карту высот шумом Перлина, когда файла карты нет
func Noise(rows, cols int, opts NoiseOptions) (*Heightmap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("heightmap: недопустимый размер %dx%d", rows, cols)
	}
	if opts.Scale <= 0 {
		opts.Scale = 0.05
	}

	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	p := perlin.NewPerlin(alpha, beta, n, opts.Seed)

	samples := make([]uint8, rows*cols)
	for x := 0; x < rows; x++ {
		for z := 0; z < cols; z++ {
			// Шум в диапазоне [-1,1] переводим в [0,255]
			v := (p.Noise2D(float64(x)*opts.Scale, float64(z)*opts.Scale) + 1.0) / 2.0
			samples[x*cols+z] = uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
		}
	}

	return &Heightmap{rows: rows, cols: cols, samples: samples}, nil
}
