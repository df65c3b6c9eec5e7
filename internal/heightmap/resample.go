package heightmap

import (
	"fmt"

	"github.com/nfnt/resize"
)

// Resample возвращает карту высот другого размера (билинейная интерполяция)
func (h *Heightmap) Resample(rows, cols int) (*Heightmap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("heightmap: недопустимый размер %dx%d", rows, cols)
	}
	if rows == h.rows && cols == h.cols {
		return h, nil
	}

	scaled := resize.Resize(uint(cols), uint(rows), h.Image(), resize.Bilinear)
	return FromImage(scaled)
}
