package voxel

import (
	"fmt"

	"github.com/annel0/blockcraft/internal/heightmap"
	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/vec"
)

// GenerateOptions параметры генерации мира
type GenerateOptions struct {
	MinHeight   int
	ScaleFactor float64
}

// Generate заполняет мир колонками по карте высот.
// Для каждой точки (x, z) ставятся воксели от высоты поверхности вниз до MinHeight включительно.
// Если поверхность ниже MinHeight, колонка остаётся пустой.
func Generate(w *World, hm *heightmap.Heightmap, opts GenerateOptions) (int, error) {
	if hm == nil {
		return 0, fmt.Errorf("voxel: карта высот не задана")
	}
	if opts.ScaleFactor < 0 {
		return 0, fmt.Errorf("voxel: отрицательный масштаб высоты %v", opts.ScaleFactor)
	}

	placed := 0
	for x := 0; x < hm.Rows(); x++ {
		for z := 0; z < hm.Cols(); z++ {
			placed += GenerateColumn(w, x, z, heightmap.Elevation(hm.At(x, z), opts.ScaleFactor), opts.MinHeight)
		}
	}

	logging.Info("Generated %d voxels from %dx%d heightmap (min_height=%d, scale=%v)",
		placed, hm.Rows(), hm.Cols(), opts.MinHeight, opts.ScaleFactor)
	return placed, nil
}

// GenerateColumn ставит одну колонку и возвращает число установленных вокселей
func GenerateColumn(w *World, x, z, elevation, minHeight int) int {
	placed := 0
	for y := elevation; y >= minHeight; y-- {
		w.Place(vec.Vec3{X: x, Y: y, Z: z}, Classify(y, elevation, minHeight))
		placed++
	}
	return placed
}
