package voxel

import "image/color"

// Material класс вокселя
type Material uint8

const (
	Grass   Material = iota // поверхность колонки
	Dirt                    // подповерхностный слой
	Stone                   // глубже двух единиц от поверхности
	Bedrock                 // дно колонки, не удаляется
)

// String возвращает имя материала
func (m Material) String() string {
	switch m {
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	case Bedrock:
		return "bedrock"
	default:
		return "unknown"
	}
}

// Removable сообщает, может ли игрок удалить воксель этого материала
func (m Material) Removable() bool {
	return m != Bedrock
}

// Color цвет материала для экспорта мира
func (m Material) Color() color.RGBA {
	switch m {
	case Grass:
		return color.RGBA{R: 86, G: 156, B: 58, A: 255}
	case Dirt:
		return color.RGBA{R: 121, G: 85, B: 58, A: 255}
	case Stone:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	default:
		return color.RGBA{R: 48, G: 48, B: 48, A: 255}
	}
}

// Classify выбирает материал вокселя на высоте y в колонке с поверхностью elevation
func Classify(y, elevation, minHeight int) Material {
	switch {
	case y == minHeight:
		return Bedrock
	case y == elevation:
		return Grass
	case elevation-y > 2:
		return Stone
	default:
		return Dirt
	}
}
