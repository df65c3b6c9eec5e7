package painter

import "image/color"

// BlockID идентификатор типа клетки в 2D-редакторе
type BlockID uint8

const (
	AirBlockID   BlockID = iota // 0, пустая клетка
	GrassBlockID                // 1
	DirtBlockID                 // 2
	WaterBlockID                // 3
)

// Цвета поверхности
var (
	BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GridLineColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Color возвращает цвет заливки клетки.
// Пустая клетка имеет цвет фона.
func (id BlockID) Color() color.RGBA {
	switch id {
	case GrassBlockID:
		return color.RGBA{R: 0, G: 150, B: 0, A: 255}
	case DirtBlockID:
		return color.RGBA{R: 139, G: 69, B: 19, A: 255}
	case WaterBlockID:
		return color.RGBA{R: 0, G: 0, B: 200, A: 255}
	default:
		return BackgroundColor
	}
}

// Name возвращает имя блока
func (id BlockID) Name() string {
	switch id {
	case AirBlockID:
		return "Air"
	case GrassBlockID:
		return "Grass"
	case DirtBlockID:
		return "Dirt"
	case WaterBlockID:
		return "Water"
	default:
		return "Unknown"
	}
}

// Valid проверяет, что ID входит в палитру
func (id BlockID) Valid() bool {
	return id <= WaterBlockID
}
