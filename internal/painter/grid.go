package painter

import (
	"fmt"

	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/vec"
)

// Grid хранит клетки 2D-редактора построчно.
// Размер фиксируется при создании и больше не меняется.
type Grid struct {
	Width    int
	Height   int
	TileSize int
	cells    []BlockID
}

// NewGrid создаёт сетку под поверхность screenWidth x screenHeight пикселей
func NewGrid(screenWidth, screenHeight, tileSize int) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("размер клетки должен быть > 0, получено %d", tileSize)
	}

	width := screenWidth / tileSize
	height := screenHeight / tileSize
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("поверхность %dx%d меньше одной клетки %d", screenWidth, screenHeight, tileSize)
	}

	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		cells:    make([]BlockID, width*height),
	}, nil
}

// Size возвращает размеры сетки в клетках
func (g *Grid) Size() vec.Vec2 {
	return vec.Vec2{X: g.Width, Y: g.Height}
}

// At возвращает значение клетки. Координаты должны лежать в пределах сетки.
func (g *Grid) At(x, y int) BlockID {
	return g.cells[y*g.Width+x]
}

// Paint записывает блок в клетку (x, y).
// Вызывающий обязан передать координаты в пределах сетки (см. PixelToCell).
func (g *Grid) Paint(x, y int, id BlockID) {
	g.cells[y*g.Width+x] = id
	logging.Info("Placed block %d at (%d, %d)", id, x, y)
}

// Erase очищает клетку и возвращает значение, которое в ней было
func (g *Grid) Erase(x, y int) BlockID {
	removed := g.cells[y*g.Width+x]
	g.cells[y*g.Width+x] = AirBlockID
	logging.Info("Removed block %d at (%d, %d)", removed, x, y)
	return removed
}

// PixelToCell переводит пиксельную позицию в координаты клетки.
// Каждая ось ограничивается диапазоном сетки независимо, поэтому функция тотальна.
func (g *Grid) PixelToCell(px, py int) (int, int) {
	cell := vec.Vec2{
		X: vec.DivideFloor(px, g.TileSize),
		Y: vec.DivideFloor(py, g.TileSize),
	}.Clamp(g.Size())
	return cell.X, cell.Y
}

// Clone создаёт независимую копию сетки
func (g *Grid) Clone() *Grid {
	cells := make([]BlockID, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		Width:    g.Width,
		Height:   g.Height,
		TileSize: g.TileSize,
		cells:    cells,
	}
}

// Equal сравнивает содержимое двух сеток
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height || g.TileSize != other.TileSize {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count возвращает количество непустых клеток
func (g *Grid) Count() int {
	count := 0
	for _, id := range g.cells {
		if id != AirBlockID {
			count++
		}
	}
	return count
}
