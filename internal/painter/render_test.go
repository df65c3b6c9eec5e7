package painter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOrder(t *testing.T) {
	g := newTestGrid(t)
	g.Paint(1, 1, GrassBlockID)
	g.Paint(2, 1, WaterBlockID)

	surface := NewSurface(800, 600)
	Render(g, surface)

	// Внутренность клетки залита цветом блока
	assert.Equal(t, GrassBlockID.Color(), surface.RGBAAt(25, 25))
	assert.Equal(t, WaterBlockID.Color(), surface.RGBAAt(45, 30))

	// Линии сетки рисуются поверх блоков
	assert.Equal(t, GridLineColor, surface.RGBAAt(20, 25))
	assert.Equal(t, GridLineColor, surface.RGBAAt(25, 20))
	assert.Equal(t, GridLineColor, surface.RGBAAt(0, 0))
	assert.Equal(t, GridLineColor, surface.RGBAAt(780, 599))

	// Пустые клетки остаются цветом фона
	assert.Equal(t, BackgroundColor, surface.RGBAAt(5, 5))
	assert.Equal(t, BackgroundColor, surface.RGBAAt(799, 599))
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	g := newTestGrid(t)
	surface := NewSurface(800, 600)

	g.Paint(0, 0, DirtBlockID)
	Render(g, surface)
	assert.Equal(t, DirtBlockID.Color(), surface.RGBAAt(10, 10))

	g.Erase(0, 0)
	Render(g, surface)
	assert.Equal(t, BackgroundColor, surface.RGBAAt(10, 10))
}

func TestScale(t *testing.T) {
	g := newTestGrid(t)
	g.Paint(0, 0, WaterBlockID)
	surface := NewSurface(800, 600)
	Render(g, surface)

	half := Scale(surface, 0.5)
	assert.Equal(t, 400, half.Bounds().Dx())
	assert.Equal(t, 300, half.Bounds().Dy())
	assert.Equal(t, WaterBlockID.Color(), half.RGBAAt(5, 5))

	same := Scale(surface, 1)
	assert.Equal(t, surface.Bounds(), same.Bounds())
}
