package painter

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// NewSurface создаёт поверхность для отрисовки указанного размера
func NewSurface(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Render перерисовывает всю поверхность.
// Порядок фиксирован: фон, затем блоки, затем линии сетки поверх всего.
func Render(g *Grid, dst draw.Image) {
	bounds := dst.Bounds()

	draw.Draw(dst, bounds, image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.At(x, y)
			if id == AirBlockID {
				continue
			}
			rect := image.Rect(x*g.TileSize, y*g.TileSize, (x+1)*g.TileSize, (y+1)*g.TileSize).Add(bounds.Min)
			draw.Draw(dst, rect.Intersect(bounds), image.NewUniform(id.Color()), image.Point{}, draw.Src)
		}
	}

	drawGridLines(dst, g.TileSize)
}

// drawGridLines рисует линии толщиной в пиксель через каждые tileSize пикселей
func drawGridLines(dst draw.Image, tileSize int) {
	bounds := dst.Bounds()

	for x := bounds.Min.X; x < bounds.Max.X; x += tileSize {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			dst.Set(x, y, GridLineColor)
		}
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y += tileSize {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, GridLineColor)
		}
	}
}

// Scale масштабирует готовый кадр без сглаживания, чтобы клетки оставались чёткими
func Scale(src image.Image, factor float64) *image.RGBA {
	if factor <= 0 || factor == 1 {
		out := image.NewRGBA(src.Bounds())
		draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
		return out
	}

	b := src.Bounds()
	width := int(float64(b.Dx()) * factor)
	height := int(float64(b.Dy()) * factor)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), src, b, xdraw.Src, nil)
	return out
}
