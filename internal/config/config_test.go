package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800, cfg.Painter.ScreenWidth)
	assert.Equal(t, 600, cfg.Painter.ScreenHeight)
	assert.Equal(t, 20, cfg.Painter.TileSize)
	assert.Equal(t, "map.png", cfg.Voxelizer.Heightmap)
	assert.Equal(t, -5, *cfg.Voxelizer.MinHeight)
	assert.Equal(t, 7.5, *cfg.Voxelizer.ScaleFactor)
	assert.Equal(t, 10.0, cfg.Voxelizer.Reach)
	assert.Equal(t, [3]float64{0, 5, 0}, cfg.Observer.Position)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
painter:
  tile_size: 10
voxelizer:
  heightmap: terrain.png
  min_height: 0
  scale_factor: 12
metrics:
  addr: ":2112"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Painter.TileSize)
	assert.Equal(t, 800, cfg.Painter.ScreenWidth, "незаданное поле должно получить значение по умолчанию")
	assert.Equal(t, "terrain.png", cfg.Voxelizer.Heightmap)
	assert.Equal(t, 0, *cfg.Voxelizer.MinHeight, "явный ноль не должен заменяться дефолтом")
	assert.Equal(t, 12.0, *cfg.Voxelizer.ScaleFactor)
	assert.Equal(t, ":2112", cfg.Metrics.Addr)
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("BLOCKCRAFT_CONFIG", "")
	t.Setenv("BLOCKCRAFT_TILE_SIZE", "25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Painter.TileSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("painter:\n  screen_width: 5\n  tile_size: 20\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err, "поверхность меньше клетки должна отклоняться")
}

func TestLoadScaleFactor(t *testing.T) {
	dir := t.TempDir()

	flat := filepath.Join(dir, "flat.yaml")
	require.NoError(t, os.WriteFile(flat, []byte("voxelizer:\n  scale_factor: 0\n"), 0644))
	cfg, err := Load(flat)
	require.NoError(t, err)
	assert.Equal(t, 0.0, *cfg.Voxelizer.ScaleFactor, "явный ноль задаёт плоский мир")

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("voxelizer:\n  scale_factor: -2\n"), 0644))
	_, err = Load(negative)
	assert.Error(t, err, "отрицательный масштаб должен отклоняться")

	t.Setenv("BLOCKCRAFT_SCALE_FACTOR", "3.5")
	cfg = Default()
	assert.Equal(t, 3.5, *cfg.Voxelizer.ScaleFactor)
}
