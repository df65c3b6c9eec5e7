package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации обеих программ.
type Config struct {
	Painter   PainterConfig   `yaml:"painter"`
	Voxelizer VoxelizerConfig `yaml:"voxelizer"`
	Observer  ObserverConfig  `yaml:"observer"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PainterConfig размеры поверхности и клетки 2D-редактора
type PainterConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	TileSize     int `yaml:"tile_size"`
}

// VoxelizerConfig параметры генерации мира по карте высот
type VoxelizerConfig struct {
	Heightmap   string   `yaml:"heightmap"`
	MinHeight   *int     `yaml:"min_height"`
	ScaleFactor *float64 `yaml:"scale_factor"`
	Reach       float64  `yaml:"reach"`
	WorldSize   int      `yaml:"world_size"` // 0: размер исходного изображения
}

// ObserverConfig стартовая позиция наблюдателя
type ObserverConfig struct {
	Position  [3]float64 `yaml:"position"`
	Direction [3]float64 `yaml:"direction"`
}

// MetricsConfig адрес HTTP-эндпоинта Prometheus (пусто: выключено)
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig уровень и директория логов
type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Значения по умолчанию повторяют константы демо-программ
const (
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
	DefaultTileSize     = 20
	DefaultHeightmap    = "map.png"
	DefaultMinHeight    = -5
	DefaultScaleFactor  = 7.5
	DefaultReach        = 10.0
)

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// GetTileSize возвращает размер клетки с приоритетом: config -> env -> default
func (p *PainterConfig) GetTileSize() int {
	return getIntWithEnvFallback(p.TileSize, "BLOCKCRAFT_TILE_SIZE", DefaultTileSize)
}

// GetScreenWidth возвращает ширину поверхности
func (p *PainterConfig) GetScreenWidth() int {
	return getIntWithEnvFallback(p.ScreenWidth, "BLOCKCRAFT_SCREEN_WIDTH", DefaultScreenWidth)
}

// GetScreenHeight возвращает высоту поверхности
func (p *PainterConfig) GetScreenHeight() int {
	return getIntWithEnvFallback(p.ScreenHeight, "BLOCKCRAFT_SCREEN_HEIGHT", DefaultScreenHeight)
}

// GetHeightmap возвращает путь к карте высот
func (v *VoxelizerConfig) GetHeightmap() string {
	return getStringWithEnvFallback(v.Heightmap, "BLOCKCRAFT_HEIGHTMAP", DefaultHeightmap)
}

// GetMinHeight возвращает нижнюю границу колонок (может быть отрицательной)
func (v *VoxelizerConfig) GetMinHeight() int {
	if v.MinHeight != nil {
		return *v.MinHeight
	}
	if envVal := os.Getenv("BLOCKCRAFT_MIN_HEIGHT"); envVal != "" {
		if h, err := strconv.Atoi(envVal); err == nil {
			return h
		}
	}
	return DefaultMinHeight
}

// GetScaleFactor возвращает множитель высоты. Явный 0 даёт плоский мир.
func (v *VoxelizerConfig) GetScaleFactor() float64 {
	if v.ScaleFactor != nil {
		return *v.ScaleFactor
	}
	if envVal := os.Getenv("BLOCKCRAFT_SCALE_FACTOR"); envVal != "" {
		if s, err := strconv.ParseFloat(envVal, 64); err == nil {
			return s
		}
	}
	return DefaultScaleFactor
}

// GetReach возвращает дальность луча установки блока
func (v *VoxelizerConfig) GetReach() float64 {
	return getFloatWithEnvFallback(v.Reach, "BLOCKCRAFT_REACH", DefaultReach)
}

// GetAddr возвращает адрес метрик
func (m *MetricsConfig) GetAddr() string {
	return getStringWithEnvFallback(m.Addr, "BLOCKCRAFT_METRICS_ADDR", "")
}

func (c *Config) applyDefaults() {
	c.Painter.ScreenWidth = c.Painter.GetScreenWidth()
	c.Painter.ScreenHeight = c.Painter.GetScreenHeight()
	c.Painter.TileSize = c.Painter.GetTileSize()

	c.Voxelizer.Heightmap = c.Voxelizer.GetHeightmap()
	minHeight := c.Voxelizer.GetMinHeight()
	c.Voxelizer.MinHeight = &minHeight
	scaleFactor := c.Voxelizer.GetScaleFactor()
	c.Voxelizer.ScaleFactor = &scaleFactor
	c.Voxelizer.Reach = c.Voxelizer.GetReach()

	// Наблюдатель по умолчанию стоит в (0,5,0) и смотрит вдоль +Z
	if c.Observer.Position == ([3]float64{}) {
		c.Observer.Position = [3]float64{0, 5, 0}
	}
	if c.Observer.Direction == ([3]float64{}) {
		c.Observer.Direction = [3]float64{0, 0, 1}
	}

	c.Metrics.Addr = c.Metrics.GetAddr()
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = "logs"
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Painter.TileSize <= 0 {
		return fmt.Errorf("painter.tile_size должен быть > 0, получено %d", c.Painter.TileSize)
	}
	if c.Painter.ScreenWidth < c.Painter.TileSize || c.Painter.ScreenHeight < c.Painter.TileSize {
		return fmt.Errorf("поверхность %dx%d меньше одной клетки %d", c.Painter.ScreenWidth, c.Painter.ScreenHeight, c.Painter.TileSize)
	}
	if c.Voxelizer.ScaleFactor != nil && *c.Voxelizer.ScaleFactor < 0 {
		return fmt.Errorf("voxelizer.scale_factor не может быть отрицательным: %v", *c.Voxelizer.ScaleFactor)
	}
	if c.Voxelizer.WorldSize < 0 {
		return fmt.Errorf("voxelizer.world_size не может быть отрицательным: %d", c.Voxelizer.WorldSize)
	}
	return nil
}

func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	if configValue > 0 {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getFloatWithEnvFallback(configValue float64, envVar string, defaultValue float64) float64 {
	if configValue > 0 {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.ParseFloat(envVal, 64); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getStringWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultValue
}

// Load читает YAML файл конфигурации и дополняет его значениями по умолчанию.
// Если path == "", пытается прочитать путь из ENV BLOCKCRAFT_CONFIG,
// а при его отсутствии возвращает конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("BLOCKCRAFT_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфиг %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
