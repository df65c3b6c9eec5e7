package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/blockcraft/internal/app"
	"github.com/annel0/blockcraft/internal/config"
	"github.com/annel0/blockcraft/internal/host"
	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/metrics"
	"github.com/annel0/blockcraft/internal/painter"
)

func main() {
	os.Exit(execute())
}

// execute возвращает код выхода процесса
func execute() int {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	scriptPath := flag.String("script", "", "YAML-сценарий входных событий")
	outPath := flag.String("out", "grid.png", "куда сохранить итоговый кадр (PNG)")
	scale := flag.Float64("scale", 1, "масштаб сохраняемого кадра")
	metricsAddr := flag.String("metrics", "", "адрес Prometheus /metrics (например, :2112)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("❌ Ошибка загрузки конфигурации: %v", err)
		return 1
	}

	logging.LogDir = cfg.Logging.Dir
	if err := logging.InitDefaultLogger("gridpaint"); err != nil {
		log.Printf("❌ Ошибка инициализации логирования: %v", err)
		return 1
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()
	logging.SetDefaultLevel(logging.ParseLevel(cfg.Logging.Level))

	if err := run(cfg, *scriptPath, *outPath, *scale, *metricsAddr); err != nil {
		logging.Error("❌ %v", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config, scriptPath, outPath string, scale float64, metricsAddr string) error {
	var m *metrics.Metrics
	if addr := firstNonEmpty(metricsAddr, cfg.Metrics.Addr); addr != "" {
		m = metrics.New()
		m.StartHTTP(addr, logging.ParseLevel(cfg.Logging.Level))
	}

	a, err := app.NewPainterApp(cfg.Painter.ScreenWidth, cfg.Painter.ScreenHeight, cfg.Painter.TileSize, m)
	if err != nil {
		return fmt.Errorf("создание редактора: %w", err)
	}

	size := a.State().Grid.Size()
	logging.Info("🎨 Сетка %dx%d, клетка %d px", size.X, size.Y, cfg.Painter.TileSize)
	a.PrintControls()

	script := &host.Script{}
	if scriptPath != "" {
		if script, err = host.LoadScript(scriptPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	frames, err := host.Run(ctx, host.NewScriptSource(script), a)
	if err != nil {
		return fmt.Errorf("цикл кадров: %w", err)
	}
	if frames == 0 {
		if err := a.Redraw(); err != nil {
			return err
		}
	}
	logging.Info("Обработано кадров: %d", frames)

	return writePNG(outPath, painter.Scale(a.Surface(), scale))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("не удалось создать %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("не удалось записать PNG %s: %w", path, err)
	}

	logging.Info("💾 Кадр сохранён в %s", path)
	return f.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
