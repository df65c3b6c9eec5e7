package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/blockcraft/internal/app"
	"github.com/annel0/blockcraft/internal/config"
	"github.com/annel0/blockcraft/internal/heightmap"
	"github.com/annel0/blockcraft/internal/host"
	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/metrics"
	"github.com/annel0/blockcraft/internal/vec"
	"github.com/annel0/blockcraft/internal/voxel"
)

const defaultNoiseSize = 64

type options struct {
	heightmap   string
	noiseSeed   int64
	useNoise    bool
	size        int
	script      string
	out         string
	metricsAddr string
}

func main() {
	os.Exit(execute())
}

// execute возвращает код выхода процесса
func execute() int {
	var opts options
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	flag.StringVar(&opts.heightmap, "heightmap", "", "изображение карты высот (по умолчанию из конфигурации)")
	flag.Int64Var(&opts.noiseSeed, "noise-seed", 0, "сгенерировать карту высот шумом Перлина с этим seed вместо файла")
	flag.IntVar(&opts.size, "size", 0, "размер мира по X и Z (0: размер карты высот)")
	flag.StringVar(&opts.script, "script", "", "YAML-сценарий входных событий")
	flag.StringVar(&opts.out, "out", "world.glb", "куда сохранить мир (GLB)")
	flag.StringVar(&opts.metricsAddr, "metrics", "", "адрес Prometheus /metrics (например, :2112)")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "noise-seed" {
			opts.useNoise = true
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("❌ Ошибка загрузки конфигурации: %v", err)
		return 1
	}

	logging.LogDir = cfg.Logging.Dir
	if err := logging.InitDefaultLogger("voxelize"); err != nil {
		log.Printf("❌ Ошибка инициализации логирования: %v", err)
		return 1
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()
	logging.SetDefaultLevel(logging.ParseLevel(cfg.Logging.Level))

	if err := run(cfg, opts); err != nil {
		var decodeErr *heightmap.DecodeError
		if errors.As(err, &decodeErr) {
			logging.Error("❌ Не удалось загрузить карту высот %s: %v", decodeErr.Path, decodeErr.Err)
		} else {
			logging.Error("❌ %v", err)
		}
		return 1
	}
	return 0
}

func run(cfg *config.Config, opts options) error {
	hm, err := loadHeightmap(cfg, opts)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	addr := opts.metricsAddr
	if addr == "" {
		addr = cfg.Metrics.Addr
	}
	if addr != "" {
		m = metrics.New()
		m.StartHTTP(addr, logging.ParseLevel(cfg.Logging.Level))
	}

	world := voxel.NewWorld()
	if _, err := voxel.Generate(world, hm, voxel.GenerateOptions{
		MinHeight:   *cfg.Voxelizer.MinHeight,
		ScaleFactor: *cfg.Voxelizer.ScaleFactor,
	}); err != nil {
		return fmt.Errorf("генерация мира: %w", err)
	}

	for material, n := range world.CountByMaterial() {
		logging.Debug("  %s: %d", material, n)
	}

	origin := vec.Vec3Float{X: cfg.Observer.Position[0], Y: cfg.Observer.Position[1], Z: cfg.Observer.Position[2]}
	direction := vec.Vec3Float{X: cfg.Observer.Direction[0], Y: cfg.Observer.Direction[1], Z: cfg.Observer.Direction[2]}
	a := app.NewVoxelApp(world, origin, direction, cfg.Voxelizer.Reach, m)
	a.PrintControls()

	script := &host.Script{}
	if opts.script != "" {
		if script, err = host.LoadScript(opts.script); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	frames, err := host.Run(ctx, host.NewScriptSource(script), a)
	if err != nil {
		return fmt.Errorf("цикл кадров: %w", err)
	}
	logging.Info("Обработано кадров: %d, вокселей в мире: %d", frames, world.Count())

	if err := voxel.ExportGLB(world, opts.out); err != nil {
		return fmt.Errorf("экспорт %s: %w", opts.out, err)
	}
	logging.Info("💾 Мир сохранён в %s", opts.out)
	return nil
}

// loadHeightmap читает карту высот из файла или строит её шумом.
// Ошибка декодирования возвращается как *heightmap.DecodeError до создания мира.
func loadHeightmap(cfg *config.Config, opts options) (*heightmap.Heightmap, error) {
	size := opts.size
	if size == 0 {
		size = cfg.Voxelizer.WorldSize
	}

	if opts.useNoise {
		if size == 0 {
			size = defaultNoiseSize
		}
		logging.Info("🌄 Карта высот из шума Перлина: seed=%d, размер %dx%d", opts.noiseSeed, size, size)
		return heightmap.Noise(size, size, heightmap.NoiseOptions{Seed: opts.noiseSeed})
	}

	path := opts.heightmap
	if path == "" {
		path = cfg.Voxelizer.Heightmap
	}

	hm, err := heightmap.Load(path)
	if err != nil {
		return nil, err
	}
	logging.Info("🗺️ Карта высот %s: %dx%d", path, hm.Rows(), hm.Cols())

	if size > 0 {
		return hm.Resample(size, size)
	}
	return hm, nil
}
