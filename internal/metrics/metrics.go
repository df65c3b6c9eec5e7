package metrics

import (
	"net/http"

	"github.com/annel0/blockcraft/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics Prometheus-метрики демо-программ.
// Используется собственный регистр, чтобы несколько экземпляров не конфликтовали.
type Metrics struct {
	registry *prometheus.Registry

	commands *prometheus.CounterVec
	frames   prometheus.Counter
	voxels   prometheus.Gauge
	cells    prometheus.Gauge
}

// New создаёт и регистрирует метрики
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockcraft",
			Name:      "commands_total",
			Help:      "Число обработанных команд по программе, типу и результату.",
		}, []string{"app", "command", "result"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "blockcraft",
			Name:      "frames_total",
			Help:      "Число отрисованных кадров.",
		}),
		voxels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockcraft",
			Name:      "voxels",
			Help:      "Текущее число вокселей в мире.",
		}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockcraft",
			Name:      "painted_cells",
			Help:      "Текущее число непустых клеток сетки.",
		}),
	}

	m.registry.MustRegister(m.commands, m.frames, m.voxels, m.cells)
	return m
}

// ObserveCommand учитывает обработанную команду
func (m *Metrics) ObserveCommand(app, command, result string) {
	m.commands.WithLabelValues(app, command, result).Inc()
}

// ObserveFrame учитывает кадр
func (m *Metrics) ObserveFrame() {
	m.frames.Inc()
}

// SetVoxels обновляет число вокселей
func (m *Metrics) SetVoxels(n int) {
	m.voxels.Set(float64(n))
}

// SetPaintedCells обновляет число непустых клеток
func (m *Metrics) SetPaintedCells(n int) {
	m.cells.Set(float64(n))
}

// Registry возвращает регистр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler возвращает HTTP-обработчик /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий: сервер стартует в отдельной горутине и читает только счётчики.
func (m *Metrics) StartHTTP(addr string, level logging.LogLevel) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	manager := logging.GetLoggerManager()
	logger := manager.MustGetLogger("metrics")
	if err := manager.SetLogLevel("metrics", level, logging.TRACE); err != nil {
		logger.Warn("Не удалось задать уровень логов metrics: %v", err)
	}
	go func() {
		logger.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}
