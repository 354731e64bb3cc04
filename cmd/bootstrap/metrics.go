package bootstrap

import (
	"log/slog"

	"gin-jewelry-b2b/internal/infra/metrics"
	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		NewMetrics,
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg *prometheus.Registry, cfg config.Config) (shared.Metrics, error) {
	if !cfg.Metrics.Enabled {
		slog.Info("metrics disabled")
		return shared.NopMetrics{}, nil
	}
	return metrics.New(reg, cfg.Metrics)
}
