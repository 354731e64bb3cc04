package bootstrap

import (
	"context"
	"log/slog"

	"gin-jewelry-b2b/internal/infra/db"
	"gin-jewelry-b2b/internal/infra/metrics"
	"gin-jewelry-b2b/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(registerPoolCollector),
)

// NewDB opens the pool eagerly so a bad DSN fails startup instead of the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			s := pool.Stat()
			logger.Info("closing database pool",
				"acquired_conns", s.AcquiredConns(),
				"total_conns", s.TotalConns(),
				"acquire_count", s.AcquireCount())
			cleanup()
			return nil
		},
	})

	return pool, nil
}

func registerPoolCollector(pool *pgxpool.Pool, reg *prometheus.Registry, cfg config.Config) error {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return reg.Register(metrics.NewPoolCollector(cfg.Metrics.Namespace, pool))
}
