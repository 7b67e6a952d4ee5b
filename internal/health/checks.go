package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// NewHealthHandler wires the /health endpoint: an engine self-check that
// scans the catalog for stock invariant violations, plus a redis check when
// the rate limiter is configured.
func NewHealthHandler(cfg *config.Config, store *repository.Store) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "engine",
			Timeout:   time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				return store.CheckInvariants()
			},
		},
	}

	if cfg.RedisConnect.Enabled() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "pos-terminal-platform",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
