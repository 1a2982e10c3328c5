package kvstore

import (
	"context"
	"fmt"
	"strings"
)

// Open creates the configured Store and verifies it answers a ping. Connecting,
// preparing and pinging all share one PingTimeout budget.
// DriverNone (or an empty driver) returns ErrNoStore.
func Open(ctx context.Context, cfg Config) (Store, error) {
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	openCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		store Store
		err   error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverNone:
		return nil, ErrNoStore
	case DriverMemory:
		return NewMemory(), nil
	case DriverRedis:
		store, err = NewRedis(cfg.Redis)
	case DriverPostgres:
		store, err = NewPostgres(openCtx, cfg.Postgres)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if err := store.Ping(openCtx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	return store, nil
}
