package postgre

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"

	"chat-commerce/config"
	"chat-commerce/pkg/log"
)

const (
	logPrefix         = "config/postgre.Lazy"
	connectFlightKey  = "connect"
	defaultTimeout    = 5 * time.Second
	defaultMaxConns   = int32(10)
	errMsgConnectFail = "postgres connect failed"
)

var ErrDSNRequired = errors.New("postgres dsn is required")

// DB hands out the process-wide connection pool.
type DB interface {
	Pool(ctx context.Context) (*pgxpool.Pool, error)
}

// Lazy connects to PostgreSQL on first use and reuses the pool afterwards.
// Concurrent first callers share one connection attempt. A failed attempt is
// not cached, so the next call tries again.
type Lazy struct {
	cfg     config.PostgresConfig
	l       log.Logger
	group   singleflight.Group
	mu      sync.RWMutex
	pool    *pgxpool.Pool
	connect func(ctx context.Context) (*pgxpool.Pool, error)
}

var _ DB = (*Lazy)(nil)

// NewLazy creates a Lazy pool. No connection is made until Pool is called.
func NewLazy(cfg config.PostgresConfig, l log.Logger) *Lazy {
	lz := &Lazy{cfg: cfg, l: l}
	lz.connect = lz.dial
	return lz
}

// Pool returns the shared pool, connecting if needed.
func (lz *Lazy) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	if p := lz.current(); p != nil {
		return p, nil
	}

	v, err, _ := lz.group.Do(connectFlightKey, func() (interface{}, error) {
		if p := lz.current(); p != nil {
			return p, nil
		}

		// One caller cancelling must not fail the attempt for everyone waiting on it.
		p, err := lz.connect(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		lz.mu.Lock()
		lz.pool = p
		lz.mu.Unlock()

		lz.l.Infof(ctx, "%s: connected", logPrefix)
		return p, nil
	})
	if err != nil {
		lz.l.Errorf(ctx, "%s: %s: %v", logPrefix, errMsgConnectFail, err)
		return nil, fmt.Errorf("%s: %w", errMsgConnectFail, err)
	}

	return v.(*pgxpool.Pool), nil
}

// Ping checks connectivity, connecting first if needed.
func (lz *Lazy) Ping(ctx context.Context) error {
	p, err := lz.Pool(ctx)
	if err != nil {
		return err
	}
	return p.Ping(ctx)
}

// Close releases the pool if one was created.
func (lz *Lazy) Close() {
	lz.mu.Lock()
	defer lz.mu.Unlock()
	if lz.pool != nil {
		lz.pool.Close()
		lz.pool = nil
	}
}

func (lz *Lazy) current() *pgxpool.Pool {
	lz.mu.RLock()
	defer lz.mu.RUnlock()
	return lz.pool
}

func (lz *Lazy) dial(ctx context.Context) (*pgxpool.Pool, error) {
	if lz.cfg.DSN == "" {
		return nil, ErrDSNRequired
	}

	timeout := lz.cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(lz.cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = defaultMaxConns
	if lz.cfg.MaxConns > 0 {
		poolCfg.MaxConns = lz.cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
