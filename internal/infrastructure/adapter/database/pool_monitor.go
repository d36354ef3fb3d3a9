package database

import (
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
)

// saturationRatio is the in-use share of MaxOpenConns above which the monitor warns
const saturationRatio = 0.8

// PoolStatsObserver receives every pool snapshot the monitor takes
type PoolStatsObserver interface {
	ObservePoolStats(stats sql.DBStats)
}

// StatsFunc returns the current pool statistics
type StatsFunc func() (sql.DBStats, error)

// PoolMonitor samples sql.DBStats on an interval, keeps the latest sample
// and forwards each one to an optional observer.
type PoolMonitor struct {
	stats    StatsFunc
	observer PoolStatsObserver
	logger   coreport.Logger

	last atomic.Pointer[sql.DBStats]
	done chan struct{}
	once sync.Once
}

// NewPoolMonitor creates a monitor. observer may be nil.
func NewPoolMonitor(stats StatsFunc, observer PoolStatsObserver, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		stats:    stats,
		observer: observer,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start takes one sample synchronously, so a dead pool fails startup, then keeps sampling in the background
func (m *PoolMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	go m.loop(interval)
	return nil
}

func (m *PoolMonitor) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			if err := m.sample(); err != nil {
				m.logger.Error("Failed to sample connection pool", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// Stop ends background sampling. Calling it twice is fine.
func (m *PoolMonitor) Stop() {
	m.once.Do(func() { close(m.done) })
}

// Last returns the most recent sample and whether one has been taken
func (m *PoolMonitor) Last() (sql.DBStats, bool) {
	s := m.last.Load()
	if s == nil {
		return sql.DBStats{}, false
	}
	return *s, true
}

func (m *PoolMonitor) sample() error {
	stats, err := m.stats()
	if err != nil {
		return fmt.Errorf("read pool stats: %w", err)
	}

	m.last.Store(&stats)
	if m.observer != nil {
		m.observer.ObservePoolStats(stats)
	}

	if saturated(stats) {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
	return nil
}

func saturated(stats sql.DBStats) bool {
	if stats.MaxOpenConnections <= 0 {
		return false
	}
	return float64(stats.InUse) > float64(stats.MaxOpenConnections)*saturationRatio
}
