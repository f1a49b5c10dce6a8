// Package metrics exposes Prometheus collectors for command dispatch,
// session state and chain sync.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch modes used as the "mode" label.
const (
	ModeImmediate   = "immediate"
	ModeLongRunning = "long_running"
	ModeRejected    = "rejected"
	ModeNoSession   = "no_session"
)

var (
	registerOnce sync.Once

	dispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lightwallet",
			Subsystem: "dispatch",
			Name:      "commands_total",
			Help:      "Dispatched wallet commands.",
		},
		[]string{"command", "mode"},
	)
	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lightwallet",
			Subsystem: "dispatch",
			Name:      "command_duration_seconds",
			Help:      "Wallet command execution time in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"command", "mode"},
	)
	inFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lightwallet",
			Subsystem: "dispatch",
			Name:      "long_running_in_flight",
			Help:      "Long-running commands currently executing.",
		},
	)
	sessionActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lightwallet",
			Subsystem: "session",
			Name:      "active",
			Help:      "1 while a wallet session is installed.",
		},
	)
	syncedHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lightwallet",
			Subsystem: "sync",
			Name:      "height",
			Help:      "Last block height the wallet has scanned.",
		},
	)
	syncedBlocks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lightwallet",
			Subsystem: "sync",
			Name:      "blocks_total",
			Help:      "Blocks scanned since start.",
		},
	)
	chainErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lightwallet",
			Subsystem: "chain",
			Name:      "request_errors_total",
			Help:      "Failed chain-data server requests.",
		},
		[]string{"operation"},
	)
)

// RegisterMetrics registers every collector with the default registry once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			dispatches,
			dispatchDuration,
			inFlight,
			sessionActive,
			syncedHeight,
			syncedBlocks,
			chainErrors,
		)
	})
}

// RecordDispatch counts a dispatch of command in mode.
func RecordDispatch(command, mode string) {
	RegisterMetrics()
	dispatches.WithLabelValues(command, mode).Inc()
}

// ObserveCommand records how long command ran.
func ObserveCommand(command, mode string, d time.Duration) {
	RegisterMetrics()
	dispatchDuration.WithLabelValues(command, mode).Observe(d.Seconds())
}

// LongRunningStarted and LongRunningFinished track detached commands.
func LongRunningStarted() {
	RegisterMetrics()
	inFlight.Inc()
}

func LongRunningFinished() {
	RegisterMetrics()
	inFlight.Dec()
}

// SetSessionActive flips the session gauge.
func SetSessionActive(active bool) {
	RegisterMetrics()
	if active {
		sessionActive.Set(1)
		return
	}
	sessionActive.Set(0)
}

// RecordSyncProgress publishes the sync cursor and the blocks just scanned.
func RecordSyncProgress(height, blocks uint64) {
	RegisterMetrics()
	syncedHeight.Set(float64(height))
	syncedBlocks.Add(float64(blocks))
}

// RecordChainError counts a failed chain-data request.
func RecordChainError(operation string) {
	RegisterMetrics()
	chainErrors.WithLabelValues(operation).Inc()
}
