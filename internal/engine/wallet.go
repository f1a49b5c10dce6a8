package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-light-wallet/internal/adapter"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/store"
	"github.com/MKhiriev/go-light-wallet/models"
)

const (
	defaultBatchSize       = 100
	defaultMonitorInterval = 10 * time.Second
	defaultFetchRetries    = 5
)

// lightWallet is the [Engine] implementation.
type lightWallet struct {
	chain    adapter.ChainAdapter
	repo     store.WalletRepository
	storage  io.Closer
	logger   *logger.Logger
	network  models.ChainType
	seed     []byte
	birthday uint64

	batchSize       uint64
	monitorInterval time.Duration
	newBackOff      func() backoff.BackOff

	// syncMu admits one sync, rescan or import at a time
	syncMu  sync.Mutex
	syncIDs atomic.Uint64

	// mu guards the caches below
	mu         sync.RWMutex
	lastSynced uint64
	watched    map[string]struct{}
	addresses  []models.Address
	imported   []models.ImportedKey
	pending    []models.Transaction
	status     models.SyncStatus

	monitorOnce sync.Once
	monitorWG   sync.WaitGroup
	stop        chan struct{}
	closeOnce   sync.Once
	closed      atomic.Bool
	closeErr    error
}

type walletParams struct {
	chain      adapter.ChainAdapter
	repo       store.WalletRepository
	storage    io.Closer
	logger     *logger.Logger
	wallet     models.Wallet
	seed       []byte
	addresses  []models.Address
	imported   []models.ImportedKey
	monitor    time.Duration
	batchSize  uint64
	newBackOff func() backoff.BackOff
}

func newLightWallet(p walletParams) *lightWallet {
	w := &lightWallet{
		chain:           p.chain,
		repo:            p.repo,
		storage:         p.storage,
		logger:          p.logger,
		network:         p.wallet.Chain,
		seed:            p.seed,
		birthday:        p.wallet.Birthday,
		batchSize:       p.batchSize,
		monitorInterval: p.monitor,
		newBackOff:      p.newBackOff,
		lastSynced:      p.wallet.LastSyncedHeight,
		addresses:       p.addresses,
		imported:        p.imported,
		watched:         make(map[string]struct{}, len(p.addresses)+len(p.imported)),
		stop:            make(chan struct{}),
	}
	if w.batchSize == 0 {
		w.batchSize = defaultBatchSize
	}
	if w.monitorInterval <= 0 {
		w.monitorInterval = defaultMonitorInterval
	}
	if w.newBackOff == nil {
		w.newBackOff = defaultBackOff
	}
	for _, a := range p.addresses {
		w.watched[a.Address] = struct{}{}
	}
	for _, k := range p.imported {
		w.watched[k.Key] = struct{}{}
	}
	w.status.LastSyncedHeight = w.lastSynced

	return w
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return backoff.WithMaxRetries(b, defaultFetchRetries)
}

func (w *lightWallet) SeedPhrase(ctx context.Context) (models.SeedPhrase, error) {
	if w.closed.Load() {
		return models.SeedPhrase{}, ErrEngineClosed
	}
	if len(w.seed) == 0 {
		return models.SeedPhrase{}, errors.New("wallet has no seed")
	}
	return models.NewSeedPhrase(w.seed, w.birthday), nil
}

func (w *lightWallet) StartBackgroundMonitor(ctx context.Context) {
	w.monitorOnce.Do(func() {
		w.monitorWG.Add(1)
		go func() {
			defer w.monitorWG.Done()
			w.runMonitor(ctx)
		}()
	})
}

func (w *lightWallet) Close() error {
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		close(w.stop)
		w.monitorWG.Wait()
		if w.storage != nil {
			w.closeErr = w.storage.Close()
		}
		w.logger.Debug().Str("func", "lightWallet.Close").Msg("wallet engine closed")
	})
	return w.closeErr
}

// isWatched reports whether address belongs to the wallet. Caller holds mu.
func (w *lightWallet) isWatched(address string) bool {
	_, ok := w.watched[address]
	return ok
}

func (w *lightWallet) syncedHeight() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastSynced
}
