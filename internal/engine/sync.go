package engine

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-light-wallet/internal/adapter"
	"github.com/MKhiriev/go-light-wallet/internal/metrics"
	"github.com/MKhiriev/go-light-wallet/models"
)

// syncResult is the JSON reply of sync, rescan and import.
type syncResult struct {
	Result       string `json:"result"`
	SyncID       uint64 `json:"sync_id"`
	StartBlock   uint64 `json:"start_block"`
	EndBlock     uint64 `json:"end_block"`
	SyncedBlocks uint64 `json:"synced_blocks"`
	FoundTxs     int    `json:"found_txs"`
}

// sync scans from the block after the cursor up to the chain tip.
func (w *lightWallet) sync(ctx context.Context) (syncResult, error) {
	if !w.syncMu.TryLock() {
		return syncResult{}, ErrSyncInProgress
	}
	defer w.syncMu.Unlock()

	return w.syncLocked(ctx)
}

// rescan rewinds the cursor to the birthday and syncs again.
func (w *lightWallet) rescan(ctx context.Context) (syncResult, error) {
	if !w.syncMu.TryLock() {
		return syncResult{}, ErrSyncInProgress
	}
	defer w.syncMu.Unlock()

	if err := w.rewind(ctx); err != nil {
		return syncResult{}, err
	}
	return w.syncLocked(ctx)
}

// importKey starts watching key and rescans so its history is found.
func (w *lightWallet) importKey(ctx context.Context, key string) (syncResult, error) {
	if key == "" {
		return syncResult{}, fmt.Errorf("%w: import needs a key", ErrMissingArgument)
	}
	if !w.syncMu.TryLock() {
		return syncResult{}, ErrSyncInProgress
	}
	defer w.syncMu.Unlock()

	imported := models.ImportedKey{Key: key, Birthday: w.birthday, ImportedAt: now()}
	if err := w.repo.SaveImportedKey(ctx, imported); err != nil {
		return syncResult{}, fmt.Errorf("save imported key: %w", err)
	}

	w.mu.Lock()
	if !w.isWatched(key) {
		w.imported = append(w.imported, imported)
		w.watched[key] = struct{}{}
	}
	w.mu.Unlock()

	if err := w.rewind(ctx); err != nil {
		return syncResult{}, err
	}
	return w.syncLocked(ctx)
}

func (w *lightWallet) rewind(ctx context.Context) error {
	if err := w.repo.ResetSyncState(ctx, w.birthday); err != nil {
		return fmt.Errorf("reset sync state: %w", err)
	}

	w.mu.Lock()
	w.lastSynced = w.birthday
	w.status.LastSyncedHeight = w.birthday
	w.mu.Unlock()

	return nil
}

// syncLocked does the scan. Caller holds syncMu.
func (w *lightWallet) syncLocked(ctx context.Context) (result syncResult, err error) {
	log := w.logger.GetChildLogger()

	id := w.syncIDs.Add(1)
	result.SyncID = id

	tip, err := retryFetch(ctx, w.newBackOff(), "latest_block", func() (models.LatestBlock, error) {
		return w.chain.LatestBlockHeight(ctx)
	})
	if err != nil {
		w.finishStatus(id, err)
		return result, fmt.Errorf("query chain tip: %w", err)
	}

	start := w.syncedHeight() + 1
	result.StartBlock = start
	result.EndBlock = tip.Height
	w.beginStatus(id, start, tip.Height)

	defer func() {
		w.finishStatus(id, err)
	}()

	if start > tip.Height {
		result.Result = "success"
		return result, nil
	}

	for from := start; from <= tip.Height; from += w.batchSize {
		to := min(from+w.batchSize-1, tip.Height)

		blocks, fetchErr := retryFetch(ctx, w.newBackOff(), "block_range", func() ([]models.CompactBlock, error) {
			return w.chain.BlockRange(ctx, from, to)
		})
		if fetchErr != nil {
			return result, fmt.Errorf("fetch blocks %d..%d: %w", from, to, fetchErr)
		}

		found := w.collect(blocks)
		if err = w.repo.SaveTransactions(ctx, found, to); err != nil {
			return result, fmt.Errorf("persist blocks %d..%d: %w", from, to, err)
		}

		scanned := to - from + 1
		result.SyncedBlocks += scanned
		result.FoundTxs += len(found)
		w.advance(to, scanned, found)
		metrics.RecordSyncProgress(to, scanned)

		log.Debug().
			Str("func", "lightWallet.sync").
			Uint64("sync_id", id).
			Uint64("height", to).
			Int("found", len(found)).
			Msg("batch scanned")
	}

	result.Result = "success"
	log.Info().
		Str("func", "lightWallet.sync").
		Uint64("sync_id", id).
		Uint64("synced_blocks", result.SyncedBlocks).
		Int("found", result.FoundTxs).
		Msg("sync finished")

	return result, nil
}

// collect picks the outputs paying a watched address.
func (w *lightWallet) collect(blocks []models.CompactBlock) []models.Transaction {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var found []models.Transaction
	for _, b := range blocks {
		for _, tx := range b.Txs {
			if !w.isWatched(tx.Address) {
				continue
			}
			found = append(found, models.Transaction{
				TxID:        tx.TxID,
				BlockHeight: b.Height,
				Address:     tx.Address,
				Value:       tx.Value,
				Memo:        tx.Memo,
				Datetime:    b.Time,
			})
		}
	}
	return found
}

func (w *lightWallet) advance(height, scanned uint64, found []models.Transaction) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastSynced = height
	w.status.LastSyncedHeight = height
	w.status.SyncedBlocks += scanned

	if len(found) == 0 || len(w.pending) == 0 {
		return
	}
	// mined transactions are no longer pending
	mined := make(map[string]struct{}, len(found))
	for _, tx := range found {
		mined[tx.TxID] = struct{}{}
	}
	kept := w.pending[:0]
	for _, tx := range w.pending {
		if _, ok := mined[tx.TxID]; !ok {
			kept = append(kept, tx)
		}
	}
	w.pending = kept
}

func (w *lightWallet) beginStatus(id, start, end uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var total uint64
	if end >= start {
		total = end - start + 1
	}
	w.status = models.SyncStatus{
		SyncID:           id,
		InProgress:       true,
		StartBlock:       start,
		EndBlock:         end,
		TotalBlocks:      total,
		LastSyncedHeight: w.lastSynced,
	}
}

func (w *lightWallet) finishStatus(id uint64, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status.SyncID = id
	w.status.InProgress = false
	w.status.LastError = ""
	if err != nil {
		w.status.LastError = err.Error()
	}
}

func (w *lightWallet) syncStatus() models.SyncStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.status
}

// retryFetch retries transient chain-data failures with b. Anything else
// fails immediately.
func retryFetch[T any](ctx context.Context, b backoff.BackOff, operation string, fetch func() (T, error)) (T, error) {
	var out T
	err := backoff.Retry(func() error {
		v, err := fetch()
		if err != nil {
			metrics.RecordChainError(operation)
			if !adapter.IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}, backoff.WithContext(b, ctx))

	return out, err
}
