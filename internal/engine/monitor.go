package engine

import (
	"context"
	"time"

	"github.com/MKhiriev/go-light-wallet/internal/metrics"
	"github.com/MKhiriev/go-light-wallet/models"
)

var now = time.Now

// runMonitor polls the mempool until ctx ends or the wallet is closed,
// keeping the outputs that pay a watched address as pending.
func (w *lightWallet) runMonitor(ctx context.Context) {
	log := w.logger.GetChildLogger()
	log.Debug().Str("func", "lightWallet.runMonitor").Dur("interval", w.monitorInterval).Msg("monitor started")

	ticker := time.NewTicker(w.monitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("func", "lightWallet.runMonitor").Msg("monitor stopped: context done")
			return
		case <-w.stop:
			log.Debug().Str("func", "lightWallet.runMonitor").Msg("monitor stopped: wallet closed")
			return
		case <-ticker.C:
			w.pollMempool(ctx)
		}
	}
}

func (w *lightWallet) pollMempool(ctx context.Context) {
	txs, err := w.chain.Mempool(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		metrics.RecordChainError("mempool")
		w.logger.Err(err).Str("func", "lightWallet.pollMempool").Msg("mempool poll failed")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	pending := make([]models.Transaction, 0)
	for _, tx := range txs {
		if !w.isWatched(tx.Address) {
			continue
		}
		pending = append(pending, models.Transaction{
			TxID:        tx.TxID,
			Address:     tx.Address,
			Value:       tx.Value,
			Memo:        tx.Memo,
			Unconfirmed: true,
			Datetime:    now(),
		})
	}
	w.pending = pending
}

func (w *lightWallet) pendingTxs() []models.Transaction {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]models.Transaction(nil), w.pending...)
}
