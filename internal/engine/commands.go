package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-light-wallet/models"
)

type commandFunc func(ctx context.Context, w *lightWallet, args []string) (any, error)

type command struct {
	help string
	run  commandFunc
}

var commands = map[string]command{
	"info":       {"chain-data server information", cmdInfo},
	"height":     {"latest synced block height", cmdHeight},
	"syncstatus": {"progress of the current or last sync", cmdSyncStatus},
	"sync":       {"download blocks up to the chain tip", cmdSync},
	"rescan":     {"rescan from the wallet birthday", cmdRescan},
	"import":     {"import a key and rescan: import <key>", cmdImport},
	"balance":    {"confirmed and unconfirmed balance", cmdBalance},
	"list":       {"list transactions, optionally for one address: list [address]", cmdList},
	"addresses":  {"wallet addresses and imported keys", cmdAddresses},
	"seed":       {"wallet seed phrase and birthday", cmdSeed},
	"save":       {"persist the sync cursor", cmdSave},
	"mempool":    {"pending transactions for wallet addresses", cmdMempool},
}

// help lists the table itself, so it is registered after the table exists.
func init() {
	commands["help"] = command{"list available commands", cmdHelp}
}

// ExecuteCommand runs the named command and renders its result as JSON.
// Failures are rendered as {"error": "..."}.
func (w *lightWallet) ExecuteCommand(ctx context.Context, name string, args []string) string {
	log := w.logger.GetChildLogger()

	if w.closed.Load() {
		return renderError(ErrEngineClosed)
	}

	cmd, ok := commands[name]
	if !ok {
		return renderError(fmt.Errorf("%w: %s", ErrUnknownCommand, name))
	}

	out, err := cmd.run(ctx, w, args)
	if err != nil {
		log.Err(err).Str("func", "lightWallet.ExecuteCommand").Str("command", name).Msg("command failed")
		return renderError(err)
	}

	return render(out)
}

func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return renderError(err)
	}
	return string(data)
}

func renderError(err error) string {
	data, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(data)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func cmdHelp(_ context.Context, _ *lightWallet, _ []string) (any, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]string, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]string{"command": name, "help": commands[name].help})
	}
	return out, nil
}

func cmdInfo(ctx context.Context, w *lightWallet, _ []string) (any, error) {
	info, err := w.chain.ServerInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("query server info: %w", err)
	}
	return info, nil
}

func cmdHeight(_ context.Context, w *lightWallet, _ []string) (any, error) {
	return map[string]uint64{"height": w.syncedHeight()}, nil
}

func cmdSyncStatus(_ context.Context, w *lightWallet, _ []string) (any, error) {
	return w.syncStatus(), nil
}

func cmdSync(ctx context.Context, w *lightWallet, _ []string) (any, error) {
	return w.sync(ctx)
}

func cmdRescan(ctx context.Context, w *lightWallet, _ []string) (any, error) {
	return w.rescan(ctx)
}

func cmdImport(ctx context.Context, w *lightWallet, args []string) (any, error) {
	return w.importKey(ctx, firstArg(args))
}

type balance struct {
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
	Total       int64 `json:"total"`
}

func cmdBalance(ctx context.Context, w *lightWallet, _ []string) (any, error) {
	txs, err := w.repo.ListTransactions(ctx, models.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var b balance
	for _, tx := range txs {
		b.Confirmed += tx.Value
	}
	for _, tx := range w.pendingTxs() {
		b.Unconfirmed += tx.Value
	}
	b.Total = b.Confirmed + b.Unconfirmed

	return b, nil
}

func cmdList(ctx context.Context, w *lightWallet, args []string) (any, error) {
	filter := models.TransactionFilter{Address: firstArg(args)}
	txs, err := w.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range w.pendingTxs() {
		if filter.Address == "" || tx.Address == filter.Address {
			out = append(out, tx)
		}
	}
	return append(out, txs...), nil
}

func cmdAddresses(_ context.Context, w *lightWallet, _ []string) (any, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	type listing struct {
		Addresses []models.Address     `json:"addresses"`
		Imported  []models.ImportedKey `json:"imported"`
	}
	out := listing{
		Addresses: append([]models.Address{}, w.addresses...),
		Imported:  append([]models.ImportedKey{}, w.imported...),
	}
	return out, nil
}

func cmdSeed(ctx context.Context, w *lightWallet, _ []string) (any, error) {
	seed, err := w.SeedPhrase(ctx)
	if err != nil {
		return nil, err
	}
	return seed.Dump(), nil
}

func cmdSave(ctx context.Context, w *lightWallet, _ []string) (any, error) {
	height := w.syncedHeight()
	if err := w.repo.UpdateSyncHeight(ctx, height); err != nil {
		return nil, fmt.Errorf("save sync height: %w", err)
	}
	return map[string]any{"result": "success", "height": height}, nil
}

func cmdMempool(_ context.Context, w *lightWallet, _ []string) (any, error) {
	return w.pendingTxs(), nil
}
