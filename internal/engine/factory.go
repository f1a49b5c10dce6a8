package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-light-wallet/internal/adapter"
	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/crypto"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/store"
	"github.com/MKhiriev/go-light-wallet/models"
)

// AdapterConstructor builds the chain-data client for a wallet config.
type AdapterConstructor func(cfg config.WalletConfig, log *logger.Logger) (adapter.ChainAdapter, error)

type lightWalletFactory struct {
	keychain   crypto.KeyChainService
	logger     *logger.Logger
	newAdapter AdapterConstructor
	newBackOff func() backoff.BackOff
}

// FactoryOption customizes the factory returned by [NewFactory].
type FactoryOption func(*lightWalletFactory)

// WithAdapterConstructor replaces the HTTP chain-data client.
func WithAdapterConstructor(fn AdapterConstructor) FactoryOption {
	return func(f *lightWalletFactory) {
		f.newAdapter = fn
	}
}

// WithBackOff replaces the retry policy used for chain-data fetches.
func WithBackOff(fn func() backoff.BackOff) FactoryOption {
	return func(f *lightWalletFactory) {
		f.newBackOff = fn
	}
}

// NewFactory returns a [Factory] producing SQLite-backed light wallets that
// talk to the chain-data server over HTTP.
func NewFactory(keychain crypto.KeyChainService, log *logger.Logger, opts ...FactoryOption) Factory {
	f := &lightWalletFactory{
		keychain:   keychain,
		logger:     log.WithComponent("engine"),
		newAdapter: adapter.NewHTTPChainAdapter,
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *lightWalletFactory) QueryChainHeight(ctx context.Context, cfg config.WalletConfig) (uint64, error) {
	chain, err := f.newAdapter(cfg, f.logger)
	if err != nil {
		return 0, fmt.Errorf("build chain adapter: %w", err)
	}

	tip, err := retryFetch(ctx, f.newBackOff(), "latest_block", func() (models.LatestBlock, error) {
		return chain.LatestBlockHeight(ctx)
	})
	if err != nil {
		return 0, err
	}
	return tip.Height, nil
}

func (f *lightWalletFactory) Construct(ctx context.Context, cfg config.WalletConfig, startHeight uint64) (Engine, error) {
	log := f.logger.GetChildLogger()

	chain, err := f.newAdapter(cfg, f.logger)
	if err != nil {
		return nil, fmt.Errorf("build chain adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, config.ClientDB{DSN: cfg.DSN}, f.logger)
	if err != nil {
		return nil, fmt.Errorf("open wallet storage: %w", err)
	}

	wallet, seed, addresses, err := f.createWallet(ctx, storages.WalletRepository, cfg, startHeight)
	if err != nil {
		storages.Close()
		return nil, err
	}

	log.Info().
		Str("func", "lightWalletFactory.Construct").
		Str("chain", string(cfg.Chain)).
		Uint64("birthday", startHeight).
		Msg("new wallet created")

	return newLightWallet(walletParams{
		chain:      chain,
		repo:       storages.WalletRepository,
		storage:    storages,
		logger:     f.logger,
		wallet:     wallet,
		seed:       seed,
		addresses:  addresses,
		monitor:    cfg.MonitorInterval,
		newBackOff: f.newBackOff,
	}), nil
}

func (f *lightWalletFactory) createWallet(ctx context.Context, repo store.WalletRepository, cfg config.WalletConfig, birthday uint64) (models.Wallet, []byte, []models.Address, error) {
	exists, err := repo.WalletExists(ctx)
	if err != nil {
		return models.Wallet{}, nil, nil, fmt.Errorf("check wallet: %w", err)
	}
	if exists {
		return models.Wallet{}, nil, nil, ErrWalletExists
	}

	seed, err := f.keychain.GenerateSeed()
	if err != nil {
		return models.Wallet{}, nil, nil, fmt.Errorf("generate seed: %w", err)
	}
	salt, err := f.keychain.GenerateEncryptionSalt()
	if err != nil {
		return models.Wallet{}, nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	sealed, err := f.keychain.SealSeed(seed, f.keychain.DeriveKey(cfg.Passphrase, salt))
	if err != nil {
		return models.Wallet{}, nil, nil, fmt.Errorf("seal seed: %w", err)
	}

	wallet := models.Wallet{
		Chain:            cfg.Chain,
		EncryptedSeed:    sealed,
		EncryptionSalt:   salt,
		Birthday:         birthday,
		LastSyncedHeight: birthday,
		CreatedAt:        now().UTC(),
	}
	addresses := []models.Address{{Index: 0, Address: f.keychain.DeriveAddress(seed, cfg.Chain, 0)}}

	if err = repo.CreateWallet(ctx, wallet, addresses); err != nil {
		if errors.Is(err, store.ErrWalletAlreadyExists) {
			return models.Wallet{}, nil, nil, ErrWalletExists
		}
		return models.Wallet{}, nil, nil, fmt.Errorf("persist wallet: %w", err)
	}

	return wallet, seed, addresses, nil
}

func (f *lightWalletFactory) RestoreFromStorage(ctx context.Context, cfg config.WalletConfig) (Engine, error) {
	log := f.logger.GetChildLogger()

	if !store.WalletFileExists(cfg.DSN) {
		return nil, ErrNoWallet
	}

	chain, err := f.newAdapter(cfg, f.logger)
	if err != nil {
		return nil, fmt.Errorf("build chain adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, config.ClientDB{DSN: cfg.DSN}, f.logger)
	if err != nil {
		return nil, fmt.Errorf("open wallet storage: %w", err)
	}

	params, err := f.loadWallet(ctx, storages.WalletRepository, cfg)
	if err != nil {
		storages.Close()
		return nil, err
	}
	params.chain = chain
	params.storage = storages

	log.Info().
		Str("func", "lightWalletFactory.RestoreFromStorage").
		Str("chain", string(cfg.Chain)).
		Uint64("last_synced_height", params.wallet.LastSyncedHeight).
		Msg("wallet restored")

	return newLightWallet(params), nil
}

func (f *lightWalletFactory) loadWallet(ctx context.Context, repo store.WalletRepository, cfg config.WalletConfig) (walletParams, error) {
	wallet, err := repo.GetWallet(ctx)
	if err != nil {
		if errors.Is(err, store.ErrWalletNotFound) {
			return walletParams{}, ErrNoWallet
		}
		return walletParams{}, fmt.Errorf("load wallet: %w", err)
	}
	if wallet.Chain != cfg.Chain {
		return walletParams{}, fmt.Errorf("%w: stored %q, configured %q", ErrChainMismatch, wallet.Chain, cfg.Chain)
	}

	seed, err := f.keychain.OpenSeed(wallet.EncryptedSeed, f.keychain.DeriveKey(cfg.Passphrase, wallet.EncryptionSalt))
	if err != nil {
		return walletParams{}, fmt.Errorf("open seed: %w", err)
	}

	addresses, err := repo.ListAddresses(ctx)
	if err != nil {
		return walletParams{}, fmt.Errorf("load addresses: %w", err)
	}
	imported, err := repo.ListImportedKeys(ctx)
	if err != nil {
		return walletParams{}, fmt.Errorf("load imported keys: %w", err)
	}

	return walletParams{
		repo:       repo,
		logger:     f.logger,
		wallet:     wallet,
		seed:       seed,
		addresses:  addresses,
		imported:   imported,
		monitor:    cfg.MonitorInterval,
		newBackOff: f.newBackOff,
	}, nil
}

func (f *lightWalletFactory) StorageExists(ctx context.Context, cfg config.WalletConfig) bool {
	if !store.WalletFileExists(cfg.DSN) {
		return false
	}

	storages, err := store.NewClientStorages(ctx, config.ClientDB{DSN: cfg.DSN}, f.logger)
	if err != nil {
		f.logger.Err(err).Str("func", "lightWalletFactory.StorageExists").Msg("cannot open wallet storage")
		return false
	}
	defer storages.Close()

	exists, err := storages.WalletRepository.WalletExists(ctx)
	if err != nil {
		f.logger.Err(err).Str("func", "lightWalletFactory.StorageExists").Msg("cannot check wallet")
		return false
	}
	return exists
}
