package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/engine"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/session"
)

// birthdayOffset is how far below the chain tip a new wallet is born, so
// that transactions mined while it was being created are not missed.
const birthdayOffset = 100

type lifecycleService struct {
	// mu serializes initialization so the active check and the install
	// happen as one step.
	mu sync.Mutex

	factory  engine.Factory
	registry *session.Registry
	cfg      config.WalletConfig
	logger   *logger.Logger
}

func NewLifecycleService(factory engine.Factory, registry *session.Registry, cfg config.WalletConfig, log *logger.Logger) LifecycleService {
	return &lifecycleService{
		factory:  factory,
		registry: registry,
		cfg:      cfg,
		logger:   log.WithComponent("lifecycle"),
	}
}

func (s *lifecycleService) InitializeNew(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureEmpty("lifecycleService.InitializeNew"); err != nil {
		return "", err
	}
	return s.initializeNew(ctx)
}

func (s *lifecycleService) initializeNew(ctx context.Context) (string, error) {
	log := s.logger.GetChildLogger()

	height, err := s.factory.QueryChainHeight(ctx, s.cfg)
	if err != nil {
		log.Err(err).Str("func", "lifecycleService.InitializeNew").Msg("error querying chain height")
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	startHeight := birthdayHeight(height)
	e, err := s.factory.Construct(ctx, s.cfg, startHeight)
	if err != nil {
		log.Err(err).Str("func", "lifecycleService.InitializeNew").Uint64("start_height", startHeight).Msg("error creating wallet")
		return "", fmt.Errorf("%w: %w", ErrEngineInit, err)
	}

	seed, seedErr := e.SeedPhrase(ctx)
	if seedErr != nil {
		log.Err(seedErr).Str("func", "lifecycleService.InitializeNew").Msg("error reading seed phrase")
	}

	s.install(e)

	if seedErr != nil {
		return "", fmt.Errorf("%w: %w", ErrSeedPhrase, seedErr)
	}

	out, err := json.Marshal(seed.Dump())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSeedPhrase, err)
	}

	log.Info().
		Str("func", "lifecycleService.InitializeNew").
		Uint64("chain_height", height).
		Uint64("birthday", startHeight).
		Msg("new wallet session initialized")

	return string(out), nil
}

func (s *lifecycleService) InitializeExisting(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureEmpty("lifecycleService.InitializeExisting"); err != nil {
		return "", err
	}
	return s.initializeExisting(ctx)
}

func (s *lifecycleService) initializeExisting(ctx context.Context) (string, error) {
	log := s.logger.GetChildLogger()

	e, err := s.factory.RestoreFromStorage(ctx, s.cfg)
	if err != nil {
		log.Err(err).Str("func", "lifecycleService.InitializeExisting").Msg("error restoring wallet")
		return "", fmt.Errorf("%w: %w", ErrRestore, err)
	}

	s.install(e)

	log.Info().Str("func", "lifecycleService.InitializeExisting").Msg("wallet session restored")
	return app.MsgOK, nil
}

func (s *lifecycleService) Initialize(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureEmpty("lifecycleService.Initialize"); err != nil {
		return "", err
	}
	if s.factory.StorageExists(ctx, s.cfg) {
		return s.initializeExisting(ctx)
	}
	return s.initializeNew(ctx)
}

func (s *lifecycleService) Deinitialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Clear()
}

// ensureEmpty refuses to build a second engine while one is installed.
func (s *lifecycleService) ensureEmpty(fn string) error {
	if s.registry.State() == session.StateActive {
		s.logger.Warn().Str("func", fn).Msg("session already initialized")
		return ErrAlreadyInitialized
	}
	return nil
}

func (s *lifecycleService) State() session.State {
	return s.registry.State()
}

// install binds the monitor to the handle lifetime and publishes the handle.
func (s *lifecycleService) install(e engine.Engine) {
	h := session.NewHandle(e)
	e.StartBackgroundMonitor(h.Context())
	s.registry.Set(h)
}

func birthdayHeight(tip uint64) uint64 {
	if tip < birthdayOffset {
		return 0
	}
	return tip - birthdayOffset
}
