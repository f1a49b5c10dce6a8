package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/metrics"
	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/internal/utils"
	"github.com/MKhiriev/go-light-wallet/models"
)

// longRunning are the commands answered with "OK" and executed in the
// background.
var longRunning = map[string]struct{}{
	"sync":   {},
	"rescan": {},
	"import": {},
}

// IsLongRunning reports whether command is executed in the background.
func IsLongRunning(command string) bool {
	_, ok := longRunning[command]
	return ok
}

type commandService struct {
	registry *session.Registry
	spawner  spawner
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

func newCommandService(registry *session.Registry, sp spawner, log *logger.Logger) *commandService {
	return &commandService{
		registry: registry,
		spawner:  sp,
		ids:      utils.NewUUIDGenerator(),
		logger:   log.WithComponent("dispatch"),
	}
}

func (s *commandService) Exec(ctx context.Context, command, args string) string {
	return s.Dispatch(ctx, models.NewCommandRequest(command, args))
}

func (s *commandService) Dispatch(ctx context.Context, req models.CommandRequest) string {
	h, ok := s.registry.Get()
	if !ok {
		metrics.RecordDispatch(req.Name(), metrics.ModeNoSession)
		return Outcome("", ErrNoActiveSession)
	}

	if IsLongRunning(req.Name()) {
		return s.dispatchLongRunning(ctx, h, req)
	}

	defer h.Release()
	return s.dispatchImmediate(ctx, h, req)
}

func (s *commandService) dispatchImmediate(ctx context.Context, h *session.Handle, req models.CommandRequest) string {
	metrics.RecordDispatch(req.Name(), metrics.ModeImmediate)

	start := time.Now()
	result := h.Engine().ExecuteCommand(ctx, req.Name(), req.ArgList())
	metrics.ObserveCommand(req.Name(), metrics.ModeImmediate, time.Since(start))

	return result
}

// dispatchLongRunning hands h to a background task that releases it when
// the command returns.
func (s *commandService) dispatchLongRunning(ctx context.Context, h *session.Handle, req models.CommandRequest) string {
	log := s.logger.GetChildLogger()
	id := s.ids.Generate()
	taskCtx := context.WithoutCancel(ctx)

	err := s.spawner.Spawn(func() {
		defer h.Release()
		metrics.LongRunningStarted()
		defer metrics.LongRunningFinished()

		start := time.Now()
		result := h.Engine().ExecuteCommand(taskCtx, req.Name(), req.ArgList())
		metrics.ObserveCommand(req.Name(), metrics.ModeLongRunning, time.Since(start))

		log.Debug().
			Str("func", "commandService.dispatchLongRunning").
			Str("dispatch_id", id).
			Str("command", req.Name()).
			Str("result", result).
			Msg("long-running command finished")
	})
	if err != nil {
		h.Release()
		metrics.RecordDispatch(req.Name(), metrics.ModeRejected)
		log.Warn().Err(err).Str("func", "commandService.dispatchLongRunning").Str("command", req.Name()).Msg("long-running command rejected")
		return Outcome("", err)
	}

	metrics.RecordDispatch(req.Name(), metrics.ModeLongRunning)
	log.Debug().
		Str("func", "commandService.dispatchLongRunning").
		Str("dispatch_id", id).
		Str("command", req.Name()).
		Msg("long-running command started")

	return app.MsgOK
}

func (s *commandService) Wait() {
	s.spawner.Wait()
}
