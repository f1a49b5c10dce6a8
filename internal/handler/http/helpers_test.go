package http

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/service"
	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/models"
)

// fakeLifecycle implements service.LifecycleService for handler tests.
type fakeLifecycle struct {
	mu     sync.Mutex
	state  session.State
	result string
	err    error
	calls  []string
}

func (f *fakeLifecycle) record(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.err == nil {
		f.state = session.StateActive
	}
	return f.result, f.err
}

func (f *fakeLifecycle) InitializeNew(context.Context) (string, error) {
	return f.record("new")
}

func (f *fakeLifecycle) InitializeExisting(context.Context) (string, error) {
	return f.record("existing")
}

func (f *fakeLifecycle) Initialize(context.Context) (string, error) {
	return f.record("auto")
}

func (f *fakeLifecycle) Deinitialize() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "deinit")
	f.state = session.StateEmpty
}

func (f *fakeLifecycle) State() session.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// fakeCommands implements service.CommandService and echoes what it got.
type fakeCommands struct {
	mu      sync.Mutex
	command string
	args    string
	outcome string
}

func (f *fakeCommands) Dispatch(ctx context.Context, req models.CommandRequest) string {
	return f.Exec(ctx, req.Name(), req.Args())
}

func (f *fakeCommands) Exec(_ context.Context, command, args string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.command, f.args = command, args
	return f.outcome
}

func (f *fakeCommands) Wait() {}

type fakeAppInfo struct {
	info map[string]string
}

func (f *fakeAppInfo) GetAppInfo(context.Context) map[string]string {
	return f.info
}

func newTestServices(lc *fakeLifecycle, cmds *fakeCommands) *service.ClientServices {
	return &service.ClientServices{
		LifecycleService: lc,
		CommandService:   cmds,
		AppInfoService:   &fakeAppInfo{info: map[string]string{"version": "1.0.0", "date": "N/A", "commit": "N/A"}},
	}
}

func newTestHandler(lc *fakeLifecycle, cmds *fakeCommands, app config.ClientApp) *Handler {
	return NewHandler(newTestServices(lc, cmds), app, logger.Nop())
}
