package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/models"
)

func newTestCommandService(t *testing.T, maxInFlight int) (*commandService, *session.Registry) {
	t.Helper()
	registry := session.NewRegistry(logger.Nop())
	sp, err := newSpawner(maxInFlight, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(sp.Release)

	return newCommandService(registry, sp, logger.Nop()), registry
}

// ─────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────

func TestIsLongRunning(t *testing.T) {
	for _, name := range []string{"sync", "rescan", "import"} {
		assert.True(t, IsLongRunning(name), name)
	}
	for _, name := range []string{"syncstatus", "balance", "list", "help", "", "SYNC"} {
		assert.False(t, IsLongRunning(name), name)
	}
}

// ─────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────

func TestDispatch_NoSession(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine("unused", 0)
	registry.Set(session.NewHandle(stub))
	registry.Clear()

	for _, name := range []string{"sync", "balance"} {
		got := svc.Exec(context.Background(), name, "")
		assert.Equal(t, "Error: light client is not initialized", got)
	}
	svc.Wait()
	assert.Equal(t, int64(0), stub.calls.Load())
}

func TestDispatch_ImmediateReturnsResultVerbatim(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine(`{"confirmed":1}`, 30*time.Millisecond)
	registry.Set(session.NewHandle(stub))
	t.Cleanup(registry.Clear)

	start := time.Now()
	got := svc.Exec(context.Background(), "balance", "")

	assert.Equal(t, `{"confirmed":1}`, got)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestDispatch_ArgsConversion(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{"empty string is zero args", "", nil},
		{"single word", "zs1abc", []string{"zs1abc"}},
		{"spaces are not split", "a b  c", []string{"a b  c"}},
	}

	// list runs inline, import runs detached; both convert the same way
	for _, command := range []string{"list", "import"} {
		for _, tt := range tests {
			t.Run(command+"/"+tt.name, func(t *testing.T) {
				svc, registry := newTestCommandService(t, 0)
				stub := newStubEngine("done", 0)
				registry.Set(session.NewHandle(stub))
				t.Cleanup(registry.Clear)

				svc.Exec(context.Background(), command, tt.args)
				svc.Wait()

				name, args := stub.last()
				assert.Equal(t, command, name)
				assert.Equal(t, tt.want, args)
				assert.Equal(t, int64(1), stub.calls.Load())
			})
		}
	}
}

func TestDispatch_LongRunningReturnsImmediately(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine("ignored", 500*time.Millisecond)
	registry.Set(session.NewHandle(stub))

	for _, name := range []string{"sync", "rescan", "import"} {
		start := time.Now()
		got := svc.Exec(context.Background(), name, "")
		assert.Equal(t, "OK", got, name)
		assert.Less(t, time.Since(start), 100*time.Millisecond, name)
	}

	svc.Wait()
	assert.Equal(t, int64(3), stub.calls.Load())

	registry.Clear()
	assert.Equal(t, int64(1), stub.closed.Load())
}

func TestDispatch_LongRunningOutlivesCallerContext(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine("ignored", 20*time.Millisecond)
	registry.Set(session.NewHandle(stub))
	t.Cleanup(registry.Clear)

	ctx, cancel := context.WithCancel(context.Background())
	assert.Equal(t, "OK", svc.Exec(ctx, "sync", ""))
	cancel()

	svc.Wait()
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestDispatch_ConcurrentLongRunningKeepsSameHandle(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine("ignored", 50*time.Millisecond)
	installed := session.NewHandle(stub)
	registry.Set(installed)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "OK", svc.Exec(context.Background(), "sync", ""))
		}()
	}
	wg.Wait()

	got, ok := registry.Get()
	require.True(t, ok)
	assert.True(t, got.Same(installed))
	require.NoError(t, got.Release())

	svc.Wait()
	registry.Clear()
	assert.Equal(t, int64(1), stub.closed.Load())
}

func TestDispatch_DeinitializeWhileLongRunning(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine("ignored", 50*time.Millisecond)
	registry.Set(session.NewHandle(stub))

	assert.Equal(t, "OK", svc.Exec(context.Background(), "rescan", ""))
	<-stub.started
	registry.Clear()

	// the running command still holds the engine
	assert.Equal(t, int64(0), stub.closed.Load())

	svc.Wait()
	assert.Equal(t, int64(1), stub.closed.Load())
	assert.Equal(t, "Error: light client is not initialized", svc.Exec(context.Background(), "syncstatus", ""))
}

func TestDispatch_BoundedPoolRejectsWhenSaturated(t *testing.T) {
	svc, registry := newTestCommandService(t, 1)
	stub := newStubEngine("ignored", 200*time.Millisecond)
	installed := session.NewHandle(stub)
	registry.Set(installed)

	assert.Equal(t, "OK", svc.Exec(context.Background(), "sync", ""))
	<-stub.started

	got := svc.Exec(context.Background(), "sync", "")
	assert.Equal(t, "Error: too many long-running commands in flight", got)

	// immediate commands are never pooled
	assert.Equal(t, "ignored", svc.Exec(context.Background(), "syncstatus", ""))

	svc.Wait()
	assert.Equal(t, int64(1), installed.Refs())
	registry.Clear()
}

func TestDispatch_RequestIsUsedOnce(t *testing.T) {
	svc, registry := newTestCommandService(t, 0)
	stub := newStubEngine("r", 0)
	registry.Set(session.NewHandle(stub))
	t.Cleanup(registry.Clear)

	got := svc.Dispatch(context.Background(), models.NewCommandRequest("addresses", ""))
	assert.Equal(t, "r", got)
	assert.Equal(t, int64(1), stub.calls.Load())
}
