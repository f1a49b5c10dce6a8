package session

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/metrics"
	"github.com/MKhiriev/go-light-wallet/internal/mock"
)

func TestRegistry_EmptyByDefault(t *testing.T) {
	r := NewRegistry(logger.Nop())

	assert.Equal(t, StateEmpty, r.State())
	h, ok := r.Get()
	assert.False(t, ok)
	assert.Nil(t, h)

	assert.NotPanics(t, r.Clear)
}

func TestRegistry_SetGetClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)
	r := NewRegistry(logger.Nop())

	installed := NewHandle(e)
	r.Set(installed)
	assert.Equal(t, StateActive, r.State())

	got, ok := r.Get()
	require.True(t, ok)
	assert.True(t, got.Same(installed))
	assert.Equal(t, e, got.Engine())

	r.Clear()
	assert.Equal(t, StateEmpty, r.State())

	// the borrowed reference keeps the engine open
	assert.NoError(t, got.Context().Err())

	e.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, got.Release())
}

func TestRegistry_SetReplacesAndReleasesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock.NewMockEngine(ctrl)
	second := mock.NewMockEngine(ctrl)
	r := NewRegistry(logger.Nop())

	r.Set(NewHandle(first))

	first.EXPECT().Close().Return(nil).Times(1)
	r.Set(NewHandle(second))

	got, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, second, got.Engine())
	require.NoError(t, got.Release())

	second.EXPECT().Close().Return(nil).Times(1)
	r.Clear()
}

func TestRegistry_ConcurrentGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)
	r := NewRegistry(logger.Nop())

	installed := NewHandle(e)
	r.Set(installed)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, ok := r.Get()
			if assert.True(t, ok) {
				assert.True(t, h.Same(installed))
				_ = h.Release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), installed.Refs())

	e.EXPECT().Close().Return(nil)
	r.Clear()
}

func sessionActiveGauge(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "lightwallet_session_active" {
			require.Len(t, f.GetMetric(), 1)
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("lightwallet_session_active is not registered")
	return 0
}

func TestRegistry_GaugeFollowsSlotUnderRace(t *testing.T) {
	metrics.RegisterMetrics()
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)
	e.EXPECT().Close().Return(nil).AnyTimes()

	for round := range 20 {
		r := NewRegistry(logger.Nop())

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					r.Set(NewHandle(e))
				} else {
					r.Clear()
				}
			}()
		}
		wg.Wait()

		want := 0.0
		if r.State() == StateActive {
			want = 1
		}
		assert.Equal(t, want, sessionActiveGauge(t), "round %d", round)
		r.Clear()
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "active", StateActive.String())
}
