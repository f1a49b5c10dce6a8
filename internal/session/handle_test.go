package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-light-wallet/internal/mock"
)

func TestHandle_LastReleaseClosesEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)

	h := NewHandle(e)
	c1 := h.Clone()
	c2 := c1.Clone()
	assert.Equal(t, int64(3), h.Refs())
	assert.True(t, h.Same(c2))

	require.NoError(t, h.Release())
	require.NoError(t, c1.Release())
	assert.NoError(t, c2.Context().Err())

	e.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, c2.Release())

	assert.Error(t, c2.Context().Err())
	select {
	case <-h.Done():
	default:
		t.Fatal("handle not done after last release")
	}
}

func TestHandle_DoubleReleaseIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)

	h := NewHandle(e)
	c := h.Clone()

	require.NoError(t, c.Release())
	require.NoError(t, c.Release())
	assert.Equal(t, int64(1), h.Refs())

	e.EXPECT().Close().Return(nil)
	require.NoError(t, h.Release())
}

func TestHandle_ReleaseReturnsCloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)
	closeErr := errors.New("disk gone")
	e.EXPECT().Close().Return(closeErr)

	assert.ErrorIs(t, NewHandle(e).Release(), closeErr)
}

func TestHandle_ConcurrentCloneRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mock.NewMockEngine(ctrl)

	h := NewHandle(e)

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := h.Clone()
			_ = c.Release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), h.Refs())

	e.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, h.Release())
}
