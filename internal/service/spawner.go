package service

import (
	"errors"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
)

// spawner starts detached long-running commands.
type spawner interface {
	Spawn(task func()) error
	// Wait blocks until every spawned task has returned.
	Wait()
	Release()
}

// goroutineSpawner starts one goroutine per task with no limit.
type goroutineSpawner struct {
	wg sync.WaitGroup
}

func (s *goroutineSpawner) Spawn(task func()) error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		task()
	}()
	return nil
}

func (s *goroutineSpawner) Wait() {
	s.wg.Wait()
}

func (s *goroutineSpawner) Release() {}

// poolSpawner runs tasks on a fixed-size non-blocking pool and rejects
// tasks when every worker is busy.
type poolSpawner struct {
	pool *ants.Pool
	wg   sync.WaitGroup
}

func newPoolSpawner(size int, log *logger.Logger) (*poolSpawner, error) {
	pool, err := ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			log.Error().Str("func", "poolSpawner").Interface("panic", p).Msg("long-running command panicked")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &poolSpawner{pool: pool}, nil
}

func (s *poolSpawner) Spawn(task func()) error {
	s.wg.Add(1)
	err := s.pool.Submit(func() {
		defer s.wg.Done()
		task()
	})
	if err != nil {
		s.wg.Done()
		if errors.Is(err, ants.ErrPoolOverload) {
			return ErrTooManyInFlight
		}
		return err
	}
	return nil
}

func (s *poolSpawner) Wait() {
	s.wg.Wait()
}

func (s *poolSpawner) Release() {
	s.pool.Release()
}

func newSpawner(maxInFlight int, log *logger.Logger) (spawner, error) {
	if maxInFlight <= 0 {
		return &goroutineSpawner{}, nil
	}
	return newPoolSpawner(maxInFlight, log)
}
