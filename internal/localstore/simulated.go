package localstore

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// ErrSimulatedFailure rejects an operation on the simulated store.
var ErrSimulatedFailure = errors.New("simulated storage failure")

// SimulatedStore wraps a Store with an artificial delay and a random failure
// rate, for demonstrating how the UI behaves against slow or flaky
// persistence. It is not part of the core contract: a failure simply rejects
// the operation, there is no retry.
type SimulatedStore struct {
	inner    Store
	delay    time.Duration
	failRate float64

	// randFloat is an indirection for tests.
	randFloat func() float64
}

// NewSimulatedStore decorates inner. failRate is the probability in [0,1]
// that any single operation fails.
func NewSimulatedStore(inner Store, delay time.Duration, failRate float64) *SimulatedStore {
	return &SimulatedStore{
		inner:     inner,
		delay:     delay,
		failRate:  failRate,
		randFloat: rand.Float64,
	}
}

// simulate waits for the configured delay (honoring ctx) and then decides
// whether the operation fails.
func (s *SimulatedStore) simulate(ctx context.Context) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.failRate > 0 && s.randFloat() < s.failRate {
		return ErrSimulatedFailure
	}
	return nil
}

func (s *SimulatedStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	return s.inner.GetItem(ctx, key)
}

func (s *SimulatedStore) SetItem(ctx context.Context, key string, value []byte) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	return s.inner.SetItem(ctx, key, value)
}

func (s *SimulatedStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	return s.inner.RemoveItem(ctx, key)
}

func (s *SimulatedStore) List(ctx context.Context) (map[string][]byte, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	return s.inner.List(ctx)
}

func (s *SimulatedStore) Clear(ctx context.Context) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	return s.inner.Clear(ctx)
}
