package session_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/tempcheck/internal/session"
	"github.com/i474232898/tempcheck/internal/store"
	"github.com/i474232898/tempcheck/internal/temperature"
)

func newService() *session.Service {
	return session.NewService(store.NewMemoryStore(10, time.Hour))
}

func TestCreateDefaultScreen(t *testing.T) {
	svc := newService()

	view, err := svc.Create(session.State{})
	require.NoError(t, err)

	_, err = uuid.Parse(view.ID)
	require.NoError(t, err)
	assert.Equal(t, temperature.Celsius, view.State.Unit)
	assert.Equal(t, 0.0, view.State.Value)
	assert.InDelta(t, 32, view.Result.Fahrenheit, 1e-9)
	assert.InDelta(t, 273.15, view.Result.Kelvin, 1e-9)
	assert.Equal(t, time.UTC, view.UpdatedAt.Location())
	assert.Equal(t, 1, svc.Len())
}

func TestCreateRejectsNonFinite(t *testing.T) {
	svc := newService()

	_, err := svc.Create(session.State{Value: math.NaN()})
	assert.ErrorIs(t, err, temperature.ErrInvalidInput)
	assert.Equal(t, 0, svc.Len())
}

func TestUpdateRecomputes(t *testing.T) {
	svc := newService()
	created, err := svc.Create(session.State{})
	require.NoError(t, err)

	value := 212.0
	view, err := svc.Update(created.ID, session.Change{Value: &value})
	require.NoError(t, err)
	assert.InDelta(t, 413.6, view.Result.Fahrenheit, 1e-9)

	unit := temperature.Fahrenheit
	view, err = svc.Update(created.ID, session.Change{Unit: &unit})
	require.NoError(t, err)
	assert.Equal(t, session.State{Value: 212, Unit: temperature.Fahrenheit}, view.State)
	assert.InDelta(t, 100, view.Result.Celsius, 1e-9)
	assert.InDelta(t, 373.15, view.Result.Kelvin, 1e-9)
	assert.False(t, view.UpdatedAt.Before(created.UpdatedAt))

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, view.State, got.State)
	assert.Equal(t, view.Result, got.Result)
}

func TestUpdateRejectedLeavesStateUntouched(t *testing.T) {
	svc := newService()
	created, err := svc.Create(session.State{Value: 36.6})
	require.NoError(t, err)

	bad := math.Inf(1)
	_, err = svc.Update(created.ID, session.Change{Value: &bad})
	assert.ErrorIs(t, err, temperature.ErrInvalidInput)

	unknown := temperature.Unit(9)
	_, err = svc.Update(created.ID, session.Change{Unit: &unknown})
	assert.ErrorIs(t, err, temperature.ErrInvalidInput)

	_, err = svc.Update(created.ID, session.Change{})
	assert.ErrorIs(t, err, temperature.ErrInvalidInput)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.State, got.State)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
}

func TestUnknownScreen(t *testing.T) {
	svc := newService()
	id := uuid.NewString()

	_, err := svc.Get(id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	value := 1.0
	_, err = svc.Update(id, session.Change{Value: &value})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(id), store.ErrNotFound)
}

func TestDeleteAndPrune(t *testing.T) {
	svc := session.NewService(store.NewMemoryStore(0, time.Nanosecond))

	a, err := svc.Create(session.State{})
	require.NoError(t, err)
	_, err = svc.Create(session.State{Value: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(a.ID))
	assert.Equal(t, 1, svc.Len())

	time.Sleep(time.Millisecond)
	assert.Equal(t, 1, svc.Prune())
	assert.Equal(t, 0, svc.Len())
}

func TestConcurrentValueAndUnitChangesBothLand(t *testing.T) {
	svc := session.NewService(store.NewMemoryStore(0, time.Hour))

	ids := make([]string, 50)
	for i := range ids {
		view, err := svc.Create(session.State{})
		require.NoError(t, err)
		ids[i] = view.ID
	}

	value := 99.0
	unit := temperature.Kelvin

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Update(id, session.Change{Value: &value})
			assert.NoError(t, err)
		}(id)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Update(id, session.Change{Unit: &unit})
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		got, err := svc.Get(id)
		require.NoError(t, err)
		assert.Equal(t, session.State{Value: 99, Unit: temperature.Kelvin}, got.State)
	}
}

func TestConcurrentDeleteAndUpdate(t *testing.T) {
	svc := session.NewService(store.NewMemoryStore(0, time.Hour))

	ids := make([]string, 50)
	for i := range ids {
		view, err := svc.Create(session.State{})
		require.NoError(t, err)
		ids[i] = view.ID
	}

	value := 42.0
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, svc.Delete(id))
		}(id)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Update(id, session.Change{Value: &value})
			if err != nil {
				assert.ErrorIs(t, err, store.ErrNotFound)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 0, svc.Len())
	for _, id := range ids {
		_, err := svc.Get(id)
		assert.ErrorIs(t, err, store.ErrNotFound, "screen %s came back after delete", id)
	}
}
