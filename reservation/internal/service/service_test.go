package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/errs"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/repository"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/service"
)

func june(d int) model.Date {
	return model.NewDate(2024, time.June, d)
}

func newService(t *testing.T) *service.Service {
	t.Helper()
	return service.NewService(repository.NewMemoryRepository(zap.NewNop()), zap.NewNop())
}

func bob() model.Reservation {
	return model.Reservation{Name: "Bob", StartDate: june(1), EndDate: june(5), RoomID: 3}
}

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateReservation(ctx, bob())
	require.NoError(t, err)
	require.NotEmpty(t, created.ReservationUid)

	tests := []struct {
		name    string
		rsv     model.Reservation
		wantErr error
	}{
		{
			name:    "touching end date",
			rsv:     model.Reservation{Name: "Alice", StartDate: june(5), EndDate: june(8), RoomID: 3},
			wantErr: errs.ErrUnavailable,
		},
		{
			name: "day after",
			rsv:  model.Reservation{Name: "Alice", StartDate: june(6), EndDate: june(8), RoomID: 3},
		},
		{
			name: "other room",
			rsv:  model.Reservation{Name: "Carol", StartDate: june(1), EndDate: june(5), RoomID: 4},
		},
		{
			name:    "room zero",
			rsv:     model.Reservation{Name: "Dan", StartDate: june(10), EndDate: june(11), RoomID: 0},
			wantErr: errs.ErrRoomID,
		},
		{
			name:    "room eleven",
			rsv:     model.Reservation{Name: "Dan", StartDate: june(10), EndDate: june(11), RoomID: 11},
			wantErr: errs.ErrRoomID,
		},
		{
			name:    "start after end on a busy range",
			rsv:     model.Reservation{Name: "Dan", StartDate: june(4), EndDate: june(2), RoomID: 3},
			wantErr: errs.ErrDateOrder,
		},
		{
			name:    "missing name",
			rsv:     model.Reservation{StartDate: june(20), EndDate: june(21), RoomID: 3},
			wantErr: errs.ErrName,
		},
		{
			name:    "missing dates",
			rsv:     model.Reservation{Name: "Dan", RoomID: 3},
			wantErr: errs.ErrDateRequired,
		},
	}
	for _, tt := range tests {
		_, err := svc.CreateReservation(ctx, tt.rsv)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
	}

	byRoom, err := svc.GetReservationsByRoom(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byRoom, 2)
}

func TestService_Lookups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateReservation(ctx, bob())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		byName, err := svc.GetReservationsByName(ctx, "Bob")
		require.NoError(t, err)
		require.Equal(t, []model.Reservation{created}, byName)
	}

	none, err := svc.GetReservationsByName(ctx, "Nobody")
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = svc.GetReservationsByRoom(ctx, 0)
	require.ErrorIs(t, err, errs.ErrRoomID)

	got, err := svc.GetReservation(ctx, created.ReservationUid)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = svc.GetReservation(ctx, "not-a-uuid")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_IsAvailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	available, err := svc.IsAvailable(ctx, 3, model.Interval{Start: june(1), End: june(5)})
	require.NoError(t, err)
	require.True(t, available)

	_, err = svc.CreateReservation(ctx, bob())
	require.NoError(t, err)

	available, err = svc.IsAvailable(ctx, 3, model.Interval{Start: june(5), End: june(5)})
	require.NoError(t, err)
	require.False(t, available)

	_, err = svc.IsAvailable(ctx, 3, model.Interval{Start: june(5), End: june(1)})
	require.ErrorIs(t, err, errs.ErrDateOrder)
}

func TestService_UpdateReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.CreateReservation(ctx, bob())
	require.NoError(t, err)
	_, err = svc.CreateReservation(ctx, model.Reservation{Name: "Eve", StartDate: june(10), EndDate: june(12), RoomID: 3})
	require.NoError(t, err)

	updated, err := svc.UpdateReservation(ctx, model.UpdateReservationRequest{
		Reservation: bob(), NewStartDate: june(3), NewEndDate: june(7),
	})
	require.NoError(t, err)
	require.Equal(t, june(3), updated.StartDate)
	require.Equal(t, june(7), updated.EndDate)

	moved := bob()
	moved.StartDate, moved.EndDate = june(3), june(7)

	_, err = svc.UpdateReservation(ctx, model.UpdateReservationRequest{
		Reservation: moved, NewStartDate: june(7), NewEndDate: june(10),
	})
	require.ErrorIs(t, err, errs.ErrUnavailable)

	_, err = svc.UpdateReservation(ctx, model.UpdateReservationRequest{
		Reservation: bob(), NewStartDate: june(20), NewEndDate: june(21),
	})
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.UpdateReservation(ctx, model.UpdateReservationRequest{
		Reservation: moved, NewStartDate: june(21), NewEndDate: june(20),
	})
	require.ErrorIs(t, err, errs.ErrDateOrder)
}

func TestService_CancelReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateReservation(ctx, bob())
	require.NoError(t, err)

	cancelled, err := svc.CancelReservation(ctx, bob())
	require.NoError(t, err)
	require.Equal(t, created.ReservationUid, cancelled.ReservationUid)

	_, err = svc.CancelReservation(ctx, bob())
	require.ErrorIs(t, err, errs.ErrNotFound)

	// the freed range can be booked again
	again, err := svc.CreateReservation(ctx, bob())
	require.NoError(t, err)

	_, err = svc.CancelReservationByUid(ctx, again.ReservationUid)
	require.NoError(t, err)
	_, err = svc.CancelReservationByUid(ctx, again.ReservationUid)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ConcurrentCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateReservation(ctx, bob())
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, errs.ErrUnavailable)
		}()
	}
	wg.Wait()
	require.Equal(t, 1, succeeded)
}

type brokenStore struct {
	repository.Repository
}

var errConnRefused = errors.New("connection refused")

func (brokenStore) ListByRoom(context.Context, int) ([]model.Reservation, error) {
	return nil, errConnRefused
}

func TestService_StoreFailureOpensBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := service.NewService(brokenStore{}, zap.NewNop())

	var err error
	for i := 0; i < 10; i++ {
		_, err = svc.GetReservationsByRoom(ctx, 3)
		require.ErrorIs(t, err, errConnRefused)
	}
	_, err = svc.GetReservationsByRoom(ctx, 3)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

type abortedStore struct {
	repository.Repository
}

func (abortedStore) ListByRoom(ctx context.Context, _ int) ([]model.Reservation, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestService_CancelledRequestsKeepBreakerClosed(t *testing.T) {
	t.Parallel()
	svc := service.NewService(abortedStore{}, zap.NewNop())

	for i := 0; i < 25; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.GetReservationsByRoom(ctx, 3)
		require.ErrorIs(t, err, context.Canceled)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err := svc.GetReservationsByRoom(ctx, 3)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

type undeletableStore struct {
	repository.Repository
}

func (undeletableStore) DeleteByUid(context.Context, string) error {
	return errConnRefused
}

func TestService_CancelDeleteFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := undeletableStore{Repository: repository.NewMemoryRepository(zap.NewNop())}
	svc := service.NewService(store, zap.NewNop())

	created, err := svc.CreateReservation(ctx, bob())
	require.NoError(t, err)

	cancelled, err := svc.CancelReservation(ctx, bob())
	require.ErrorIs(t, err, errConnRefused)
	require.Equal(t, model.Reservation{}, cancelled)

	cancelled, err = svc.CancelReservationByUid(ctx, created.ReservationUid)
	require.ErrorIs(t, err, errConnRefused)
	require.Equal(t, model.Reservation{}, cancelled)
}
