package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/errs"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
)

// memoryRepository keeps reservations in process. Every write checks for overlap
// under the same lock it writes with.
type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Reservation
	log   *zap.Logger
}

func NewMemoryRepository(log *zap.Logger) *memoryRepository {
	return &memoryRepository{
		items: make(map[string]model.Reservation),
		log:   log.Named("memory_repo"),
	}
}

func (r *memoryRepository) CreateReservation(_ context.Context, rsv model.Reservation) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !model.ValidRoom(rsv.RoomID) {
		return model.Reservation{}, errs.ErrRoomID
	}
	if !rsv.Interval().Valid() {
		return model.Reservation{}, errs.ErrDateOrder
	}
	if r.overlapsLocked(rsv.RoomID, rsv.Interval(), "") {
		return model.Reservation{}, errs.ErrUnavailable
	}
	rsv.ReservationUid = uuid.NewString()
	r.items[rsv.ReservationUid] = rsv
	r.log.Debug("CreateReservation", zap.String("reservation_uid", rsv.ReservationUid), zap.Int("room_id", rsv.RoomID))
	return rsv, nil
}

func (r *memoryRepository) GetReservation(_ context.Context, reservationUid string) (model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rsv, ok := r.items[reservationUid]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	return rsv, nil
}

func (r *memoryRepository) FindReservation(_ context.Context, rsv model.Reservation) (model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if found, ok := r.findLocked(rsv); ok {
		return found, nil
	}
	return model.Reservation{}, errs.ErrNotFound
}

func (r *memoryRepository) ListByName(_ context.Context, name string) ([]model.Reservation, error) {
	return r.filter(func(rsv model.Reservation) bool { return rsv.Name == name }), nil
}

func (r *memoryRepository) ListByRoom(_ context.Context, roomID int) ([]model.Reservation, error) {
	return r.filter(func(rsv model.Reservation) bool { return rsv.RoomID == roomID }), nil
}

func (r *memoryRepository) ListOverlapping(_ context.Context, roomID int, interval model.Interval, excludeUid string) ([]model.Reservation, error) {
	return r.filter(func(rsv model.Reservation) bool {
		return rsv.RoomID == roomID &&
			rsv.ReservationUid != excludeUid &&
			interval.Overlaps(rsv.Interval())
	}), nil
}

func (r *memoryRepository) UpdateDates(_ context.Context, reservationUid string, interval model.Interval) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rsv, ok := r.items[reservationUid]
	if !ok {
		return errs.ErrNotFound
	}
	if !interval.Valid() {
		return errs.ErrDateOrder
	}
	if r.overlapsLocked(rsv.RoomID, interval, reservationUid) {
		return errs.ErrUnavailable
	}
	rsv.StartDate, rsv.EndDate = interval.Start, interval.End
	r.items[reservationUid] = rsv
	return nil
}

func (r *memoryRepository) DeleteByUid(_ context.Context, reservationUid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[reservationUid]; !ok {
		return errs.ErrNotFound
	}
	delete(r.items, reservationUid)
	return nil
}

func (r *memoryRepository) findLocked(rsv model.Reservation) (model.Reservation, bool) {
	for _, item := range r.items {
		if item.SameTuple(rsv) {
			return item, true
		}
	}
	return model.Reservation{}, false
}

func (r *memoryRepository) overlapsLocked(roomID int, interval model.Interval, excludeUid string) bool {
	for uid, item := range r.items {
		if uid == excludeUid || item.RoomID != roomID {
			continue
		}
		if interval.Overlaps(item.Interval()) {
			return true
		}
	}
	return false
}

func (r *memoryRepository) filter(keep func(model.Reservation) bool) []model.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.Reservation, 0)
	for _, item := range r.items {
		if keep(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].RoomID != items[j].RoomID {
			return items[i].RoomID < items[j].RoomID
		}
		return items[i].StartDate.Before(items[j].StartDate.Time)
	})
	return items
}
