package repository

import (
	"context"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
)

// Repository persists reservations. Implementations must reject a write that would
// make two reservations of one room overlap with errs.ErrUnavailable, atomically
// with the write itself.
type Repository interface {
	CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	FindReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	ListByName(ctx context.Context, name string) ([]model.Reservation, error)
	ListByRoom(ctx context.Context, roomID int) ([]model.Reservation, error)
	ListOverlapping(ctx context.Context, roomID int, interval model.Interval, excludeUid string) ([]model.Reservation, error)
	UpdateDates(ctx context.Context, reservationUid string, interval model.Interval) error
	DeleteByUid(ctx context.Context, reservationUid string) error
}

var (
	_ Repository = (*repository)(nil)
	_ Repository = (*memoryRepository)(nil)
)
