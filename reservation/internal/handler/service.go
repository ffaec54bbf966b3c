package handler

import (
	"context"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	IsAvailable(ctx context.Context, roomID int, interval model.Interval) (bool, error)
	CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	GetReservationsByName(ctx context.Context, name string) ([]model.Reservation, error)
	GetReservationsByRoom(ctx context.Context, roomID int) ([]model.Reservation, error)
	GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	UpdateReservation(ctx context.Context, req model.UpdateReservationRequest) (model.Reservation, error)
	CancelReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	CancelReservationByUid(ctx context.Context, reservationUid string) (model.Reservation, error)
}

var _ ReservationService = (*service.Service)(nil)
