package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/hotel-reservation/pkg/circuit_breaker"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/errs"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	cb   circuit_breaker.CircuitBreaker
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
		cb:   circuit_breaker.New(20, 5*time.Second, 0.5, 3),
	}
}

// store runs a repository call behind the circuit breaker. Domain outcomes and
// cancelled or expired request contexts count as successful store calls.
func (s *Service) store(call func() error) error {
	var passErr error
	err := s.cb.Call(func() error {
		err := call()
		if errs.IsDomain(err) || isContextErr(err) {
			passErr = err
			return nil
		}
		return err
	})
	if errors.Is(err, circuit_breaker.ErrOpenCB) {
		return errs.ErrStoreUnavailable
	}
	if err != nil {
		s.log.Error("store call", zap.Error(err))
		return err
	}
	return passErr
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func validateRoom(roomID int) error {
	if !model.ValidRoom(roomID) {
		return errs.ErrRoomID
	}
	return nil
}

func validateInterval(interval model.Interval) error {
	if interval.Start.IsZero() || interval.End.IsZero() {
		return errs.ErrDateRequired
	}
	if !interval.Valid() {
		return errs.ErrDateOrder
	}
	return nil
}

// validateReservation checks the room before the dates, so an inverted range is
// reported regardless of availability.
func validateReservation(rsv model.Reservation) error {
	if strings.TrimSpace(rsv.Name) == "" {
		return errs.ErrName
	}
	if err := validateRoom(rsv.RoomID); err != nil {
		return err
	}
	return validateInterval(rsv.Interval())
}

// IsAvailable reports whether no reservation of the room overlaps the interval.
func (s *Service) IsAvailable(ctx context.Context, roomID int, interval model.Interval) (bool, error) {
	if err := validateRoom(roomID); err != nil {
		return false, err
	}
	if err := validateInterval(interval); err != nil {
		return false, err
	}
	return s.isAvailable(ctx, roomID, interval, "")
}

func (s *Service) isAvailable(ctx context.Context, roomID int, interval model.Interval, excludeUid string) (bool, error) {
	var overlapping []model.Reservation
	err := s.store(func() (err error) {
		overlapping, err = s.repo.ListOverlapping(ctx, roomID, interval, excludeUid)
		return err
	})
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

func (s *Service) CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	if err := validateReservation(rsv); err != nil {
		return model.Reservation{}, err
	}
	available, err := s.isAvailable(ctx, rsv.RoomID, rsv.Interval(), "")
	if err != nil {
		return model.Reservation{}, err
	}
	if !available {
		return model.Reservation{}, errs.ErrUnavailable
	}

	var created model.Reservation
	err = s.store(func() (err error) {
		created, err = s.repo.CreateReservation(ctx, rsv)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.log.Debug("reservation created",
		zap.String("reservation_uid", created.ReservationUid),
		zap.Int("room_id", created.RoomID))
	return created, nil
}

func (s *Service) GetReservationsByName(ctx context.Context, name string) ([]model.Reservation, error) {
	var items []model.Reservation
	err := s.store(func() (err error) {
		items, err = s.repo.ListByName(ctx, name)
		return err
	})
	return items, err
}

func (s *Service) GetReservationsByRoom(ctx context.Context, roomID int) ([]model.Reservation, error) {
	if err := validateRoom(roomID); err != nil {
		return nil, err
	}
	var items []model.Reservation
	err := s.store(func() (err error) {
		items, err = s.repo.ListByRoom(ctx, roomID)
		return err
	})
	return items, err
}

func (s *Service) GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	if _, err := uuid.Parse(reservationUid); err != nil {
		return model.Reservation{}, errs.ErrNotFound
	}
	var rsv model.Reservation
	err := s.store(func() (err error) {
		rsv, err = s.repo.GetReservation(ctx, reservationUid)
		return err
	})
	return rsv, err
}

// UpdateReservation moves the reservation matching the original tuple to the new
// dates. Availability is checked for the new interval on the original room, ignoring
// the reservation being moved.
func (s *Service) UpdateReservation(ctx context.Context, req model.UpdateReservationRequest) (model.Reservation, error) {
	if err := validateReservation(req.Reservation); err != nil {
		return model.Reservation{}, err
	}
	newInterval := req.NewInterval()
	if err := validateInterval(newInterval); err != nil {
		return model.Reservation{}, err
	}

	var current model.Reservation
	err := s.store(func() (err error) {
		current, err = s.repo.FindReservation(ctx, req.Reservation)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}

	available, err := s.isAvailable(ctx, current.RoomID, newInterval, current.ReservationUid)
	if err != nil {
		return model.Reservation{}, err
	}
	if !available {
		return model.Reservation{}, errs.ErrUnavailable
	}

	if err := s.store(func() error {
		return s.repo.UpdateDates(ctx, current.ReservationUid, newInterval)
	}); err != nil {
		return model.Reservation{}, err
	}
	current.StartDate, current.EndDate = newInterval.Start, newInterval.End
	return current, nil
}

// CancelReservation removes the reservation matching the exact tuple.
func (s *Service) CancelReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	if err := validateReservation(rsv); err != nil {
		return model.Reservation{}, err
	}
	var current model.Reservation
	err := s.store(func() (err error) {
		current, err = s.repo.FindReservation(ctx, rsv)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	if err := s.store(func() error {
		return s.repo.DeleteByUid(ctx, current.ReservationUid)
	}); err != nil {
		return model.Reservation{}, err
	}
	return current, nil
}

func (s *Service) CancelReservationByUid(ctx context.Context, reservationUid string) (model.Reservation, error) {
	current, err := s.GetReservation(ctx, reservationUid)
	if err != nil {
		return model.Reservation{}, err
	}
	if err := s.store(func() error {
		return s.repo.DeleteByUid(ctx, reservationUid)
	}); err != nil {
		return model.Reservation{}, err
	}
	return current, nil
}
