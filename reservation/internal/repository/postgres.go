package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/errs"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	reservationTableName = `reservation`

	dateOrderConstraint = `reservation_date_order_check`
	roomIDConstraint    = `reservation_room_id_check`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	reservationColumns = []string{
		"reservation_uid::text as reservation_uid",
		"name",
		"start_date",
		"end_date",
		"room_id",
	}
)

type reservationRow struct {
	ReservationUid string    `db:"reservation_uid"`
	Name           string    `db:"name"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	RoomID         int       `db:"room_id"`
}

func (r reservationRow) toModel() model.Reservation {
	return model.Reservation{
		ReservationUid: r.ReservationUid,
		Name:           r.Name,
		StartDate:      model.DateOf(r.StartDate),
		EndDate:        model.DateOf(r.EndDate),
		RoomID:         r.RoomID,
	}
}

func toModels(rows []reservationRow) []model.Reservation {
	items := make([]model.Reservation, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items
}

// mapError translates constraint violations into domain errors.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ExclusionViolation:
			return errs.ErrUnavailable
		case pgerrcode.CheckViolation:
			switch pgErr.ConstraintName {
			case dateOrderConstraint:
				return errs.ErrDateOrder
			case roomIDConstraint:
				return errs.ErrRoomID
			}
		}
	}
	return err
}

func tupleEq(rsv model.Reservation) sq.Eq {
	return sq.Eq{
		"name":       rsv.Name,
		"start_date": rsv.StartDate.Time,
		"end_date":   rsv.EndDate.Time,
		"room_id":    rsv.RoomID,
	}
}

func (r *repository) CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	q, args, err := qb.Insert(reservationTableName).
		Columns("reservation_uid", "name", "start_date", "end_date", "room_id").
		Values(uuid.New().String(), rsv.Name, rsv.StartDate.Time, rsv.EndDate.Time, rsv.RoomID).
		Suffix("returning reservation_uid::text as reservation_uid, name, start_date, end_date, room_id").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Reservation{}, mapError(err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		r.log.Debug("CreateReservation", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, mapError(err)
	}
	return row.toModel(), nil
}

func (r *repository) GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	return r.getOne(ctx, sq.Eq{"reservation_uid": reservationUid})
}

func (r *repository) FindReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	return r.getOne(ctx, tupleEq(rsv))
}

func (r *repository) getOne(ctx context.Context, where sq.Sqlizer) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Reservation{}, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		return model.Reservation{}, mapError(err)
	}
	return row.toModel(), nil
}

func (r *repository) ListByName(ctx context.Context, name string) ([]model.Reservation, error) {
	return r.list(ctx, sq.Eq{"name": name})
}

func (r *repository) ListByRoom(ctx context.Context, roomID int) ([]model.Reservation, error) {
	return r.list(ctx, sq.Eq{"room_id": roomID})
}

// ListOverlapping returns reservations of the room whose closed interval meets the candidate one.
func (r *repository) ListOverlapping(ctx context.Context, roomID int, interval model.Interval, excludeUid string) ([]model.Reservation, error) {
	return r.list(ctx, overlapWhere(roomID, interval, excludeUid))
}

func overlapWhere(roomID int, interval model.Interval, excludeUid string) sq.And {
	start, end := interval.Start.Time, interval.End.Time
	where := sq.And{
		sq.Eq{"room_id": roomID},
		sq.Or{
			sq.And{sq.LtOrEq{"start_date": start}, sq.GtOrEq{"end_date": start}},
			sq.And{sq.LtOrEq{"start_date": end}, sq.GtOrEq{"end_date": end}},
			sq.And{sq.GtOrEq{"start_date": start}, sq.LtOrEq{"end_date": end}},
		},
	}
	if excludeUid != "" {
		where = append(where, sq.NotEq{"reservation_uid": excludeUid})
	}
	return where
}

func (r *repository) list(ctx context.Context, where sq.Sqlizer) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(where).
		OrderBy("room_id", "start_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("list", zap.String("query", q), zap.Any("args", args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return toModels(items), nil
}

func (r *repository) UpdateDates(ctx context.Context, reservationUid string, interval model.Interval) error {
	q, args, err := qb.Update(reservationTableName).
		Set("start_date", interval.Start.Time).
		Set("end_date", interval.End.Time).
		Where(sq.Eq{"reservation_uid": reservationUid}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteByUid(ctx context.Context, reservationUid string) error {
	q, args, err := qb.Delete(reservationTableName).
		Where(sq.Eq{"reservation_uid": reservationUid}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
