package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/errs"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
)

func Test_mapError(t *testing.T) {
	t.Parallel()
	errOther := errors.New("conn reset")
	unknownCheck := &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "other_check"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: errs.ErrNotFound},
		{
			name: "overlapping reservation",
			err:  &pgconn.PgError{Code: pgerrcode.ExclusionViolation, ConstraintName: "reservation_no_overlap"},
			want: errs.ErrUnavailable,
		},
		{
			name: "wrapped overlapping reservation",
			err:  errors.Wrap(&pgconn.PgError{Code: pgerrcode.ExclusionViolation}, "insert"),
			want: errs.ErrUnavailable,
		},
		{
			name: "date order",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: dateOrderConstraint},
			want: errs.ErrDateOrder,
		},
		{
			name: "room id",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: roomIDConstraint},
			want: errs.ErrRoomID,
		},
		{name: "unknown check", err: unknownCheck, want: unknownCheck},
		{name: "other", err: errOther, want: errOther},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}
}

func Test_overlapWhere(t *testing.T) {
	t.Parallel()
	start := model.NewDate(2024, time.June, 5)
	end := model.NewDate(2024, time.June, 8)
	interval := model.Interval{Start: start, End: end}
	const overlap = "(start_date <= ? AND end_date >= ?) OR " +
		"(start_date <= ? AND end_date >= ?) OR " +
		"(start_date >= ? AND end_date <= ?)"

	tests := []struct {
		name       string
		excludeUid string
		wantSQL    string
		wantArgs   []interface{}
	}{
		{
			name:    "all reservations of the room",
			wantSQL: "(room_id = ? AND (" + overlap + "))",
			wantArgs: []interface{}{
				3, start.Time, start.Time, end.Time, end.Time, start.Time, end.Time,
			},
		},
		{
			name:       "excluding the moved reservation",
			excludeUid: "0b5c8a4e-7a5e-4d55-9c3b-6f1f6d7d2a10",
			wantSQL:    "(room_id = ? AND (" + overlap + ") AND reservation_uid <> ?)",
			wantArgs: []interface{}{
				3, start.Time, start.Time, end.Time, end.Time, start.Time, end.Time,
				"0b5c8a4e-7a5e-4d55-9c3b-6f1f6d7d2a10",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, args, err := overlapWhere(3, interval, tt.excludeUid).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, q)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_overlapWhere_Placeholders(t *testing.T) {
	t.Parallel()
	interval := model.Interval{Start: model.NewDate(2024, time.June, 1), End: model.NewDate(2024, time.June, 5)}
	q, args, err := qb.Select("name").
		From(reservationTableName).
		Where(overlapWhere(3, interval, "uid")).
		ToSql()
	require.NoError(t, err)
	require.Contains(t, q, "reservation_uid <> $8")
	require.Len(t, args, 8)
}
