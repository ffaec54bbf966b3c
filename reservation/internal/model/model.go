package model

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	MinRoomID = 1
	MaxRoomID = 10
)

// Date is a calendar day encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errors.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Interval is a closed range of days, both ends included.
type Interval struct {
	Start Date
	End   Date
}

func (i Interval) Valid() bool {
	return !i.Start.After(i.End.Time)
}

// Overlaps reports whether the candidate i intersects the stored interval other.
// Touching endpoints overlap.
func (i Interval) Overlaps(other Interval) bool {
	S, E := i.Start.Time, i.End.Time
	s, e := other.Start.Time, other.End.Time
	startInside := !s.After(S) && !S.After(e)
	endInside := !s.After(E) && !E.After(e)
	covers := !S.After(s) && !e.After(E)
	return startInside || endInside || covers
}

type Reservation struct {
	ReservationUid string `json:"reservation_uid,omitempty"`
	Name           string `json:"name" validate:"required"`
	StartDate      Date   `json:"start_date"`
	EndDate        Date   `json:"end_date"`
	RoomID         int    `json:"room_id"`
}

func (r Reservation) Interval() Interval {
	return Interval{Start: r.StartDate, End: r.EndDate}
}

// SameTuple matches on (name, start_date, end_date, room_id), ignoring the uid.
func (r Reservation) SameTuple(other Reservation) bool {
	return r.Name == other.Name &&
		r.RoomID == other.RoomID &&
		r.StartDate.Equal(other.StartDate.Time) &&
		r.EndDate.Equal(other.EndDate.Time)
}

func ValidRoom(roomID int) bool {
	return roomID >= MinRoomID && roomID <= MaxRoomID
}

type UpdateReservationRequest struct {
	Reservation  Reservation `json:"reservation"`
	NewStartDate Date        `json:"new_start_date"`
	NewEndDate   Date        `json:"new_end_date"`
}

func (r UpdateReservationRequest) NewInterval() Interval {
	return Interval{Start: r.NewStartDate, End: r.NewEndDate}
}

type ListReservations struct {
	Result []Reservation `json:"result"`
}

type MessageResponse struct {
	Msg            string `json:"msg"`
	ReservationUid string `json:"reservation_uid,omitempty"`
}

type AvailabilityResponse struct {
	RoomID    int  `json:"room_id"`
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
	Available bool `json:"available"`
}
