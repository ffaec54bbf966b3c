package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/hotel-reservation/reservation/internal/handler"
	service_mocks "github.com/Astemirdum/hotel-reservation/reservation/internal/handler/mocks"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
)

func TestRouter_GetReservationsByName_Escaping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		target   string
		wantName string
	}{
		{name: "space", target: "/reservation/by-name/Anna%20Maria", wantName: "Anna Maria"},
		{name: "literal percent", target: "/reservation/by-name/100%25", wantName: "100%"},
		{name: "escaped percent", target: "/reservation/by-name/a%252Fb", wantName: "a%2Fb"},
		{name: "escaped slash", target: "/reservation/by-name/a%2Fb", wantName: "a/b"},
		{name: "plain", target: "/reservation/by-name/Bob", wantName: "Bob"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			e := handler.New(svc, nil, zap.NewNop()).NewRouter()

			svc.EXPECT().GetReservationsByName(gomock.Any(), tt.wantName).Return([]model.Reservation{
				{
					ReservationUid: testUid,
					Name:           tt.wantName,
					StartDate:      model.NewDate(2024, time.June, 1),
					EndDate:        model.NewDate(2024, time.June, 5),
					RoomID:         3,
				},
			}, nil)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, http.NoBody))

			require.Equal(t, http.StatusOK, w.Code)
			require.Contains(t, w.Body.String(), `"reservation_uid":"`+testUid+`"`)
		})
	}
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	e := handler.New(svc, nil, zap.NewNop()).NewRouter()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	// static segments win over :reservationUid
	svc.EXPECT().IsAvailable(gomock.Any(), 3, gomock.Any()).Return(true, nil)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/reservation/availability?room_id=3&start_date=2024-06-06&end_date=2024-06-08", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"room_id":3,"start_date":"2024-06-06","end_date":"2024-06-08","available":true}`,
		strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().CancelReservation(gomock.Any(), room3Guest()).Return(room3Guest(), nil)
	r := httptest.NewRequest(http.MethodDelete, "/reservation/delete",
		strings.NewReader(`{"name":"Alice","start_date":"2024-06-06","end_date":"2024-06-08","room_id":3}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"msg":"already delete"}`, strings.Trim(w.Body.String(), "\n"))

	stored := room3Guest()
	stored.ReservationUid = testUid
	svc.EXPECT().CancelReservationByUid(gomock.Any(), testUid).Return(stored, nil)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reservation/"+testUid, http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	svc.EXPECT().CreateReservation(gomock.Any(), room3Guest()).Return(stored, nil)
	r = httptest.NewRequest(http.MethodPost, "/reservation",
		strings.NewReader(`{"name":"Alice","start_date":"2024-06-06","end_date":"2024-06-08","room_id":3}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, w.Header().Get(echo.HeaderXRequestID))
}
