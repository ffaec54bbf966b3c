package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/hotel-reservation/pkg/middleware"
	"github.com/Astemirdum/hotel-reservation/pkg/kafka"
	"github.com/Astemirdum/hotel-reservation/pkg/validate"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/errs"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
	_ "github.com/Astemirdum/hotel-reservation/swagger"
)

const (
	msgReserved  = "already reserve"
	msgUpdated   = "already update"
	msgCancelled = "already delete"
)

type Handler struct {
	reservationSvc ReservationService
	events         EventLog
	log            *zap.Logger
}

func New(reservationSvc ReservationService, events EventLog, log *zap.Logger) *Handler {
	if events == nil {
		events = nopEventLog{}
	}
	return &Handler{
		reservationSvc: reservationSvc,
		events:         events,
		log:            log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/reservation",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/by-name/:name", h.GetReservationsByName)
	api.GET("/by-room/:roomId", h.GetReservationsByRoom)
	api.GET("/availability", h.Availability)
	api.GET("/:reservationUid", h.GetReservation)
	api.POST("", h.CreateReservation)
	api.PUT("/update", h.UpdateReservation)
	api.DELETE("/delete", h.CancelReservation)
	api.DELETE("/:reservationUid", h.CancelReservationByUid)

	return e
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errs.IsValidation(err), errors.Is(err, errs.ErrUnavailable):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// pathParam returns the decoded path parameter. echo routes on RawPath when it is
// set, leaving the param escaped; otherwise the param is already decoded.
func pathParam(c echo.Context, name string) (string, error) {
	if c.Request().URL.RawPath == "" {
		return c.Param(name), nil
	}
	return url.PathUnescape(c.Param(name))
}

func (h *Handler) logEvent(eventType kafka.EventType, rsv model.Reservation) {
	if err := h.events.Log(newEvent(eventType, rsv)); err != nil {
		h.log.Warn("events.Log", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetReservationsByName godoc
// @Summary List reservations of a guest
// @Tags reservation
// @Produce json
// @Param name path string true "guest name"
// @Success 200 {object} model.ListReservations
// @Router /reservation/by-name/{name} [get]
func (h *Handler) GetReservationsByName(c echo.Context) error {
	name, err := pathParam(c, "name")
	if err != nil || name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name should be string")
	}
	items, err := h.reservationSvc.GetReservationsByName(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ListReservations{Result: items})
}

// GetReservationsByRoom godoc
// @Summary List reservations of a room
// @Tags reservation
// @Produce json
// @Param roomId path int true "room id, 1..10"
// @Success 200 {object} model.ListReservations
// @Failure 400 {object} echo.HTTPError
// @Router /reservation/by-room/{roomId} [get]
func (h *Handler) GetReservationsByRoom(c echo.Context) error {
	roomID, err := strconv.Atoi(c.Param("roomId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrRoomID.Error())
	}
	items, err := h.reservationSvc.GetReservationsByRoom(c.Request().Context(), roomID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ListReservations{Result: items})
}

// Availability godoc
// @Summary Check whether a room is free for a date range
// @Tags reservation
// @Produce json
// @Param room_id query int true "room id"
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 400 {object} echo.HTTPError
// @Router /reservation/availability [get]
func (h *Handler) Availability(c echo.Context) error {
	roomID, err := strconv.Atoi(c.QueryParam("room_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrRoomID.Error())
	}
	start, err := model.ParseDate(c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	end, err := model.ParseDate(c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	available, err := h.reservationSvc.IsAvailable(c.Request().Context(), roomID, model.Interval{Start: start, End: end})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.AvailabilityResponse{
		RoomID:    roomID,
		StartDate: start,
		EndDate:   end,
		Available: available,
	})
}

// GetReservation godoc
// @Summary Get a reservation by uid
// @Tags reservation
// @Produce json
// @Param reservationUid path string true "reservation uid"
// @Success 200 {object} model.Reservation
// @Failure 404 {object} echo.HTTPError
// @Router /reservation/{reservationUid} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	rsv, err := h.reservationSvc.GetReservation(c.Request().Context(), c.Param("reservationUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

// CreateReservation godoc
// @Summary Reserve a room
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body model.Reservation true "reservation"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} echo.HTTPError
// @Router /reservation [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.Reservation
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rsv, err := h.reservationSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	h.logEvent(kafka.EventCreated, rsv)
	return c.JSON(http.StatusCreated, model.MessageResponse{Msg: msgReserved, ReservationUid: rsv.ReservationUid})
}

// UpdateReservation godoc
// @Summary Move a reservation to new dates
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body model.UpdateReservationRequest true "original reservation and new dates"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /reservation/update [put]
func (h *Handler) UpdateReservation(c echo.Context) error {
	var req model.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rsv, err := h.reservationSvc.UpdateReservation(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	h.logEvent(kafka.EventUpdated, rsv)
	return c.JSON(http.StatusOK, model.MessageResponse{Msg: msgUpdated})
}

// CancelReservation godoc
// @Summary Cancel the reservation matching name, dates and room
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body model.Reservation true "reservation"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} echo.HTTPError
// @Router /reservation/delete [delete]
func (h *Handler) CancelReservation(c echo.Context) error {
	var req model.Reservation
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rsv, err := h.reservationSvc.CancelReservation(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	h.logEvent(kafka.EventCancelled, rsv)
	return c.JSON(http.StatusOK, model.MessageResponse{Msg: msgCancelled})
}

// CancelReservationByUid godoc
// @Summary Cancel a reservation by uid
// @Tags reservation
// @Produce json
// @Param reservationUid path string true "reservation uid"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} echo.HTTPError
// @Router /reservation/{reservationUid} [delete]
func (h *Handler) CancelReservationByUid(c echo.Context) error {
	rsv, err := h.reservationSvc.CancelReservationByUid(c.Request().Context(), c.Param("reservationUid"))
	if err != nil {
		return httpError(err)
	}
	h.logEvent(kafka.EventCancelled, rsv)
	return c.JSON(http.StatusOK, model.MessageResponse{Msg: msgCancelled})
}
