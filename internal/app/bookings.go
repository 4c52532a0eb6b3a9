package app

import (
	"errors"
	"net/http"

	"github.com/filmhaus/movie-booking/api"
	"github.com/filmhaus/movie-booking/internal/booking"
	"github.com/filmhaus/movie-booking/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetShowtimeAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	remaining, err := app.bookings.RemainingSeats(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShowtimeNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.AvailabilityResponse{
		ShowtimeId:     id,
		RemainingSeats: remaining,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateBookingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	customer := app.contextGetCustomer(r)

	orderNo, err := app.bookings.Reserve(r.Context(), id, customer, input.Tickets)
	if err != nil {
		var capErr *booking.CapacityExceededError

		switch {
		case errors.Is(err, booking.ErrInvalidTicketCount):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrShowtimeNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &capErr):
			app.capacityExceededResponse(w, r, capErr.Remaining)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sendBookingConfirmation(r, orderNo)

	resp := api.CreateBookingResponse{
		OrderNo: orderNo,
		Tickets: input.Tickets,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation mails the order details without blocking the
// request. Lookup and delivery failures are logged, never surfaced.
func (app *Application) sendBookingConfirmation(r *http.Request, orderNo string) {
	email := app.sessionManager.GetString(r.Context(), SessionKeyEmail.String())
	if email == "" {
		return
	}

	details, err := app.bookings.FindByOrderNo(r.Context(), orderNo)
	if err != nil || len(details) == 0 {
		app.logger.Error("failed to load booking for confirmation mail", "order_no", orderNo, "error", err)
		return
	}

	detail := details[0]

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic occurred during sending confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"orderNo":    detail.OrderNo,
			"customer":   detail.Customer,
			"movieTitle": detail.MovieTitle,
			"weekday":    detail.Weekday,
			"startTime":  detail.StartTime,
			"tickets":    detail.Tickets,
		}

		err := app.mailer.Send(email, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send confirmation email", "order_no", detail.OrderNo, "error", err)
		}
	}()
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	orderNo := chi.URLParam(r, "orderNo")
	customer := app.contextGetCustomer(r)

	details, err := app.bookings.FindByOrderNo(r.Context(), orderNo)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// An order belonging to someone else is indistinguishable from a
	// missing one.
	owned := make([]api.BookingDetail, 0, len(details))
	for _, detail := range details {
		if detail.Customer == customer {
			owned = append(owned, toApiBookingDetail(detail))
		}
	}

	if len(owned) == 0 {
		app.notFoundResponse(w, r)
		return
	}

	resp := api.BookingListResponse{Bookings: owned}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfUser(w http.ResponseWriter, r *http.Request) {
	customer := app.contextGetCustomer(r)

	details, err := app.bookings.FindByCustomer(r.Context(), customer)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	bookings := make([]api.BookingDetail, len(details))
	for i, detail := range details {
		bookings[i] = toApiBookingDetail(detail)
	}

	resp := api.BookingListResponse{Bookings: bookings}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	orderNo := chi.URLParam(r, "orderNo")
	customer := app.contextGetCustomer(r)

	deleted, err := app.bookings.Cancel(r.Context(), orderNo, customer)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !deleted {
		app.notFoundResponse(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiBookingDetail(detail domain.BookingDetail) api.BookingDetail {
	return api.BookingDetail{
		OrderNo:    detail.OrderNo,
		Customer:   detail.Customer,
		Tickets:    detail.Tickets,
		MovieTitle: detail.MovieTitle,
		Weekday:    detail.Weekday,
		StartTime:  detail.StartTime,
		CreatedAt:  detail.CreatedAt,
	}
}
