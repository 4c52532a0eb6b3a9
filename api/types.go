// Package api defines the request and response bodies of the HTTP interface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CapacityErrorResponse is returned when a reservation asks for more tickets
// than the showtime has left. RemainingSeats carries the exact count.
type CapacityErrorResponse struct {
	Message        string    `json:"message"`
	RemainingSeats int       `json:"remainingSeats"`
	RequestId      string    `json:"requestId,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieSummary struct {
	Id        int    `json:"id"`
	Title     string `json:"title"`
	PosterUrl string `json:"posterUrl,omitempty"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type Showtime struct {
	Id         int    `json:"id"`
	MovieId    int    `json:"movieId"`
	Weekday    string `json:"weekday"`
	StartTime  string `json:"startTime"`
	TotalSeats int    `json:"totalSeats"`
}

type MovieDetailResponse struct {
	Id        int        `json:"id"`
	Title     string     `json:"title"`
	PosterUrl string     `json:"posterUrl,omitempty"`
	Showtimes []Showtime `json:"showtimes"`
}

type AvailabilityResponse struct {
	ShowtimeId     int `json:"showtimeId"`
	RemainingSeats int `json:"remainingSeats"`
}

type CreateBookingRequest struct {
	Tickets int `json:"tickets" validate:"required,gt=0"`
}

type CreateBookingResponse struct {
	OrderNo string `json:"orderNo"`
	Tickets int    `json:"tickets"`
}

type BookingDetail struct {
	OrderNo    string    `json:"orderNo"`
	Customer   string    `json:"customer"`
	Tickets    int       `json:"tickets"`
	MovieTitle string    `json:"movieTitle"`
	Weekday    string    `json:"weekday"`
	StartTime  string    `json:"startTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingDetail `json:"bookings"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateMovieRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	PosterUrl string `json:"posterUrl" validate:"omitempty,url"`
}

type MovieResponse struct {
	Id        int       `json:"id"`
	Title     string    `json:"title"`
	PosterUrl string    `json:"posterUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateShowtimeRequest struct {
	Weekday    string `json:"weekday" validate:"required,weekday"`
	StartTime  string `json:"startTime" validate:"required,timeofday"`
	TotalSeats int    `json:"totalSeats" validate:"required,gt=0"`
}
