package domain

import (
	"context"
	"time"
)

// Showtime is a scheduled screening with a fixed seat capacity. Weekday and
// StartTime are display labels ("Friday", "19:00"); TotalSeats never changes
// after creation.
type Showtime struct {
	ID         int
	MovieID    int
	Weekday    string
	StartTime  string
	TotalSeats int
	CreatedAt  time.Time
}

type ShowtimeRepository interface {
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetByMovie(ctx context.Context, movieID int) ([]Showtime, error)
	Create(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
