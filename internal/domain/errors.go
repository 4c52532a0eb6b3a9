package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrShowtimeNotFound  = errors.New("showtime not found")
	ErrDuplicateOrderNo  = errors.New("order number already exists")
	ErrUserAlreadyExists = errors.New("user already exists")
)
