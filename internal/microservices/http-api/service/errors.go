package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingFields  = errors.New("required fields missing")
	ErrUserExists     = errors.New("User already exists")
	ErrUserNotFound   = errors.New("User not found")
	ErrWrongPassword  = errors.New("Wrong password")
	ErrCategoryExists = errors.New("Category already exists")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)
