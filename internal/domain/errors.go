package domain

import "errors"

var (
	ErrWindowClosed       = errors.New("order window closed")
	ErrDuplicateOrder     = errors.New("order already placed today")
	ErrEmployeeRequired   = errors.New("employee name required")
	ErrTeaRequired        = errors.New("tea selection required")
	ErrSnackRequired      = errors.New("snack selection required")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrNameRequired       = errors.New("name must be at least 2 characters")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidCatalog     = errors.New("unknown catalog")
	ErrInvalidRange       = errors.New("unknown report range")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidID          = errors.New("invalid id")
)

// WindowClosedError carries the user-facing message produced by the window
// policy at rejection time. errors.Is(err, ErrWindowClosed) matches it.
type WindowClosedError struct {
	Message string
}

func (e WindowClosedError) Error() string { return e.Message }

func (WindowClosedError) Is(target error) bool { return target == ErrWindowClosed }
