package errors

import "errors"

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ErrNotFound covers mutations that matched zero rows. Updates and deletes
// always filter by (id, user_id), so a guessed id belonging to another user
// surfaces as not-found rather than succeeding.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCategory is the referential failure: the transaction's category
// does not exist for this user with a matching type.
var ErrInvalidCategory = errors.New("category does not exist for this user and type")
