// internal/services/errors.go
package services

import "errors"

// invalidInputError marks request-level mistakes (bad references, unknown
// keys) so handlers can answer 400 instead of 500 without matching strings.
type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string {
	return e.msg
}

func invalidInput(msg string) error {
	return &invalidInputError{msg: msg}
}

func IsInvalidInput(err error) bool {
	var target *invalidInputError
	return errors.As(err, &target)
}
