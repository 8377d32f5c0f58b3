package submission

import "errors"

// Messages returned to the client.
const (
	MsgContactRequired    = "Nombre, email y mensaje son requeridos"
	MsgNewsletterRequired = "El email es requerido"
	MsgContactFailed      = "Error saving contact message"
	MsgNewsletterFailed   = "Error saving subscription"
)

// ErrStoreNil is returned when a Service has no store for the form.
var ErrStoreNil = errors.New("submission store is nil")

// ValidationError is a user-correctable submission error. Its message is
// safe to show to the client.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError

	return errors.As(err, &vErr)
}
