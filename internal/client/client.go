// Package client submits the site forms from Go, enforcing the same
// Idle -> Submitting -> Success/Error flow as the browser pages.
package client

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultTimeout is used when NewForm gets a zero timeout.
const DefaultTimeout = 10 * time.Second

// Status of a Form.
type Status int

// Form states.
const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	msgNetwork = "Error al enviar el formulario. Por favor, inténtalo de nuevo."
	msgFailed  = "Error al enviar el formulario"
)

// ErrSubmitInProgress is returned by Submit while another submit runs.
var ErrSubmitInProgress = errors.New("submission already in progress")

// NetworkError reports that the server could not be reached or did not
// answer.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return msgNetwork
	}

	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return e.Message
}

// Result is the decoded server answer.
type Result struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// Form posts JSON payloads to one form endpoint.
type Form struct {
	url     string
	timeout time.Duration

	mu      sync.Mutex
	status  Status
	message string
}

// NewForm returns an idle Form posting to url.
func NewForm(url string, timeout time.Duration) *Form {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Form{url: url, timeout: timeout}
}

// Status returns the current state and the status message shown with it.
func (f *Form) Status() (Status, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.status, f.message
}

// Submit posts payload as JSON. successMsg becomes the status message on
// success. While a submit is running further calls fail with
// ErrSubmitInProgress and leave the state alone.
func (f *Form) Submit(payload any, successMsg string) (Result, error) {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()

		return Result{}, ErrSubmitInProgress
	}

	f.status = StatusSubmitting
	f.message = ""
	f.mu.Unlock()

	res, err := f.post(payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = StatusError
		f.message = err.Error()

		return res, err
	}

	f.status = StatusSuccess
	f.message = successMsg

	return res, nil
}

func (f *Form) post(payload any) (Result, error) {
	var res Result

	code, _, errs := fiber.Post(f.url).
		Timeout(f.timeout).
		JSON(payload).
		Struct(&res)

	res.StatusCode = code

	if code == 0 {
		var err error
		if len(errs) > 0 {
			err = errs[0]
		}

		return res, &NetworkError{Err: err}
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		msg := res.Error
		if msg == "" {
			msg = msgFailed
		}

		return res, &ResponseError{StatusCode: code, Message: msg}
	}

	return res, nil
}
