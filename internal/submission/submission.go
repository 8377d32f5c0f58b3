// Package submission validates and stores contact messages and newsletter
// signups.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/vinoteka/vinoteka/internal/db/models"
)

type (
	// ContactStore inserts contact messages.
	ContactStore interface {
		InsertContact(ctx context.Context, msg *models.ContactMessage) error
	}

	// SubscriberStore inserts newsletter subscribers.
	SubscriberStore interface {
		InsertSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error
	}

	// ContactRequest is the body of a contact submission. Fields take any
	// JSON value; "", 0, false, null and absent count as missing. Anything
	// else, " ", {} and [] included, is present.
	ContactRequest struct {
		Name    any `json:"name"    validate:"required"`
		Email   any `json:"email"   validate:"required"`
		Message any `json:"message" validate:"required"`
	}

	// NewsletterRequest is the body of a newsletter signup.
	NewsletterRequest struct {
		Email any `json:"email" validate:"required"`
	}
)

// Service runs submissions against the stores.
type Service struct {
	contacts    ContactStore
	subscribers SubscriberStore
	validator   *validator.Validate
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock stamping created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New returns a Service writing to the given stores.
func New(contacts ContactStore, subscribers SubscriberStore, opts ...Option) *Service {
	s := &Service{
		contacts:    contacts,
		subscribers: subscribers,
		validator:   validator.New(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SubmitContact validates req and stores it as one contact message.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) (*models.ContactMessage, error) {
	if err := s.check(req, MsgContactRequired); err != nil {
		return nil, err
	}

	if s.contacts == nil {
		return nil, ErrStoreNil
	}

	msg := &models.ContactMessage{
		Name:      text(req.Name),
		Email:     text(req.Email),
		Message:   text(req.Message),
		CreatedAt: s.now().UTC(),
	}

	if err := s.contacts.InsertContact(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// Subscribe validates req and stores it as one newsletter subscriber. The
// same email may be stored more than once.
func (s *Service) Subscribe(ctx context.Context, req NewsletterRequest) (*models.NewsletterSubscriber, error) {
	if err := s.check(req, MsgNewsletterRequired); err != nil {
		return nil, err
	}

	if s.subscribers == nil {
		return nil, ErrStoreNil
	}

	sub := &models.NewsletterSubscriber{
		Email:     text(req.Email),
		CreatedAt: s.now().UTC(),
	}

	if err := s.subscribers.InsertSubscriber(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *Service) check(req any, msg string) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		fields[i] = ve.Field()
	}

	return &ValidationError{Message: msg, Fields: fields}
}

// text renders a JSON value as stored text. Arrays join their elements with
// commas and objects render as "[object Object]", as a browser would.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = text(e)
		}

		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return s
}
