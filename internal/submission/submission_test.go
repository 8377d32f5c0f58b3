package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinoteka/vinoteka/internal/db/models"
)

type fakeStore struct {
	contacts    []models.ContactMessage
	subscribers []models.NewsletterSubscriber
	err         error
}

func (f *fakeStore) InsertContact(_ context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}

	f.contacts = append(f.contacts, *msg)

	return nil
}

func (f *fakeStore) InsertSubscriber(_ context.Context, sub *models.NewsletterSubscriber) error {
	if f.err != nil {
		return f.err
	}

	f.subscribers = append(f.subscribers, *sub)

	return nil
}

var fixedNow = time.Date(2024, 5, 10, 18, 30, 0, 0, time.FixedZone("CEST", 2*60*60)) //nolint:gochecknoglobals

func newService(store *fakeStore) *Service {
	return New(store, store, WithClock(func() time.Time { return fixedNow }))
}

func TestSubmitContact(t *testing.T) {
	testCases := []struct {
		name     string
		req      ContactRequest
		valid    bool
		expected models.ContactMessage
	}{
		{
			name:     "complete",
			req:      ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hola"},
			valid:    true,
			expected: models.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Hola"},
		},
		{
			name:     "non string values are coerced",
			req:      ContactRequest{Name: float64(42), Email: true, Message: "Hola"},
			valid:    true,
			expected: models.ContactMessage{Name: "42", Email: "true", Message: "Hola"},
		},
		{
			name:     "blank strings are present",
			req:      ContactRequest{Name: " ", Email: "a@b.com", Message: "  "},
			valid:    true,
			expected: models.ContactMessage{Name: " ", Email: "a@b.com", Message: "  "},
		},
		{
			name:     "empty object and array are present",
			req:      ContactRequest{Name: map[string]any{}, Email: []any{}, Message: "Hola"},
			valid:    true,
			expected: models.ContactMessage{Name: "[object Object]", Email: "", Message: "Hola"},
		},
		{
			name:     "array elements are joined",
			req:      ContactRequest{Name: []any{"a", float64(1), nil, true}, Email: map[string]any{"x": "y"}, Message: float64(2.5)},
			valid:    true,
			expected: models.ContactMessage{Name: "a,1,,true", Email: "[object Object]", Message: "2.5"},
		},
		{name: "empty name", req: ContactRequest{Name: "", Email: "a@x.com", Message: "Hola"}},
		{name: "absent email", req: ContactRequest{Name: "Ana", Message: "Hola"}},
		{name: "zero message", req: ContactRequest{Name: "Ana", Email: "a@x.com", Message: float64(0)}},
		{name: "false name", req: ContactRequest{Name: false, Email: "a@x.com", Message: "Hola"}},
		{name: "null message", req: ContactRequest{Name: "Ana", Email: "a@x.com", Message: nil}},
		{name: "zero email", req: ContactRequest{Name: "Ana", Email: float64(0), Message: "Hola"}},
		{name: "everything missing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			msg, err := newService(store).SubmitContact(context.Background(), tc.req)

			if !tc.valid {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, MsgContactRequired, vErr.Error())
				assert.NotEmpty(t, vErr.Fields)
				assert.Nil(t, msg)
				assert.Empty(t, store.contacts)

				return
			}

			require.NoError(t, err)
			require.Len(t, store.contacts, 1)

			stored := store.contacts[0]
			assert.Equal(t, tc.expected.Name, stored.Name)
			assert.Equal(t, tc.expected.Email, stored.Email)
			assert.Equal(t, tc.expected.Message, stored.Message)
			assert.Equal(t, time.UTC, stored.CreatedAt.Location())
			assert.True(t, fixedNow.Equal(stored.CreatedAt))
		})
	}
}

func TestSubmitContactStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	store := &fakeStore{err: boom}

	_, err := newService(store).SubmitContact(context.Background(),
		ContactRequest{Name: "Ana", Email: "a@x.com", Message: "Hola"})
	require.ErrorIs(t, err, boom)
	assert.False(t, IsValidationError(err))
}

func TestSubscribe(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	sub, err := svc.Subscribe(context.Background(), NewsletterRequest{Email: "x@y.com"})
	require.NoError(t, err)
	assert.Equal(t, "x@y.com", sub.Email)

	_, err = svc.Subscribe(context.Background(), NewsletterRequest{Email: "x@y.com"})
	require.NoError(t, err)
	assert.Len(t, store.subscribers, 2)
	assert.True(t, fixedNow.Equal(store.subscribers[0].CreatedAt))
}

func TestSubscribeRequiresEmail(t *testing.T) {
	store := &fakeStore{}

	for _, email := range []any{nil, "", float64(0), false} {
		_, err := newService(store).Subscribe(context.Background(), NewsletterRequest{Email: email})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "email %v", email)
		assert.Equal(t, MsgNewsletterRequired, vErr.Message)
	}

	assert.Empty(t, store.subscribers)
}

func TestSubscribeTruthyEmail(t *testing.T) {
	testCases := []struct {
		email    any
		expected string
	}{
		{email: " ", expected: " "},
		{email: map[string]any{}, expected: "[object Object]"},
		{email: []any{}, expected: ""},
		{email: float64(7), expected: "7"},
	}

	for _, tc := range testCases {
		store := &fakeStore{}
		sub, err := newService(store).Subscribe(context.Background(), NewsletterRequest{Email: tc.email})
		require.NoError(t, err, "email %v", tc.email)
		assert.Equal(t, tc.expected, sub.Email)
		assert.Len(t, store.subscribers, 1)
	}
}

func TestNilStores(t *testing.T) {
	svc := New(nil, nil)

	_, err := svc.SubmitContact(context.Background(), ContactRequest{Name: "a", Email: "b", Message: "c"})
	require.ErrorIs(t, err, ErrStoreNil)

	_, err = svc.Subscribe(context.Background(), NewsletterRequest{Email: "b"})
	require.ErrorIs(t, err, ErrStoreNil)
}
