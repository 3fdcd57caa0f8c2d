package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// mockDelivery implements driven.MailDelivery for service tests.
type mockDelivery struct {
	receipt model.ContactReceipt
	err     error
	calls   int
	got     model.ContactForm
}

func (m *mockDelivery) Submit(_ context.Context, form model.ContactForm) (model.ContactReceipt, error) {
	m.calls++
	m.got = form
	return m.receipt, m.err
}

func TestContactService_SubmitSuccess(t *testing.T) {
	delivery := &mockDelivery{receipt: model.ContactReceipt{ID: "abc", AcceptedAt: time.Now()}}
	svc := NewContactService(delivery, discardLogger())

	receipt, err := svc.Submit(context.Background(), model.ContactForm{
		Name:    "  Ada  ",
		Email:   "ada@example.com ",
		Message: " Hello there ",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", receipt.ID)
	assert.Equal(t, 1, delivery.calls)
	assert.Equal(t, model.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}, delivery.got)
}

func TestContactService_ValidationSkipsDelivery(t *testing.T) {
	delivery := &mockDelivery{}
	svc := NewContactService(delivery, discardLogger())

	_, err := svc.Submit(context.Background(), model.ContactForm{Email: "nope"})

	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Name is required", ve.Fields["name"])
	assert.Equal(t, "Email address is not valid", ve.Fields["email"])
	assert.Equal(t, "Message is required", ve.Fields["message"])
	assert.Equal(t, 0, delivery.calls)
}

func TestContactService_DeliveryErrorPassesThrough(t *testing.T) {
	delivery := &mockDelivery{err: &model.DeliveryError{Err: errors.New("mailbox full"), Retryable: false}}
	svc := NewContactService(delivery, discardLogger())

	_, err := svc.Submit(context.Background(), model.ContactForm{Name: "a", Email: "a@example.com", Message: "m"})

	var de *model.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.False(t, de.Retryable)
	assert.EqualError(t, de.Err, "mailbox full")
}

func TestContactService_PlainErrorBecomesRetryableDeliveryError(t *testing.T) {
	delivery := &mockDelivery{err: context.DeadlineExceeded}
	svc := NewContactService(delivery, discardLogger())

	_, err := svc.Submit(context.Background(), model.ContactForm{Name: "a", Email: "a@example.com", Message: "m"})

	var de *model.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.True(t, de.Retryable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestValidateContactForm(t *testing.T) {
	tests := []struct {
		name       string
		form       model.ContactForm
		wantFields []string
	}{
		{name: "valid", form: model.ContactForm{Name: "a", Email: "a@example.com", Message: "hi"}},
		{name: "display name form rejected", form: model.ContactForm{Name: "a", Email: "A <a@example.com>", Message: "hi"}, wantFields: []string{"email"}},
		{name: "missing email", form: model.ContactForm{Name: "a", Message: "hi"}, wantFields: []string{"email"}},
		{name: "message too long", form: model.ContactForm{Name: "a", Email: "a@example.com", Message: strings.Repeat("é", 5001)}, wantFields: []string{"message"}},
		{name: "message at limit", form: model.ContactForm{Name: "a", Email: "a@example.com", Message: strings.Repeat("é", 5000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContactForm(tt.form)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var ve *model.ValidationError
			require.True(t, errors.As(err, &ve))
			for _, f := range tt.wantFields {
				assert.Contains(t, ve.Fields, f)
			}
			assert.Len(t, ve.Fields, len(tt.wantFields))
		})
	}
}
