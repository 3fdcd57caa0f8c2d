package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testForm() model.ContactForm {
	return model.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
}

func TestSimulatedDelivery_Accepts(t *testing.T) {
	d := NewSimulatedDelivery(5*time.Millisecond, testLogger())
	fixed := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	d.now = func() time.Time { return fixed }

	start := time.Now()
	receipt, err := d.Submit(context.Background(), testForm())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	assert.Equal(t, fixed, receipt.AcceptedAt)
	_, parseErr := uuid.Parse(receipt.ID)
	assert.NoError(t, parseErr)
}

func TestSimulatedDelivery_UniqueIDs(t *testing.T) {
	d := NewSimulatedDelivery(0, testLogger())

	a, err := d.Submit(context.Background(), testForm())
	require.NoError(t, err)
	b, err := d.Submit(context.Background(), testForm())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSimulatedDelivery_CanceledDuringDelay(t *testing.T) {
	d := NewSimulatedDelivery(time.Hour, testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := d.Submit(ctx, testForm())

	var de *model.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.True(t, de.Retryable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedDelivery_CanceledWithoutDelay(t *testing.T) {
	d := NewSimulatedDelivery(0, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Submit(ctx, testForm())
	assert.ErrorIs(t, err, context.Canceled)
}
