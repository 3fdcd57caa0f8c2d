// Package mail implements the MailDelivery port. The only transport shipped
// is a simulated one: it waits for a fixed delay and accepts the submission
// without sending anything.
package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.MailDelivery = (*SimulatedDelivery)(nil)

// SimulatedDelivery accepts every submission after Delay. It stands in for a
// real mail transport and never sends data anywhere.
type SimulatedDelivery struct {
	delay  time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewSimulatedDelivery creates a SimulatedDelivery that waits delay before accepting.
func NewSimulatedDelivery(delay time.Duration, logger *slog.Logger) *SimulatedDelivery {
	return &SimulatedDelivery{
		delay:  delay,
		now:    time.Now,
		logger: logger,
	}
}

// Submit waits for the configured delay and returns a receipt with a fresh ID.
// If ctx ends first the timer is stopped and a retryable *model.DeliveryError
// wrapping ctx.Err() is returned.
func (d *SimulatedDelivery) Submit(ctx context.Context, form model.ContactForm) (model.ContactReceipt, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return model.ContactReceipt{}, &model.DeliveryError{Err: ctx.Err(), Retryable: true}
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return model.ContactReceipt{}, &model.DeliveryError{Err: err, Retryable: true}
	}

	receipt := model.ContactReceipt{
		ID:         uuid.NewString(),
		AcceptedAt: d.now().UTC(),
	}

	d.logger.Info("simulated contact delivery",
		"id", receipt.ID,
		"from", form.Email,
		"message_length", len(form.Message),
	)

	return receipt, nil
}
