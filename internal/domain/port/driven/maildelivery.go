package driven

import (
	"context"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// MailDelivery defines the driven port for handing a contact submission to a
// mail transport. Implementations return *model.DeliveryError when the
// submission was not accepted.
type MailDelivery interface {
	Submit(ctx context.Context, form model.ContactForm) (model.ContactReceipt, error)
}
