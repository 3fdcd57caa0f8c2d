package driven

import (
	"context"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// PortfolioSource defines the driven port for loading the static portfolio dataset.
// Load is called once at startup; the returned Portfolio must not be mutated.
type PortfolioSource interface {
	Load(ctx context.Context) (*model.Portfolio, error)
}
