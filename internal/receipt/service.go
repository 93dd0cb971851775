package receipt

import (
	"context"

	"github.com/google/uuid"

	dErrors "github.com/kvverti/serve-ex/pkg/domain-errors"
)

// Service gates decoded receipts into the store and serves lookups. It keeps
// orchestration out of handlers and domain logic thin.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Process validates a decoded receipt and stores it, returning the assigned
// identifier. An unacceptable receipt is rejected without any state change;
// the rejection is distinguishable from a lookup miss by its error code.
func (s *Service) Process(ctx context.Context, rec Receipt) (uuid.UUID, error) {
	if !rec.Acceptable() {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "receipt failed acceptability checks")
	}
	return s.store.Save(ctx, rec)
}

// Get returns the stored receipt for the identifier, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Receipt, error) {
	return s.store.FindByID(ctx, id)
}
