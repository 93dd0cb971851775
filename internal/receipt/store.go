package receipt

import (
	"context"

	"github.com/google/uuid"

	dErrors "github.com/kvverti/serve-ex/pkg/domain-errors"
)

// ErrNotFound keeps store-level 404s consistent across in-memory and future
// implementations. Absence is an expected outcome, not a fault.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "receipt not found")

// Store is interface-driven to keep the domain logic testable and to allow
// swapping the in-memory implementation without rewiring business code.
// Records are write-once: there is no update or delete.
type Store interface {
	Save(ctx context.Context, rec Receipt) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (Receipt, error)
}
