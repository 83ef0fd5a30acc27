package confirm

import "context"

// Store is the registry of pending actions. Delete is idempotent:
// deleting an absent id is a no-op. Clear exists for tests and admin
// commands.
type Store interface {
	Create(ctx context.Context, action PendingAction) error
	Get(ctx context.Context, id string) (PendingAction, bool, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
