package contracts

import "context"

// Notifier is the injected notification capability. Implementations must be
// safe to call from the submission flow: a failed notice is logged, never
// propagated.
type Notifier interface {
	Notify(ctx context.Context, kind, message string) error
}
