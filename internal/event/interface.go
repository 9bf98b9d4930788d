package event

import "context"

// Publisher delivers order events. Publishing is best effort: callers log
// failures and never undo the committed change.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}
