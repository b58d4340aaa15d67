package ports

import "context"

// Notifier reports failures to the operator (admin chat, log, ...).
type Notifier interface {
	Notify(ctx context.Context, err error, details string)
}
