package notifier

import "context"

// Notifier pushes a human-readable run summary to an operator channel.
// Delivery failures are the caller's to log; they never fail the run.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// NoopNotifier is used when no notification channel is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Notify(_ context.Context, _ string) error { return nil }
