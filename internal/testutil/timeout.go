package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultShortTimeout bounds quick operations such as starting a server.
const DefaultShortTimeout = 5 * time.Second

// ShortOperationContext returns a context that ends at the test deadline or
// after DefaultShortTimeout, whichever comes first.
func ShortOperationContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()

	timeout := DefaultShortTimeout
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return context.WithTimeout(context.Background(), timeout)
}
