package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Source is anything that hands out image names in turn.
type Source interface {
	Next() (string, bool)
}

// AssertSequence calls src.Next once per element of want and checks each
// result in order.
func AssertSequence(t *testing.T, src Source, want []string) {
	t.Helper()
	for i, w := range want {
		got, ok := src.Next()
		require.True(t, ok, "call %d returned no value", i+1)
		assert.Equal(t, w, got, "call %d", i+1)
	}
}

// AssertExhausted checks that src returns the empty sentinel on every one of
// calls calls.
func AssertExhausted(t *testing.T, src Source, calls int) {
	t.Helper()
	for i := 0; i < calls; i++ {
		got, ok := src.Next()
		assert.False(t, ok, "call %d returned a value", i+1)
		assert.Empty(t, got, "call %d", i+1)
	}
}
