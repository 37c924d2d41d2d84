package openai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestLimiter(t *testing.T) {
	t.Run("unlimited", func(t *testing.T) {
		l := newRequestLimiter(0, 0)
		for range 100 {
			assert.True(t, l.Allow())
		}
	})

	t.Run("burst then throttled", func(t *testing.T) {
		l := newRequestLimiter(0.001, 2)
		assert.True(t, l.Allow())
		assert.True(t, l.Allow())
		assert.False(t, l.Allow())
	})

	t.Run("wait honours context", func(t *testing.T) {
		l := newRequestLimiter(0.001, 1)
		assert.True(t, l.Allow())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, l.Wait(ctx))
	})
}
