package boterr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	origErr := errors.New("server error")

	assert.True(t, IsRetryable(NewRetryableAnytimeError(origErr)))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", NewRetryableAnytimeError(origErr))))
	assert.False(t, IsRetryable(origErr))
	assert.False(t, IsRetryable(nil))
}

func TestRetryableErrorUnwrap(t *testing.T) {
	origErr := errors.New("rate limited")
	err := NewRetryableError(origErr, time.Now().Add(time.Minute))

	assert.ErrorIs(t, err, origErr)
	assert.Contains(t, err.Error(), "after")
	assert.NotContains(t, NewRetryableAnytimeError(origErr).Error(), "after")
}
