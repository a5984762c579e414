//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"shalean-booking-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkIs(t *testing.T) {
	sentinel := errs.New("no open booking")
	cause := errors.New("sql: no rows in result set")

	marked := errs.Mark(cause, sentinel)

	// The mark is attached out of band of the wrap chain; only errs.Is sees it.
	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errors.Is(marked, sentinel))

	wrapped := errs.Wrap(marked, "verify payment")
	assert.True(t, errs.Is(wrapped, sentinel))
	assert.True(t, errs.Is(wrapped, cause))
}

func TestMarkNilCause(t *testing.T) {
	sentinel := errs.New("boom")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "context"))
}
