//go:build unit || e2e

package testutil

import (
	"testing"

	"ticket-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs also follows references attached with errs.Mark, which assert.ErrorIs does not.
func AssertErrorIs(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "expected %q in chain, got: %v", target, err)
}
