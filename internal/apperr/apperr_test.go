package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsAreDisjoint(t *testing.T) {
	err := NotFound("unit %d", 7)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))
	assert.False(t, IsValidation(err))
	assert.Contains(t, err.Error(), "unit 7")
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := Forbidden("not your property")
	wrapped := fmt.Errorf("delete property: %w", inner)
	assert.True(t, IsForbidden(wrapped))
}

func TestChecksRejectNil(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsForbidden(nil))
	assert.False(t, IsValidation(nil))
}
