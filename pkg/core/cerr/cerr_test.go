package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
)

func TestStatusOfWrappedErrors(t *testing.T) {
	base := errors.New("vehicle not found")
	err := fmt.Errorf("loading cart: %w", cerr.NotFound(base))

	code, ok := cerr.StatusOf(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
	assert.True(t, cerr.HasStatus(err, http.StatusNotFound))
	assert.False(t, cerr.HasStatus(err, http.StatusBadRequest))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "[404] vehicle not found", cerr.NotFound(base).Error())

	_, ok = cerr.StatusOf(base)
	assert.False(t, ok)
	assert.False(t, cerr.HasStatus(nil, http.StatusNotFound))
}
