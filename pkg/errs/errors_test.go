package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		Name     string
		Err      error
		Expected int
	}{
		{Name: "client error", Err: ErrClient, Expected: http.StatusBadRequest},
		{Name: "invalid id", Err: ErrInvalidID, Expected: http.StatusBadRequest},
		{Name: "wrapped invalid id", Err: fmt.Errorf("get toy: %w", ErrInvalidID), Expected: http.StatusBadRequest},
		{Name: "not found", Err: ErrNotFound, Expected: http.StatusNotFound},
		{Name: "unavailable", Err: ErrUnavailable, Expected: http.StatusServiceUnavailable},
		{Name: "unknown error", Err: errors.New("connection reset"), Expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, GetErrorStatusCode(tc.Err))
		})
	}
}

func TestPublicError(t *testing.T) {
	assert.Equal(t, ErrInvalidID, PublicError(fmt.Errorf("delete toy: %w", ErrInvalidID)))
	assert.Equal(t, ErrInternalServer, PublicError(errors.New("server selection timeout")))
}
