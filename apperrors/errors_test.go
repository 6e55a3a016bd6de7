package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{AlreadyProcessed("done"), http.StatusBadRequest},
		{DuplicatePending("again"), http.StatusBadRequest},
		{AlreadyPrivileged("already admin"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{New(KindUnauthorized, "who are you"), http.StatusUnauthorized},
		{New(KindForbidden, "not yours"), http.StatusForbidden},
		{Store("db down", errors.New("timeout")), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestMessageHidesUnderlyingError(t *testing.T) {
	err := Store("Failed to load user", errors.New("connection reset"))

	assert.Equal(t, "Failed to load user", Message(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMessageFallsBackForUntypedErrors(t *testing.T) {
	err := errors.New("plain failure")
	assert.Equal(t, "plain failure", Message(err))
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("missing"))
	assert.Equal(t, KindNotFound, KindOf(err))

	assert.Equal(t, KindStore, KindOf(errors.New("untyped")))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Store("db down", cause)

	assert.True(t, errors.Is(err, cause))
}
