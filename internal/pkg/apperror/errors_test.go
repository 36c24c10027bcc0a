package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeSourceUnavailable, "портфолио временно недоступно")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("aggregator: %w", Wrap(errors.New("boom"), ErrCodeSourceUnavailable, "x"))

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.NotErrorIs(t, err, ErrVideoNotFound)
	assert.True(t, IsSourceUnavailable(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, ErrCodeNotFound, CodeOf(ErrVideoNotFound))
	assert.True(t, IsNotFound(ErrVideoNotFound))
	assert.True(t, IsValidation(New(ErrCodeValidation, "title")))
}

func TestCodeToHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeValidation:   http.StatusBadRequest,
		ErrCodeForbidden:    http.StatusForbidden,
		ErrCodeUploadFailed: http.StatusBadGateway,
		ErrCodeInsertFailed: http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "m").HTTPStatus, string(code))
	}
}
