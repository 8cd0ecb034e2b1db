package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsByCode(t *testing.T) {
	cause := stderrors.New("upstream 500")
	err := ErrGenerationFailed.WithError(cause).WithDetail("try again")

	assert.True(t, Is(err, ErrGenerationFailed))
	assert.True(t, Is(err, cause))
	assert.False(t, Is(err, ErrInvalidRequest))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, Is(wrapped, ErrGenerationFailed))
	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, "try again", AsAppError(wrapped).Detail)
}

func TestAppError_CopiesDoNotMutateSentinel(t *testing.T) {
	_ = ErrInvalidRequest.WithDetail("x").WithError(stderrors.New("y"))
	assert.Empty(t, ErrInvalidRequest.Detail)
	assert.Nil(t, ErrInvalidRequest.Err)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, InvalidRequest("bad %s", "opts").HTTPStatus)
	assert.Equal(t, "bad opts", InvalidRequest("bad %s", "opts").Detail)
	assert.Equal(t, http.StatusNotFound, ErrNotFound.HTTPStatus)
	assert.Equal(t, http.StatusTooManyRequests, ErrTooManyRequests.HTTPStatus)
	assert.Equal(t, http.StatusBadGateway, ErrGenerationFailed.HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, ErrServiceUnavailable.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, ErrCache.HTTPStatus)
}

func TestAsAppError_Unknown(t *testing.T) {
	err := AsAppError(stderrors.New("plain"))
	assert.Equal(t, CodeUnknown, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[1001] invalid request", ErrInvalidRequest.Error())
	assert.Equal(t, "[4001] generation failed: boom", ErrGenerationFailed.WithError(stderrors.New("boom")).Error())
}
