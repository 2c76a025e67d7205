package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorPassesThroughAppError(t *testing.T) {
	appErr := NewAppError("boom", MsgInternalError, ErrCodeInternalError, http.StatusInternalServerError, nil)
	assert.Same(t, appErr, MapError(appErr))
}

func TestMapErrorValidationMessages(t *testing.T) {
	err := fmt.Errorf("either 'zip' or both 'city' and 'state' must be specified")
	appErr := MapError(err)

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.Equal(t, ErrCodeInsufficientParameters, appErr.Code)
	// The caller is told what is missing.
	assert.Equal(t, err.Error(), appErr.UserMessage)
}

func TestMapErrorDefaultsToInternal(t *testing.T) {
	appErr := MapError(fmt.Errorf("something exploded in a handler"))

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, ErrCodeInternalError, appErr.Code)
	// Technical detail stays out of the user message.
	assert.Equal(t, MsgInternalError, appErr.UserMessage)
}

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}
