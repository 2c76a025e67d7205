package errors

import (
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	// Validation errors carry a client-facing description of what is
	// missing; everything else is reported as an opaque internal error.
	switch {
	case strings.Contains(technicalMessage, "is required"), strings.Contains(technicalMessage, "must be specified"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      technicalMessage,
			Code:             ErrCodeInsufficientParameters,
			HTTPStatus:       http.StatusUnprocessableEntity,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternalError,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
