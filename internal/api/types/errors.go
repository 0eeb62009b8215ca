package types

import (
	"net/http"

	appErr "github.com/uptraa/platform/pkg/errors"
)

// InternalServerError is the fixed message for any unmapped failure.
const InternalServerError = "Internal server error"

var statusByCode = map[appErr.Code]int{
	appErr.CodeInvalid:      http.StatusBadRequest,
	appErr.CodeUnauthorized: http.StatusUnauthorized,
	appErr.CodeNotFound:     http.StatusNotFound,
	appErr.CodeConflict:     http.StatusConflict,
}

// FromError maps err to a status and body. Application errors with a client
// code keep their message; everything else becomes a 500.
func FromError(err error) (int, ErrorBody) {
	if ae, ok := appErr.As(err); ok {
		if status, mapped := statusByCode[ae.Code]; mapped {
			return status, ErrorBody{Error: ae.Message}
		}
	}
	stack := ""
	if err != nil {
		stack = err.Error()
	}
	return http.StatusInternalServerError, ErrorBody{Error: InternalServerError, Stack: stack}
}
