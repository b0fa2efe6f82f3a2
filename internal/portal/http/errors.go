package http

import (
	"errors"
	"net/http"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

func writeError(w http.ResponseWriter, code int, errCode, description string) {
	httpx.WriteJSON(w, code, portalsdk.ErrorResponse{
		Error:            errCode,
		ErrorDescription: description,
	})
}

// writeValidationError reports field level messages. It returns false when
// err is not a validation error so the caller can keep classifying it.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	description := verr.Message
	if description == "" {
		description = "Please correct the highlighted fields"
	}
	httpx.WriteJSON(w, http.StatusBadRequest, portalsdk.ErrorResponse{
		Error:            portalsdk.ErrorCodeValidation,
		ErrorDescription: description,
		Details:          verr.Fields,
	})
	return true
}

// decodeBody writes a 400 and returns false when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return false
	}
	return true
}

// sessionID returns the browser session attached by the session middleware.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, ok := httpx.SessionID(r.Context())
	if !ok {
		slogx.FromContext(r.Context()).Error("request reached a session handler without a session")
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "No browser session")
		return "", false
	}
	return sid, true
}
