package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
)

// ConnectivityStatusPath is where callers are sent when the upstream
// booking API cannot be reached.
const ConnectivityStatusPath = "/status/connectivity"

type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

// PageResponse mirrors the paginated envelope of the remote booking API so
// list payloads pass through to the frontend unchanged in shape.
type PageResponse struct {
	Data          any   `json:"data"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	WriteJSON(w, status, ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// WriteErrorOrRedirect handles the offline short-circuit: connectivity
// failures send the customer to the status page instead of an error body.
func WriteErrorOrRedirect(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.IsCode(err, apperrors.CodeOffline) {
		http.Redirect(w, r, ConnectivityStatusPath, http.StatusTemporaryRedirect)
		return
	}
	WriteError(w, err)
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WritePage(w http.ResponseWriter, data any, page, size int, totalElements int64, totalPages int) {
	WriteJSON(w, http.StatusOK, PageResponse{
		Data:          data,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	})
}
