package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Customer-facing messages for upstream failures. The remote API's own
// error text is preferred when it reports one.
const (
	MsgServerError      = "Something went wrong on our end. Please try again."
	MsgPermissionDenied = "You do not have permission to perform this action."
	MsgUnexpected       = "An unexpected error occurred. Please try again."
)

// Result is the one shape every gateway caller receives.
type Result struct {
	Data    json.RawMessage
	Message string
	Err     bool
	Status  int
}

// PageMeta carries the remote API's pagination envelope fields.
type PageMeta struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// envelope covers both response shapes the remote API produces: a success
// wrapper {data, message} and an error wrapper {error, message}.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   bool            `json:"error"`
	PageMeta
}

// Normalize folds an HTTP status and body into the Result shape:
// a server-reported error field wins, 5xx maps to a generic server-error
// message, 403 to permission denied, any other failure to a generic
// unexpected-error message.
func Normalize(status int, body []byte) *Result {
	var env envelope
	parsed := json.Unmarshal(body, &env) == nil

	if status >= 200 && status < 300 {
		if parsed && env.Error {
			msg := env.Message
			if msg == "" {
				msg = MsgUnexpected
			}
			return &Result{Message: msg, Err: true, Status: status}
		}

		// A 2xx body that is not valid JSON (truncated, HTML error page)
		// cannot be decoded downstream; surface it instead of passing the
		// raw bytes through.
		if !parsed && len(body) > 0 && !json.Valid(body) {
			return &Result{Message: MsgUnexpected, Err: true, Status: status}
		}

		data := env.Data
		if !parsed || data == nil {
			data = body
		}
		return &Result{Data: data, Message: env.Message, Status: status}
	}

	switch {
	case status >= http.StatusInternalServerError:
		return &Result{Message: MsgServerError, Err: true, Status: status}
	case status == http.StatusForbidden:
		return &Result{Message: MsgPermissionDenied, Err: true, Status: status}
	default:
		msg := MsgUnexpected
		if parsed && env.Message != "" {
			msg = env.Message
		}
		return &Result{Message: msg, Err: true, Status: status}
	}
}

func serverErrorResult() *Result {
	return &Result{Message: MsgServerError, Err: true, Status: http.StatusBadGateway}
}

func unexpectedResult() *Result {
	return &Result{Message: MsgUnexpected, Err: true}
}

// Decode unmarshals the normalized data payload into target.
func (r *Result) Decode(target any) error {
	if r.Err {
		return fmt.Errorf("cannot decode an error result: %s", r.Message)
	}
	if len(r.Data) == 0 {
		return fmt.Errorf("empty response data")
	}
	return json.Unmarshal(r.Data, target)
}

// DecodePage unmarshals a paginated payload: the list into target, the
// envelope metadata into the returned PageMeta.
func (r *Result) DecodePage(target any) (*PageMeta, error) {
	if r.Err {
		return nil, fmt.Errorf("cannot decode an error result: %s", r.Message)
	}

	var page struct {
		Data json.RawMessage `json:"data"`
		PageMeta
	}
	if err := json.Unmarshal(r.Data, &page); err != nil {
		return nil, fmt.Errorf("could not decode paginated response: %w", err)
	}

	// Some endpoints nest the page under data, others return it flat.
	listData := page.Data
	if listData == nil {
		listData = r.Data
	}
	if err := json.Unmarshal(listData, target); err != nil {
		return nil, fmt.Errorf("could not decode page items: %w", err)
	}

	return &page.PageMeta, nil
}
