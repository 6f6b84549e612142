package gateway

import (
	"net/http"
	"testing"
)

func TestNormalize_SuccessEnvelope(t *testing.T) {
	body := []byte(`{"data":{"id":"veh-1"},"message":"ok"}`)
	res := Normalize(http.StatusOK, body)

	if res.Err {
		t.Fatalf("expected success, got error: %s", res.Message)
	}
	var payload struct {
		ID string `json:"id"`
	}
	if err := res.Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.ID != "veh-1" {
		t.Errorf("expected data to pass through, got %+v", payload)
	}
}

func TestNormalize_BareBody(t *testing.T) {
	// Endpoints without the wrapper return the object directly.
	body := []byte(`{"id":"veh-2"}`)
	res := Normalize(http.StatusOK, body)

	if res.Err {
		t.Fatalf("expected success, got error: %s", res.Message)
	}
	var payload struct {
		ID string `json:"id"`
	}
	if err := res.Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.ID != "veh-2" {
		t.Errorf("expected bare body to become data, got %+v", payload)
	}
}

func TestNormalize_GarbledSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated JSON", body: `{"data":{"id":"veh-`},
		{name: "HTML error page", body: `<html><body>Bad gateway</body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(http.StatusOK, []byte(tt.body))
			if !res.Err {
				t.Fatal("an undecodable 2xx body must become an error result")
			}
			if res.Message != MsgUnexpected {
				t.Errorf("message = %q, want %q", res.Message, MsgUnexpected)
			}
		})
	}

	// A valid JSON array is not envelope-shaped but is still decodable.
	res := Normalize(http.StatusOK, []byte(`[{"id":"b-1"}]`))
	if res.Err {
		t.Fatalf("expected success for a bare array, got error: %s", res.Message)
	}
	var items []struct {
		ID string `json:"id"`
	}
	if err := res.Decode(&items); err != nil || len(items) != 1 {
		t.Errorf("Decode() = %v items=%d, want the array to pass through", err, len(items))
	}
}

func TestNormalize_ServerReportedError(t *testing.T) {
	body := []byte(`{"error":true,"message":"Vehicle is no longer available"}`)
	res := Normalize(http.StatusOK, body)

	if !res.Err {
		t.Fatal("expected error result")
	}
	if res.Message != "Vehicle is no longer available" {
		t.Errorf("expected server message to win, got %q", res.Message)
	}
	if res.Data != nil {
		t.Errorf("expected nil data on error, got %s", res.Data)
	}
}

func TestNormalize_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "500 maps to server error", status: 500, body: `{}`, wantMsg: MsgServerError},
		{name: "502 maps to server error", status: 502, body: ``, wantMsg: MsgServerError},
		{name: "403 maps to permission denied", status: 403, body: `{}`, wantMsg: MsgPermissionDenied},
		{name: "404 without message maps to unexpected", status: 404, body: `{}`, wantMsg: MsgUnexpected},
		{name: "422 keeps server message", status: 422, body: `{"message":"Start date is in the past"}`, wantMsg: "Start date is in the past"},
		{name: "unparseable body maps to unexpected", status: 400, body: `<html>`, wantMsg: MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.status, []byte(tt.body))
			if !res.Err {
				t.Fatalf("expected error result for status %d", tt.status)
			}
			if res.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", res.Message, tt.wantMsg)
			}
		})
	}
}

func TestDecodePage(t *testing.T) {
	body := []byte(`{"data":[{"id":"b-1"},{"id":"b-2"}],"page":1,"size":10,"totalElements":23,"totalPages":3}`)
	res := Normalize(http.StatusOK, body)

	var items []struct {
		ID string `json:"id"`
	}
	meta, err := res.DecodePage(&items)
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
	if meta.TotalElements != 23 || meta.TotalPages != 3 {
		t.Errorf("unexpected page meta: %+v", meta)
	}
}

func TestDecode_ErrorResult(t *testing.T) {
	res := Normalize(http.StatusInternalServerError, nil)
	var out any
	if err := res.Decode(&out); err == nil {
		t.Error("expected Decode on an error result to fail")
	}
	if _, err := res.DecodePage(&out); err == nil {
		t.Error("expected DecodePage on an error result to fail")
	}
}
