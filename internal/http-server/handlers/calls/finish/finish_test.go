package finish

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"clinic-portal/api"
	"clinic-portal/pkg/response"
)

type stubFinisher struct {
	task *api.CallTaskResponse
	err  error

	gotID  string
	gotReq *api.FinishCallRequest
}

func (s *stubFinisher) FinishCall(taskID string, req *api.FinishCallRequest) (*api.CallTaskResponse, error) {
	s.gotID = taskID
	s.gotReq = req
	return s.task, s.err
}

func doRequest(t *testing.T, finisher *stubFinisher, body string) *httptest.ResponseRecorder {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	router.Post("/calls/{id}/finish", New(log, finisher))

	req := httptest.NewRequest(http.MethodPost, "/calls/call-1/finish", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestFinishHandler_ok(t *testing.T) {
	finisher := &stubFinisher{
		task: &api.CallTaskResponse{ID: "call-1", Status: "confirmed", Actions: []string{}},
	}

	rec := doRequest(t, finisher, `{"outcome":"confirmed"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if finisher.gotID != "call-1" {
		t.Fatalf("task id: got %q", finisher.gotID)
	}
	if finisher.gotReq == nil || finisher.gotReq.Outcome != "confirmed" {
		t.Fatalf("request not passed through: %+v", finisher.gotReq)
	}
}

func TestFinishHandler_noteRequired(t *testing.T) {
	finisher := &stubFinisher{
		err: fmt.Errorf("service.FinishCall: %w", response.ErrNoteRequired),
	}

	rec := doRequest(t, finisher, `{"outcome":"reschedule"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(response.NOTE_REQUIRED)) {
		t.Fatalf("body must carry NOTE_REQUIRED code: %s", rec.Body.String())
	}
}

func TestFinishHandler_badOutcome(t *testing.T) {
	finisher := &stubFinisher{
		err: fmt.Errorf("service.FinishCall: %w", response.ErrBadStatus),
	}

	rec := doRequest(t, finisher, `{"outcome":"busy"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(response.BAD_STATUS)) {
		t.Fatalf("body must carry UNKNOWN_STATUS code: %s", rec.Body.String())
	}
}

func TestFinishHandler_notFound(t *testing.T) {
	finisher := &stubFinisher{
		err: fmt.Errorf("service.FinishCall: %w", response.ErrNotFound),
	}

	rec := doRequest(t, finisher, `{"outcome":"confirmed"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}
