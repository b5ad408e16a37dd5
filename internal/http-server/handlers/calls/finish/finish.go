package finish

import (
	"clinic-portal/api"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/sl"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CallFinisher interface {
	FinishCall(taskID string, req *api.FinishCallRequest) (*api.CallTaskResponse, error)
}

type Request struct {
	api.FinishCallRequest
}

type Response struct {
	response.Response
	Task api.CallTaskResponse `json:"task,omitempty"`
}

func New(log *slog.Logger, finisher CallFinisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calls.finish.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "id is required"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		task, err := finisher.FinishCall(id, &req.FinishCallRequest)

		if errors.Is(err, response.ErrBadStatus) {
			log.Error("unknown outcome", slog.String("outcome", req.Outcome))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_STATUS), "outcome must be confirmed, reschedule or no-answer"))
			return
		}

		if errors.Is(err, response.ErrNoteRequired) {
			log.Error("note is required for reschedule")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.NOTE_REQUIRED), "describe the reschedule request in the note"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to finish call", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to finish call"))
			return
		}

		log.Info("Call finished", slog.String("id", id), slog.String("outcome", req.Outcome))

		render.JSON(w, r, Response{
			Task: *task,
		})
	}
}
