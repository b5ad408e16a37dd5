package note

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

type NoteUpdater interface {
	UpdateAppointmentNote(id, note string) (*api.AppointmentResponse, error)
}

type Request struct {
	api.AppointmentNoteRequest
}

type Response struct {
	response.Response
	Appointment api.AppointmentResponse `json:"appointment,omitempty"`
}

func New(log *slog.Logger, updater NoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.appointments.note.New"

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

		appointment, err := updater.UpdateAppointmentNote(id, req.Note)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to update appointment note", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update appointment note"))
			return
		}

		log.Info("Appointment note updated", slog.String("id", id))

		render.JSON(w, r, Response{
			Appointment: *appointment,
		})
	}
}
