package confirm

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

type DayConfirmer interface {
	ConfirmDoctorDay(doctorID string, req *api.ConfirmDayRequest) (*api.DoctorDaySummary, error)
}

type Request struct {
	api.ConfirmDayRequest
}

type Response struct {
	response.Response
	Doctor api.DoctorDaySummary `json:"doctor,omitempty"`
}

func New(log *slog.Logger, confirmer DayConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.confirmations.confirm.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		doctorID := chi.URLParam(r, "doctorID")
		if doctorID == "" {
			log.Error("doctorID is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "doctorID is required"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		if req.Date == "" {
			log.Error("date is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "date is required"))
			return
		}

		doctor, err := confirmer.ConfirmDoctorDay(doctorID, &req.ConfirmDayRequest)

		if errors.Is(err, response.ErrBadStatus) {
			log.Error("unknown status", slog.String("status", req.Status))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_STATUS), "unknown confirmation status"))
			return
		}

		if errors.Is(err, response.ErrNoteRequired) {
			log.Error("note is required for needs-changes")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.NOTE_REQUIRED), "describe the requested changes in the note"))
			return
		}

		if errors.Is(err, response.ErrBadDate) {
			log.Error("malformed date", slog.String("date", req.Date))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_DATE), "date must be YYYY-MM-DD"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to confirm doctor day", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to confirm doctor day"))
			return
		}

		log.Info("Doctor day confirmed",
			slog.String("doctor_id", doctorID),
			slog.String("date", req.Date),
			slog.String("status", req.Status),
		)

		render.JSON(w, r, Response{
			Doctor: *doctor,
		})
	}
}
