package create

import (
	"clinic-portal/api"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/sl"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type RegistrationSubmitter interface {
	SubmitRegistration(req *api.RegistrationCreateRequest) (*api.RegistrationResponse, error)
}

type Request struct {
	api.RegistrationCreateRequest
}

type Response struct {
	response.Response
	Registration api.RegistrationResponse `json:"registration,omitempty"`
}

func New(log *slog.Logger, submitter RegistrationSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registrations.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		registration, err := submitter.SubmitRegistration(&req.RegistrationCreateRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("full_name and email are required")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_FAILED), "full_name and email are required"))
			return
		}

		if err != nil {
			log.Error("Failed to submit registration", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to submit registration"))
			return
		}

		log.Info("Registration submitted", slog.String("id", registration.ID))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			Registration: *registration,
		})
	}
}
