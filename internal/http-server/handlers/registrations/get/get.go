package get

import (
	"clinic-portal/api"
	"clinic-portal/pkg/response"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type RegistrationLister interface {
	Registrations() []api.RegistrationResponse
}

type Response struct {
	response.Response
	Registrations []api.RegistrationResponse `json:"registrations"`
}

func New(log *slog.Logger, lister RegistrationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registrations.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		registrations := lister.Registrations()

		log.Info("Registrations read", slog.Int("count", len(registrations)))

		render.JSON(w, r, Response{
			Registrations: registrations,
		})
	}
}
