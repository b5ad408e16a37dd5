package get

import (
	"clinic-portal/api"
	"clinic-portal/internal/timeutil"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/sl"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type DashboardReader interface {
	ConfirmationDashboard(dayKey string) (*api.ConfirmationDashboardResponse, error)
}

type Response struct {
	response.Response
	Dashboard api.ConfirmationDashboardResponse `json:"dashboard,omitempty"`
}

func New(log *slog.Logger, reader DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.confirmations.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		date := r.URL.Query().Get("date")
		if date == "" {
			date = timeutil.FormatDateKey(timeutil.AddDays(time.Now(), 1))
		}

		dashboard, err := reader.ConfirmationDashboard(date)

		if errors.Is(err, response.ErrBadDate) {
			log.Error("malformed date", slog.String("date", date))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_DATE), "date must be YYYY-MM-DD"))
			return
		}

		if err != nil {
			log.Error("Failed to build confirmation dashboard", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to build confirmation dashboard"))
			return
		}

		log.Info("Confirmation dashboard read", slog.String("date", date))

		render.JSON(w, r, Response{
			Dashboard: *dashboard,
		})
	}
}
