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

type ScheduleReader interface {
	Schedule(dayKey string) ([]api.AppointmentResponse, error)
}

type Response struct {
	response.Response
	Date         string                    `json:"date"`
	Appointments []api.AppointmentResponse `json:"appointments"`
}

func New(log *slog.Logger, reader ScheduleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.appointments.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		date := r.URL.Query().Get("date")
		if date == "" {
			date = timeutil.FormatDateKey(timeutil.AddDays(time.Now(), 1))
		}

		appointments, err := reader.Schedule(date)

		if errors.Is(err, response.ErrBadDate) {
			log.Error("malformed date", slog.String("date", date))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_DATE), "date must be YYYY-MM-DD"))
			return
		}

		if err != nil {
			log.Error("Failed to read schedule", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to read schedule"))
			return
		}

		log.Info("Schedule read", slog.String("date", date), slog.Int("count", len(appointments)))

		render.JSON(w, r, Response{
			Date:         date,
			Appointments: appointments,
		})
	}
}
