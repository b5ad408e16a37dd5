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

type BoardReader interface {
	CallBoard(dayKey string) (*api.CallBoardResponse, error)
}

type Response struct {
	response.Response
	Board api.CallBoardResponse `json:"board,omitempty"`
}

func New(log *slog.Logger, reader BoardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calls.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		date := r.URL.Query().Get("date")
		if date == "" {
			date = timeutil.FormatDateKey(timeutil.AddDays(time.Now(), 1))
		}

		board, err := reader.CallBoard(date)

		if errors.Is(err, response.ErrBadDate) {
			log.Error("malformed date", slog.String("date", date))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_DATE), "date must be YYYY-MM-DD"))
			return
		}

		if err != nil {
			log.Error("Failed to build call board", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to build call board"))
			return
		}

		log.Info("Call board read", slog.String("date", date), slog.Int("tasks", board.Totals.Total))

		render.JSON(w, r, Response{
			Board: *board,
		})
	}
}
