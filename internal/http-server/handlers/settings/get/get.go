package get

import (
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/sl"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type SettingsReader interface {
	Settings(ctx context.Context, staffID string) (json.RawMessage, error)
}

type Response struct {
	response.Response
	Settings json.RawMessage `json:"settings,omitempty"`
}

func New(log *slog.Logger, reader SettingsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		staffID := chi.URLParam(r, "staffID")
		if staffID == "" {
			log.Error("staffID is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "staffID is required"))
			return
		}

		settings, err := reader.Settings(r.Context(), staffID)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to read settings", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to read settings"))
			return
		}

		log.Info("Settings read", slog.String("staff_id", staffID))

		render.JSON(w, r, Response{
			Settings: settings,
		})
	}
}
