package set

import (
	"clinic-portal/api"
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

type SettingsWriter interface {
	SaveSettings(ctx context.Context, staffID string, blob json.RawMessage) error
}

type Request struct {
	api.SettingsPayload
}

type Response struct {
	response.Response
}

func New(log *slog.Logger, writer SettingsWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.set.New"

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

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		if len(req.Settings) == 0 {
			log.Error("settings is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "settings is required"))
			return
		}

		err := writer.SaveSettings(r.Context(), staffID, req.Settings)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("settings is not valid JSON")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "settings must be valid JSON"))
			return
		}

		if err != nil {
			log.Error("Failed to save settings", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to save settings"))
			return
		}

		log.Info("Settings saved", slog.String("staff_id", staffID))

		render.JSON(w, r, Response{})
	}
}
