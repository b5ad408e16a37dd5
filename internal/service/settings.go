package service

import (
	"context"
	"encoding/json"
	"fmt"

	"clinic-portal/pkg/response"
)

// Settings fetches the semi-persisted portal settings blob of one staff user.
func (s *Service) Settings(ctx context.Context, staffID string) (json.RawMessage, error) {
	const op = "service.Settings"

	raw, found, err := s.settings.Get(ctx, settingsKey(staffID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return raw, nil
}

func (s *Service) SaveSettings(ctx context.Context, staffID string, blob json.RawMessage) error {
	const op = "service.SaveSettings"

	if !json.Valid(blob) {
		return fmt.Errorf("%s: %w", op, response.ErrBadRequest)
	}

	if err := s.settings.Set(ctx, settingsKey(staffID), blob); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func settingsKey(staffID string) string {
	return fmt.Sprintf("settings:%s", staffID)
}
