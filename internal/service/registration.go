package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-portal/api"
	"clinic-portal/internal/models"
	"clinic-portal/internal/notify"
	"clinic-portal/pkg/response"
)

func (s *Service) SubmitRegistration(req *api.RegistrationCreateRequest) (*api.RegistrationResponse, error) {
	const op = "service.SubmitRegistration"

	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%s: %w", op, response.ErrValidation)
	}

	record := models.RegistrationRequest{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.TrimSpace(req.Email),
		Role:      strings.TrimSpace(req.Role),
		Status:    models.REG_PENDING,
		CreatedAt: time.Now(),
	}

	s.store.AddRegistration(record)

	resp := toRegistrationResponse(record)

	return &resp, nil
}

func (s *Service) Registrations() []api.RegistrationResponse {
	var out []api.RegistrationResponse
	for _, r := range s.store.Registrations() {
		out = append(out, toRegistrationResponse(r))
	}

	return out
}

// DecideRegistration applies an approve/reject decision and sends the fixed
// notification template through the mailer boundary. The decision is applied
// even if delivery fails; the caller sees the delivery error.
func (s *Service) DecideRegistration(ctx context.Context, id string, approved bool) (*api.RegistrationResponse, error) {
	const op = "service.DecideRegistration"

	record, ok := s.store.DecideRegistration(id, approved)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	subject, body := notify.DecisionMessage(record)
	if err := s.mailer.Send(ctx, record.Email, subject, body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := toRegistrationResponse(record)

	return &resp, nil
}

func toRegistrationResponse(r models.RegistrationRequest) api.RegistrationResponse {
	return api.RegistrationResponse{
		ID:        r.ID,
		FullName:  r.FullName,
		Email:     r.Email,
		Role:      r.Role,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		DecidedAt: r.DecidedAt,
	}
}
