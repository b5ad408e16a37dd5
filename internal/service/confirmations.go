package service

import (
	"fmt"
	"sort"
	"strings"

	"clinic-portal/api"
	"clinic-portal/internal/models"
	"clinic-portal/internal/timeutil"
	"clinic-portal/pkg/response"
)

// ConfirmationDashboard builds the per-doctor confirmation view for one day.
// It is a pure projection over the current collections: doctors without a
// confirmation record for the day show as pending.
func (s *Service) ConfirmationDashboard(dayKey string) (*api.ConfirmationDashboardResponse, error) {
	const op = "service.ConfirmationDashboard"

	dayKey, err := timeutil.NormalizeDateKey(dayKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadDate)
	}

	appointments := s.store.Appointments()
	confirmations := s.store.Confirmations()

	dash := &api.ConfirmationDashboardResponse{Date: dayKey}

	for _, d := range s.store.Doctors() {
		summary := s.doctorSummary(d, dayKey, appointments, confirmations)
		dash.Doctors = append(dash.Doctors, summary)

		switch models.ConfirmationStatus(summary.Status) {
		case models.DAY_CONFIRMED:
			dash.Totals.DoctorsConfirmed++
		case models.DAY_NEEDS_CHANGES:
			dash.Totals.DoctorsNeedsChanges++
		default:
			dash.Totals.DoctorsPending++
		}
		dash.Totals.TotalVisits += summary.TotalVisits
	}

	return dash, nil
}

// ConfirmDoctorDay applies a doctor's decision about their day. The one
// workflow rule lives here, not in the store: needs-changes without a note is
// rejected before any mutation happens.
func (s *Service) ConfirmDoctorDay(doctorID string, req *api.ConfirmDayRequest) (*api.DoctorDaySummary, error) {
	const op = "service.ConfirmDoctorDay"

	status, ok := parseConfirmationStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadStatus)
	}

	if status == models.DAY_NEEDS_CHANGES && strings.TrimSpace(req.Note) == "" {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNoteRequired)
	}

	doctor, ok := s.doctorByID(doctorID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	if err := s.store.ConfirmDoctorDay(doctorID, req.Date, status, req.Note); err != nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadDate)
	}

	dayKey, _ := timeutil.NormalizeDateKey(req.Date)
	summary := s.doctorSummary(doctor, dayKey, s.store.Appointments(), s.store.Confirmations())

	return &summary, nil
}

func (s *Service) doctorSummary(d models.Doctor, dayKey string, appointments []models.Appointment, confirmations []models.DoctorConfirmation) api.DoctorDaySummary {
	summary := api.DoctorDaySummary{
		DoctorID:   d.ID,
		DoctorName: d.FullName,
		Specialty:  d.Specialty,
		Status:     string(models.DAY_PENDING),
	}

	for _, c := range confirmations {
		if c.DoctorID == d.ID && c.Date == dayKey {
			summary.Status = string(c.Status)
			summary.Note = c.Note
			summary.UpdatedAt = c.UpdatedAt
			break
		}
	}

	for _, a := range appointments {
		if a.DoctorID != d.ID || a.Date != dayKey {
			continue
		}

		summary.Visits = append(summary.Visits, toAppointmentResponse(a))

		if a.Status == models.APPT_NEEDS_CONFIRM || a.Status == models.APPT_NEEDS_FOLLOWUP {
			summary.NeedsConfirmation++
		}
	}

	// HH:mm values are zero-padded, lexicographic order is chronological.
	sort.Slice(summary.Visits, func(i, j int) bool {
		return summary.Visits[i].Time < summary.Visits[j].Time
	})

	summary.TotalVisits = len(summary.Visits)

	return summary
}

func parseConfirmationStatus(s string) (models.ConfirmationStatus, bool) {
	switch models.ConfirmationStatus(s) {
	case models.DAY_PENDING, models.DAY_CONFIRMED, models.DAY_NEEDS_CHANGES:
		return models.ConfirmationStatus(s), true
	}

	return "", false
}
