package service

import (
	"fmt"
	"sort"

	"clinic-portal/api"
	"clinic-portal/internal/kv"
	"clinic-portal/internal/models"
	"clinic-portal/internal/notify"
	"clinic-portal/internal/timeutil"
	"clinic-portal/pkg/response"
)

type Service struct {
	store    ScheduleStore
	settings kv.Store
	mailer   notify.Mailer
}

func NewService(store ScheduleStore, settings kv.Store, mailer notify.Mailer) *Service {
	return &Service{store: store, settings: settings, mailer: mailer}
}

// ScheduleStore is the mutation and read surface of the schedule store. All
// mutations are synchronous in-memory transformations; unknown ids are silent
// no-ops at this level, the service decides what to surface.
type ScheduleStore interface {
	Version() uint64
	Doctors() []models.Doctor
	Assistants() []models.Assistant
	Appointments() []models.Appointment
	Confirmations() []models.DoctorConfirmation
	CallTasks() []models.CallTask
	Registrations() []models.RegistrationRequest
	Appointment(id string) (models.Appointment, bool)
	CallTask(id string) (models.CallTask, bool)

	UpdateAppointmentStatus(id string, status models.AppointmentStatus)
	UpdateAppointmentNote(id, note string)
	ConfirmDoctorDay(doctorID, date string, status models.ConfirmationStatus, note string) error
	StartCall(taskID string)
	FinishCall(taskID string, outcome models.CallStatus, note string) error
	AddRegistration(req models.RegistrationRequest)
	DecideRegistration(id string, approved bool) (models.RegistrationRequest, bool)
}

// Schedule returns the appointments of one day, sorted by time ascending.
func (s *Service) Schedule(dayKey string) ([]api.AppointmentResponse, error) {
	const op = "service.Schedule"

	dayKey, err := timeutil.NormalizeDateKey(dayKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadDate)
	}

	var out []api.AppointmentResponse
	for _, a := range s.store.Appointments() {
		if a.Date == dayKey {
			out = append(out, toAppointmentResponse(a))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })

	return out, nil
}

func (s *Service) UpdateAppointmentStatus(id, status string) (*api.AppointmentResponse, error) {
	const op = "service.UpdateAppointmentStatus"

	parsed, ok := parseAppointmentStatus(status)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadStatus)
	}

	if _, ok := s.store.Appointment(id); !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	s.store.UpdateAppointmentStatus(id, parsed)

	updated, _ := s.store.Appointment(id)
	resp := toAppointmentResponse(updated)

	return &resp, nil
}

func (s *Service) UpdateAppointmentNote(id, note string) (*api.AppointmentResponse, error) {
	const op = "service.UpdateAppointmentNote"

	if _, ok := s.store.Appointment(id); !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	s.store.UpdateAppointmentNote(id, note)

	updated, _ := s.store.Appointment(id)
	resp := toAppointmentResponse(updated)

	return &resp, nil
}

func (s *Service) doctorByID(id string) (models.Doctor, bool) {
	for _, d := range s.store.Doctors() {
		if d.ID == id {
			return d, true
		}
	}

	return models.Doctor{}, false
}

func toAppointmentResponse(a models.Appointment) api.AppointmentResponse {
	end, err := timeutil.AddMinutesToTime(a.Time, a.DurationMin)
	if err != nil {
		end = a.Time
	}

	return api.AppointmentResponse{
		ID:          a.ID,
		Date:        a.Date,
		Time:        a.Time,
		EndTime:     end,
		DurationMin: a.DurationMin,
		DoctorID:    a.DoctorID,
		AssistantID: a.AssistantID,
		Room:        a.Room,
		Procedure:   a.Procedure,
		Status:      string(a.Status),
		Patient: api.PatientInfo{
			FullName: a.Patient.FullName,
			Phone:    a.Patient.Phone,
			Notes:    a.Patient.Notes,
		},
		Note: a.Note,
	}
}

func parseAppointmentStatus(s string) (models.AppointmentStatus, bool) {
	switch models.AppointmentStatus(s) {
	case models.APPT_SCHEDULED, models.APPT_NEEDS_CONFIRM, models.APPT_CONFIRMED,
		models.APPT_CHECKED_IN, models.APPT_COMPLETED, models.APPT_CANCELLED,
		models.APPT_NEEDS_FOLLOWUP:
		return models.AppointmentStatus(s), true
	}

	return "", false
}
