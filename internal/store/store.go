package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"clinic-portal/internal/models"
	"clinic-portal/internal/timeutil"
)

// Snapshot is the immutable initial state handed over by a seed source.
// The store clones it into its own working collections on construction.
type Snapshot struct {
	Doctors       []models.Doctor
	Assistants    []models.Assistant
	Appointments  []models.Appointment
	Confirmations []models.DoctorConfirmation
	CallTasks     []models.CallTask
	Registrations []models.RegistrationRequest
}

// Store is the single owner of the schedule collections. All mutations go
// through its methods; mutations with an unknown id are silent no-ops, never
// errors. Handlers run concurrently, hence the mutex, but there is exactly one
// logical writer per deployment.
type Store struct {
	mu sync.Mutex

	doctors       []models.Doctor
	assistants    []models.Assistant
	appointments  []models.Appointment
	confirmations []models.DoctorConfirmation
	tasks         []models.CallTask
	registrations []models.RegistrationRequest

	version uint64
	now     func() time.Time
}

func New(snap Snapshot) *Store {
	s := &Store{now: time.Now}

	s.doctors = append(s.doctors, snap.Doctors...)
	s.assistants = append(s.assistants, snap.Assistants...)
	s.appointments = append(s.appointments, snap.Appointments...)
	s.confirmations = append(s.confirmations, snap.Confirmations...)
	s.tasks = append(s.tasks, snap.CallTasks...)
	s.registrations = append(s.registrations, snap.Registrations...)

	return s
}

// Version increments on every effective mutation. Callers may use it to key
// memoized view-model output; correctness never depends on that caching.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.version
}

func (s *Store) Doctors() []models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Doctor(nil), s.doctors...)
}

func (s *Store) Assistants() []models.Assistant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Assistant(nil), s.assistants...)
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Appointment(nil), s.appointments...)
}

func (s *Store) Confirmations() []models.DoctorConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.DoctorConfirmation(nil), s.confirmations...)
}

func (s *Store) CallTasks() []models.CallTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CallTask(nil), s.tasks...)
}

func (s *Store) Registrations() []models.RegistrationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.RegistrationRequest(nil), s.registrations...)
}

func (s *Store) Appointment(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.apptIndex(id); i >= 0 {
		return s.appointments[i], true
	}

	return models.Appointment{}, false
}

func (s *Store) CallTask(id string) (models.CallTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.taskIndex(id); i >= 0 {
		return s.tasks[i], true
	}

	return models.CallTask{}, false
}

// UpdateAppointmentStatus replaces the status of the matching appointment.
// Unknown id is a no-op. No other entity is touched.
func (s *Store) UpdateAppointmentStatus(id string, status models.AppointmentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.apptIndex(id)
	if i < 0 {
		return
	}

	s.appointments[i].Status = status
	s.version++
}

// UpdateAppointmentNote replaces the free-text note of the matching
// appointment. A blank note clears it. Unknown id is a no-op.
func (s *Store) UpdateAppointmentNote(id string, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.apptIndex(id)
	if i < 0 {
		return
	}

	s.appointments[i].Note = trimmedNote(note)
	s.version++
}

// ConfirmDoctorDay upserts the confirmation record for (doctorID, date). The
// date is normalized to the canonical day-key first so one logical day can
// never produce two records; a malformed date fails fast instead.
func (s *Store) ConfirmDoctorDay(doctorID, date string, status models.ConfirmationStatus, note string) error {
	const op = "store.ConfirmDoctorDay"

	dayKey, err := timeutil.NormalizeDateKey(date)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now()

	for i := range s.confirmations {
		if s.confirmations[i].DoctorID == doctorID && s.confirmations[i].Date == dayKey {
			s.confirmations[i].Status = status
			s.confirmations[i].Note = trimmedNote(note)
			s.confirmations[i].UpdatedAt = &stamp
			s.version++
			return nil
		}
	}

	s.confirmations = append(s.confirmations, models.DoctorConfirmation{
		DoctorID:  doctorID,
		Date:      dayKey,
		Status:    status,
		Note:      trimmedNote(note),
		UpdatedAt: &stamp,
	})
	s.version++

	return nil
}

// StartCall moves the task into calling. The attempt counter bumps only on
// the transition into calling; re-entering while already calling just
// refreshes the timestamp. Unknown id is a no-op.
func (s *Store) StartCall(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return
	}

	stamp := s.now()

	if s.tasks[i].Status != models.CALL_CALLING {
		s.tasks[i].Attempts++
	}
	s.tasks[i].Status = models.CALL_CALLING
	s.tasks[i].LastCallAt = &stamp
	s.version++
}

// FinishCall records the outcome of a call and derives the linked
// appointment's status from it: confirmed stays confirmed, everything else
// needs a follow-up. A non-blank note overwrites the appointment note; a
// blank one leaves it untouched. Unknown task id is a no-op.
func (s *Store) FinishCall(taskID string, outcome models.CallStatus, note string) error {
	const op = "store.FinishCall"

	switch outcome {
	case models.CALL_CONFIRMED, models.CALL_RESCHEDULE, models.CALL_NO_ANSWER:
	default:
		return fmt.Errorf("%s: invalid outcome %q", op, outcome)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return nil
	}

	stamp := s.now()
	trimmed := trimmedNote(note)

	s.tasks[i].Status = outcome
	s.tasks[i].Note = trimmed
	s.tasks[i].LastCallAt = &stamp

	if j := s.apptIndex(s.tasks[i].AppointmentID); j >= 0 {
		if outcome == models.CALL_CONFIRMED {
			s.appointments[j].Status = models.APPT_CONFIRMED
		} else {
			s.appointments[j].Status = models.APPT_NEEDS_FOLLOWUP
		}
		if trimmed != nil {
			s.appointments[j].Note = trimmed
		}
	}

	s.version++

	return nil
}

// AddRegistration appends a new staff registration request.
func (s *Store) AddRegistration(req models.RegistrationRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registrations = append(s.registrations, req)
	s.version++
}

// DecideRegistration stamps an approve/reject decision on a pending request
// and returns the updated record. Unknown id reports found == false.
func (s *Store) DecideRegistration(id string, approved bool) (models.RegistrationRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.registrations {
		if s.registrations[i].ID != id {
			continue
		}

		stamp := s.now()

		if approved {
			s.registrations[i].Status = models.REG_APPROVED
		} else {
			s.registrations[i].Status = models.REG_REJECTED
		}
		s.registrations[i].DecidedAt = &stamp
		s.version++

		return s.registrations[i], true
	}

	return models.RegistrationRequest{}, false
}

func (s *Store) apptIndex(id string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}

	return -1
}

// trimmedNote applies the shared note policy: trim whitespace, store blank
// notes as absent rather than as empty strings.
func trimmedNote(note string) *string {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
