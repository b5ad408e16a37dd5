package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"clinic-portal/internal/models"
	"clinic-portal/internal/store"
)

// Storage loads the initial schedule snapshot from Postgres. It is strictly
// read-only: the portal never writes mutations back, the database is only an
// alternative origin for the seed data.
type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func (s *Storage) Snapshot(ctx context.Context) (store.Snapshot, error) {
	const op = "storage.postgres.Snapshot"

	var snap store.Snapshot
	var err error

	if snap.Doctors, err = s.doctors(ctx); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	if snap.Assistants, err = s.assistants(ctx); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	if snap.Appointments, err = s.appointments(ctx); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	if snap.Confirmations, err = s.confirmations(ctx); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	if snap.CallTasks, err = s.callTasks(ctx); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	if snap.Registrations, err = s.registrations(ctx); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	return snap, nil
}

func (s *Storage) doctors(ctx context.Context) ([]models.Doctor, error) {
	const op = "storage.postgres.doctors"

	rows, err := s.db.QueryContext(ctx, `SELECT doctor_id, full_name, specialty, color FROM doctors`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.Doctor
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.ID, &d.FullName, &d.Specialty, &d.Color); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (s *Storage) assistants(ctx context.Context) ([]models.Assistant, error) {
	const op = "storage.postgres.assistants"

	rows, err := s.db.QueryContext(ctx, `SELECT assistant_id, full_name FROM assistants`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.Assistant
	for rows.Next() {
		var a models.Assistant
		if err := rows.Scan(&a.ID, &a.FullName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Storage) appointments(ctx context.Context) ([]models.Appointment, error) {
	const op = "storage.postgres.appointments"

	rows, err := s.db.QueryContext(ctx, `
		SELECT appointment_id, visit_date, visit_time, duration_min, doctor_id,
		       assistant_id, room, procedure_name, status, patient_name, patient_phone,
		       patient_notes, note
		FROM appointments`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.Appointment
	for rows.Next() {
		var a models.Appointment
		var visitDate time.Time
		var assistantID, patientNotes, note sql.NullString

		err := rows.Scan(&a.ID, &visitDate, &a.Time, &a.DurationMin, &a.DoctorID,
			&assistantID, &a.Room, &a.Procedure, &a.Status, &a.Patient.FullName,
			&a.Patient.Phone, &patientNotes, &note)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		a.Date = visitDate.Format("2006-01-02")
		a.AssistantID = nullable(assistantID)
		a.Patient.Notes = nullable(patientNotes)
		a.Note = nullable(note)
		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Storage) confirmations(ctx context.Context) ([]models.DoctorConfirmation, error) {
	const op = "storage.postgres.confirmations"

	rows, err := s.db.QueryContext(ctx, `
		SELECT doctor_id, confirm_date, status, note, updated_at
		FROM doctor_confirmations`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.DoctorConfirmation
	for rows.Next() {
		var c models.DoctorConfirmation
		var confirmDate time.Time
		var note sql.NullString
		var updatedAt sql.NullTime

		if err := rows.Scan(&c.DoctorID, &confirmDate, &c.Status, &note, &updatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		c.Date = confirmDate.Format("2006-01-02")
		c.Note = nullable(note)
		if updatedAt.Valid {
			t := updatedAt.Time
			c.UpdatedAt = &t
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (s *Storage) callTasks(ctx context.Context) ([]models.CallTask, error) {
	const op = "storage.postgres.callTasks"

	rows, err := s.db.QueryContext(ctx, `
		SELECT task_id, appointment_id, doctor_id, patient_name, patient_phone,
		       call_date, call_time, status, attempts, last_call_at, note
		FROM call_tasks`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.CallTask
	for rows.Next() {
		var t models.CallTask
		var callDate time.Time
		var note sql.NullString
		var lastCallAt sql.NullTime

		err := rows.Scan(&t.ID, &t.AppointmentID, &t.DoctorID, &t.PatientName,
			&t.PatientPhone, &callDate, &t.Time, &t.Status, &t.Attempts,
			&lastCallAt, &note)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		t.Date = callDate.Format("2006-01-02")
		t.Note = nullable(note)
		if lastCallAt.Valid {
			at := lastCallAt.Time
			t.LastCallAt = &at
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

func (s *Storage) registrations(ctx context.Context) ([]models.RegistrationRequest, error) {
	const op = "storage.postgres.registrations"

	rows, err := s.db.QueryContext(ctx, `
		SELECT request_id, full_name, email, role, status, created_at, decided_at
		FROM registration_requests`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.RegistrationRequest
	for rows.Next() {
		var r models.RegistrationRequest
		var decidedAt sql.NullTime

		err := rows.Scan(&r.ID, &r.FullName, &r.Email, &r.Role, &r.Status,
			&r.CreatedAt, &decidedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if decidedAt.Valid {
			t := decidedAt.Time
			r.DecidedAt = &t
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

func nullable(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}

	return &v.String
}
