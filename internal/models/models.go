package models

import "time"

type AppointmentStatus string

const (
	APPT_SCHEDULED      AppointmentStatus = "scheduled"
	APPT_NEEDS_CONFIRM  AppointmentStatus = "needs-confirmation"
	APPT_CONFIRMED      AppointmentStatus = "confirmed"
	APPT_CHECKED_IN     AppointmentStatus = "checked-in"
	APPT_COMPLETED      AppointmentStatus = "completed"
	APPT_CANCELLED      AppointmentStatus = "cancelled"
	APPT_NEEDS_FOLLOWUP AppointmentStatus = "needs-follow-up"
)

type ConfirmationStatus string

const (
	DAY_PENDING       ConfirmationStatus = "pending"
	DAY_CONFIRMED     ConfirmationStatus = "confirmed"
	DAY_NEEDS_CHANGES ConfirmationStatus = "needs-changes"
)

type CallStatus string

const (
	CALL_PENDING    CallStatus = "pending"
	CALL_CALLING    CallStatus = "calling"
	CALL_CONFIRMED  CallStatus = "confirmed"
	CALL_RESCHEDULE CallStatus = "reschedule"
	CALL_NO_ANSWER  CallStatus = "no-answer"
)

type RegistrationStatus string

const (
	REG_PENDING  RegistrationStatus = "pending"
	REG_APPROVED RegistrationStatus = "approved"
	REG_REJECTED RegistrationStatus = "rejected"
)

type Doctor struct {
	ID        string
	FullName  string
	Specialty string
	Color     string
}

type Assistant struct {
	ID       string
	FullName string
}

type Patient struct {
	FullName string
	Phone    string
	Notes    *string
}

type Appointment struct {
	ID          string
	Date        string // day-key, YYYY-MM-DD
	Time        string // HH:mm, zero-padded
	DurationMin int
	DoctorID    string
	AssistantID *string
	Room        string
	Procedure   string
	Status      AppointmentStatus
	Patient     Patient
	Note        *string
}

// DoctorConfirmation is keyed by (DoctorID, Date); the store upserts on that
// composite key and never holds two records for the same doctor and day.
type DoctorConfirmation struct {
	DoctorID  string
	Date      string // day-key
	Status    ConfirmationStatus
	Note      *string
	UpdatedAt *time.Time
}

type CallTask struct {
	ID            string
	AppointmentID string
	DoctorID      string
	PatientName   string
	PatientPhone  string
	Date          string // day-key
	Time          string // HH:mm
	Status        CallStatus
	Attempts      int
	LastCallAt    *time.Time
	Note          *string
}

type RegistrationRequest struct {
	ID        string
	FullName  string
	Email     string
	Role      string
	Status    RegistrationStatus
	CreatedAt time.Time
	DecidedAt *time.Time
}
