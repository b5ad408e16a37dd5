package api

import (
	"encoding/json"
	"time"
)

type PatientInfo struct {
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Notes    *string `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	EndTime     string      `json:"end_time"`
	DurationMin int         `json:"duration_min"`
	DoctorID    string      `json:"doctor_id"`
	AssistantID *string     `json:"assistant_id,omitempty"`
	Room        string      `json:"room"`
	Procedure   string      `json:"procedure"`
	Status      string      `json:"status"`
	Patient     PatientInfo `json:"patient"`
	Note        *string     `json:"note,omitempty"`
}

type AppointmentStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentNoteRequest struct {
	Note string `json:"note"`
}

type ConfirmDayRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type DoctorDaySummary struct {
	DoctorID          string                `json:"doctor_id"`
	DoctorName        string                `json:"doctor_name"`
	Specialty         string                `json:"specialty"`
	Status            string                `json:"status"`
	Note              *string               `json:"note,omitempty"`
	UpdatedAt         *time.Time            `json:"updated_at,omitempty"`
	Visits            []AppointmentResponse `json:"visits"`
	TotalVisits       int                   `json:"total_visits"`
	NeedsConfirmation int                   `json:"needs_confirmation"`
}

type ConfirmationTotals struct {
	DoctorsConfirmed    int `json:"doctors_confirmed"`
	DoctorsPending      int `json:"doctors_pending"`
	DoctorsNeedsChanges int `json:"doctors_needs_changes"`
	TotalVisits         int `json:"total_visits"`
}

type ConfirmationDashboardResponse struct {
	Date    string             `json:"date"`
	Doctors []DoctorDaySummary `json:"doctors"`
	Totals  ConfirmationTotals `json:"totals"`
}

type CallTaskResponse struct {
	ID            string     `json:"id"`
	AppointmentID string     `json:"appointment_id"`
	DoctorID      string     `json:"doctor_id"`
	PatientName   string     `json:"patient_name"`
	PatientPhone  string     `json:"patient_phone"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	Attempts      int        `json:"attempts"`
	LastCallAt    *time.Time `json:"last_call_at,omitempty"`
	Note          *string    `json:"note,omitempty"`
	Script        string     `json:"script"`
	Actions       []string   `json:"actions"`
}

type CallTotals struct {
	Total      int `json:"total"`
	Confirmed  int `json:"confirmed"`
	Waiting    int `json:"waiting"`
	Escalation int `json:"escalation"`
}

type CallBoardResponse struct {
	Date   string             `json:"date"`
	Tasks  []CallTaskResponse `json:"tasks"`
	Totals CallTotals         `json:"totals"`
}

type FinishCallRequest struct {
	Outcome string `json:"outcome"`
	Note    string `json:"note,omitempty"`
}

type RegistrationCreateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type RegistrationDecideRequest struct {
	Approved bool `json:"approved"`
}

type RegistrationResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

type SettingsPayload struct {
	Settings json.RawMessage `json:"settings"`
}
