package store

import (
	"testing"

	"clinic-portal/internal/models"
)

func note(s string) *string { return &s }

func testSnapshot() Snapshot {
	return Snapshot{
		Doctors: []models.Doctor{
			{ID: "doctor-lebedeva", FullName: "Лебедева Анна Сергеевна"},
			{ID: "doctor-denisenko", FullName: "Денисенко Игорь Павлович"},
		},
		Appointments: []models.Appointment{
			{
				ID: "appt-1", Date: "2026-09-01", Time: "09:00", DurationMin: 60,
				DoctorID: "doctor-denisenko", Status: models.APPT_NEEDS_CONFIRM,
				Note: note("старая заметка"),
			},
			{
				ID: "appt-2", Date: "2026-09-01", Time: "10:30", DurationMin: 45,
				DoctorID: "doctor-denisenko", Status: models.APPT_SCHEDULED,
			},
		},
		Confirmations: []models.DoctorConfirmation{
			{DoctorID: "doctor-lebedeva", Date: "2026-09-01", Status: models.DAY_PENDING},
		},
		CallTasks: []models.CallTask{
			{
				ID: "call-1", AppointmentID: "appt-1", DoctorID: "doctor-denisenko",
				Date: "2026-09-01", Time: "09:00", Status: models.CALL_PENDING,
			},
			{
				ID: "call-orphan", AppointmentID: "appt-missing", DoctorID: "doctor-lebedeva",
				Date: "2026-09-01", Time: "11:00", Status: models.CALL_PENDING,
			},
		},
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	s := New(testSnapshot())

	s.UpdateAppointmentStatus("appt-2", models.APPT_CHECKED_IN)

	got, ok := s.Appointment("appt-2")
	if !ok {
		t.Fatal("appointment disappeared")
	}
	if got.Status != models.APPT_CHECKED_IN {
		t.Fatalf("status: got %q, want %q", got.Status, models.APPT_CHECKED_IN)
	}
}

func TestUpdateAppointmentStatus_unknownIDIsNoop(t *testing.T) {
	s := New(testSnapshot())
	before := s.Appointments()

	s.UpdateAppointmentStatus("appt-nope", models.APPT_CANCELLED)

	after := s.Appointments()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("appointment %s changed on unknown-id mutation", before[i].ID)
		}
	}
}

func TestUpdateAppointmentStatus_idempotent(t *testing.T) {
	s := New(testSnapshot())

	s.UpdateAppointmentStatus("appt-1", models.APPT_CONFIRMED)
	first, _ := s.Appointment("appt-1")

	s.UpdateAppointmentStatus("appt-1", models.APPT_CONFIRMED)
	second, _ := s.Appointment("appt-1")

	if first != second {
		t.Fatalf("repeated identical update changed the entity: %+v vs %+v", first, second)
	}
}

func TestUpdateAppointmentNote(t *testing.T) {
	s := New(testSnapshot())

	s.UpdateAppointmentNote("appt-2", "  перезвонить до 18:00  ")

	got, _ := s.Appointment("appt-2")
	if got.Note == nil || *got.Note != "перезвонить до 18:00" {
		t.Fatalf("note: got %v, want trimmed text", got.Note)
	}

	s.UpdateAppointmentNote("appt-2", "   ")
	got, _ = s.Appointment("appt-2")
	if got.Note != nil {
		t.Fatalf("blank note must be stored as absent, got %q", *got.Note)
	}
}

func TestConfirmDoctorDay_upsertsSingleRecord(t *testing.T) {
	s := New(testSnapshot())

	if err := s.ConfirmDoctorDay("doctor-lebedeva", "2026-09-01", models.DAY_CONFIRMED, ""); err != nil {
		t.Fatalf("ConfirmDoctorDay: %v", err)
	}
	if err := s.ConfirmDoctorDay("doctor-lebedeva", "2026-09-01", models.DAY_NEEDS_CHANGES, "x"); err != nil {
		t.Fatalf("ConfirmDoctorDay: %v", err)
	}

	var records []models.DoctorConfirmation
	for _, c := range s.Confirmations() {
		if c.DoctorID == "doctor-lebedeva" && c.Date == "2026-09-01" {
			records = append(records, c)
		}
	}

	if len(records) != 1 {
		t.Fatalf("want exactly one record per (doctor, date), got %d", len(records))
	}
	if records[0].Status != models.DAY_NEEDS_CHANGES {
		t.Fatalf("status: got %q, want needs-changes", records[0].Status)
	}
	if records[0].Note == nil || *records[0].Note != "x" {
		t.Fatalf("note: got %v, want x", records[0].Note)
	}
	if records[0].UpdatedAt == nil {
		t.Fatal("UpdatedAt must be stamped")
	}
}

func TestConfirmDoctorDay_appendsForNewKey(t *testing.T) {
	s := New(testSnapshot())

	if err := s.ConfirmDoctorDay("doctor-denisenko", "2026-09-01", models.DAY_CONFIRMED, "  всё в силе  "); err != nil {
		t.Fatalf("ConfirmDoctorDay: %v", err)
	}

	var found *models.DoctorConfirmation
	for _, c := range s.Confirmations() {
		if c.DoctorID == "doctor-denisenko" && c.Date == "2026-09-01" {
			c := c
			found = &c
		}
	}

	if found == nil {
		t.Fatal("record was not appended")
	}
	if found.Note == nil || *found.Note != "всё в силе" {
		t.Fatalf("note must be trimmed: got %v", found.Note)
	}
}

func TestConfirmDoctorDay_blankNoteStoredAbsent(t *testing.T) {
	s := New(testSnapshot())

	if err := s.ConfirmDoctorDay("doctor-lebedeva", "2026-09-01", models.DAY_CONFIRMED, "   "); err != nil {
		t.Fatalf("ConfirmDoctorDay: %v", err)
	}

	for _, c := range s.Confirmations() {
		if c.DoctorID == "doctor-lebedeva" && c.Date == "2026-09-01" {
			if c.Note != nil {
				t.Fatalf("blank note must be absent, got %q", *c.Note)
			}
			return
		}
	}
	t.Fatal("record not found")
}

func TestConfirmDoctorDay_malformedDate(t *testing.T) {
	s := New(testSnapshot())
	before := len(s.Confirmations())

	if err := s.ConfirmDoctorDay("doctor-lebedeva", "01.09.2026", models.DAY_CONFIRMED, ""); err == nil {
		t.Fatal("expected error for malformed date")
	}

	if got := len(s.Confirmations()); got != before {
		t.Fatalf("malformed date must not create records: %d -> %d", before, got)
	}
}

func TestStartCall_attemptsCountOncePerEntry(t *testing.T) {
	s := New(testSnapshot())

	s.StartCall("call-1")
	s.StartCall("call-1")
	s.StartCall("call-1")

	task, _ := s.CallTask("call-1")
	if task.Status != models.CALL_CALLING {
		t.Fatalf("status: got %q, want calling", task.Status)
	}
	if task.Attempts != 1 {
		t.Fatalf("attempts: got %d, want 1", task.Attempts)
	}
	if task.LastCallAt == nil {
		t.Fatal("LastCallAt must be stamped")
	}

	// Leaving calling and re-entering counts again.
	if err := s.FinishCall("call-1", models.CALL_NO_ANSWER, ""); err != nil {
		t.Fatalf("FinishCall: %v", err)
	}
	s.StartCall("call-1")

	task, _ = s.CallTask("call-1")
	if task.Attempts != 2 {
		t.Fatalf("attempts after re-entry: got %d, want 2", task.Attempts)
	}
}

func TestStartCall_unknownIDIsNoop(t *testing.T) {
	s := New(testSnapshot())
	version := s.Version()

	s.StartCall("call-nope")

	if s.Version() != version {
		t.Fatal("unknown-id StartCall must not mutate anything")
	}
}

func TestFinishCall_confirmedPropagates(t *testing.T) {
	s := New(testSnapshot())

	if err := s.FinishCall("call-1", models.CALL_CONFIRMED, ""); err != nil {
		t.Fatalf("FinishCall: %v", err)
	}

	task, _ := s.CallTask("call-1")
	if task.Status != models.CALL_CONFIRMED {
		t.Fatalf("task status: got %q", task.Status)
	}
	if task.LastCallAt == nil {
		t.Fatal("LastCallAt must be stamped")
	}

	appt, _ := s.Appointment("appt-1")
	if appt.Status != models.APPT_CONFIRMED {
		t.Fatalf("appointment status: got %q, want confirmed", appt.Status)
	}
	if appt.Note == nil || *appt.Note != "старая заметка" {
		t.Fatalf("blank call note must preserve appointment note, got %v", appt.Note)
	}
}

func TestFinishCall_escalationOutcomesNeedFollowUp(t *testing.T) {
	for _, outcome := range []models.CallStatus{models.CALL_NO_ANSWER, models.CALL_RESCHEDULE} {
		s := New(testSnapshot())

		if err := s.FinishCall("call-1", outcome, "пациент просил перенести"); err != nil {
			t.Fatalf("FinishCall(%s): %v", outcome, err)
		}

		appt, _ := s.Appointment("appt-1")
		if appt.Status != models.APPT_NEEDS_FOLLOWUP {
			t.Fatalf("outcome %s: appointment status got %q, want needs-follow-up", outcome, appt.Status)
		}
		if appt.Note == nil || *appt.Note != "пациент просил перенести" {
			t.Fatalf("outcome %s: call note must overwrite appointment note, got %v", outcome, appt.Note)
		}
	}
}

func TestFinishCall_invalidOutcome(t *testing.T) {
	s := New(testSnapshot())

	if err := s.FinishCall("call-1", models.CALL_PENDING, ""); err == nil {
		t.Fatal("expected error for invalid outcome")
	}

	task, _ := s.CallTask("call-1")
	if task.Status != models.CALL_PENDING {
		t.Fatalf("task must be unchanged, got %q", task.Status)
	}
}

func TestFinishCall_orphanTaskLeavesAppointmentsAlone(t *testing.T) {
	s := New(testSnapshot())
	before := s.Appointments()

	if err := s.FinishCall("call-orphan", models.CALL_CONFIRMED, "заметка"); err != nil {
		t.Fatalf("FinishCall: %v", err)
	}

	after := s.Appointments()
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("appointment %s changed by orphan task", before[i].ID)
		}
	}

	task, _ := s.CallTask("call-orphan")
	if task.Status != models.CALL_CONFIRMED {
		t.Fatalf("orphan task itself must still update, got %q", task.Status)
	}
}

func TestFinishCall_unknownIDIsNoop(t *testing.T) {
	s := New(testSnapshot())
	version := s.Version()

	if err := s.FinishCall("call-nope", models.CALL_CONFIRMED, ""); err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if s.Version() != version {
		t.Fatal("unknown-id FinishCall must not mutate anything")
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	s := New(testSnapshot())

	v0 := s.Version()
	s.UpdateAppointmentStatus("appt-1", models.APPT_CONFIRMED)
	if s.Version() == v0 {
		t.Fatal("version must change after an effective mutation")
	}
}

func TestDecideRegistration(t *testing.T) {
	snap := testSnapshot()
	snap.Registrations = []models.RegistrationRequest{
		{ID: "reg-1", FullName: "Крылова Евгения", Email: "k@example.com", Status: models.REG_PENDING},
	}
	s := New(snap)

	record, ok := s.DecideRegistration("reg-1", true)
	if !ok {
		t.Fatal("registration not found")
	}
	if record.Status != models.REG_APPROVED {
		t.Fatalf("status: got %q, want approved", record.Status)
	}
	if record.DecidedAt == nil {
		t.Fatal("DecidedAt must be stamped")
	}

	if _, ok := s.DecideRegistration("reg-nope", false); ok {
		t.Fatal("unknown id must report not found")
	}
}
