package service

import (
	"errors"
	"testing"

	"clinic-portal/api"
	"clinic-portal/internal/models"
	"clinic-portal/pkg/response"
)

func TestConfirmationDashboard(t *testing.T) {
	s, _, _, _ := newTestService()

	dash, err := s.ConfirmationDashboard(testDay)
	if err != nil {
		t.Fatalf("ConfirmationDashboard: %v", err)
	}

	if len(dash.Doctors) != 2 {
		t.Fatalf("doctors: got %d, want 2", len(dash.Doctors))
	}

	var denisenko, lebedeva *api.DoctorDaySummary
	for i := range dash.Doctors {
		switch dash.Doctors[i].DoctorID {
		case "doctor-denisenko":
			denisenko = &dash.Doctors[i]
		case "doctor-lebedeva":
			lebedeva = &dash.Doctors[i]
		}
	}
	if denisenko == nil || lebedeva == nil {
		t.Fatal("both doctors must be present")
	}

	// No record for denisenko on this day: defaults to pending.
	if denisenko.Status != string(models.DAY_PENDING) {
		t.Fatalf("denisenko status: got %q, want pending", denisenko.Status)
	}
	if denisenko.TotalVisits != 2 {
		t.Fatalf("denisenko visits: got %d, want 2", denisenko.TotalVisits)
	}
	if denisenko.NeedsConfirmation != 1 {
		t.Fatalf("denisenko needsConfirmation: got %d, want 1", denisenko.NeedsConfirmation)
	}
	if denisenko.Visits[0].Time != "09:00" || denisenko.Visits[1].Time != "10:30" {
		t.Fatalf("visits not sorted ascending: %q, %q", denisenko.Visits[0].Time, denisenko.Visits[1].Time)
	}

	if lebedeva.Status != string(models.DAY_CONFIRMED) {
		t.Fatalf("lebedeva status: got %q, want confirmed", lebedeva.Status)
	}
	// needs-follow-up counts toward needsConfirmation too.
	if lebedeva.NeedsConfirmation != 1 {
		t.Fatalf("lebedeva needsConfirmation: got %d, want 1", lebedeva.NeedsConfirmation)
	}

	if dash.Totals.DoctorsConfirmed != 1 || dash.Totals.DoctorsPending != 1 || dash.Totals.DoctorsNeedsChanges != 0 {
		t.Fatalf("doctor totals: %+v", dash.Totals)
	}
	if dash.Totals.TotalVisits != 3 {
		t.Fatalf("total visits: got %d, want 3", dash.Totals.TotalVisits)
	}
}

func TestConfirmDoctorDay(t *testing.T) {
	s, st, _, _ := newTestService()

	summary, err := s.ConfirmDoctorDay("doctor-denisenko", &api.ConfirmDayRequest{
		Date:   testDay,
		Status: "confirmed",
	})
	if err != nil {
		t.Fatalf("ConfirmDoctorDay: %v", err)
	}
	if summary.Status != string(models.DAY_CONFIRMED) {
		t.Fatalf("summary status: got %q, want confirmed", summary.Status)
	}

	count := 0
	for _, c := range st.Confirmations() {
		if c.DoctorID == "doctor-denisenko" && c.Date == testDay {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("confirmation records: got %d, want 1", count)
	}
}

func TestConfirmDoctorDay_needsChangesRequiresNote(t *testing.T) {
	s, st, _, _ := newTestService()
	before := st.Version()

	_, err := s.ConfirmDoctorDay("doctor-denisenko", &api.ConfirmDayRequest{
		Date:   testDay,
		Status: "needs-changes",
		Note:   "   ",
	})
	if !errors.Is(err, response.ErrNoteRequired) {
		t.Fatalf("want ErrNoteRequired, got %v", err)
	}

	if st.Version() != before {
		t.Fatal("rejected request must not reach the store")
	}
}

func TestConfirmDoctorDay_needsChangesWithNote(t *testing.T) {
	s, _, _, _ := newTestService()

	summary, err := s.ConfirmDoctorDay("doctor-lebedeva", &api.ConfirmDayRequest{
		Date:   testDay,
		Status: "needs-changes",
		Note:   "перенести первый приём",
	})
	if err != nil {
		t.Fatalf("ConfirmDoctorDay: %v", err)
	}
	if summary.Status != string(models.DAY_NEEDS_CHANGES) {
		t.Fatalf("status: got %q", summary.Status)
	}
	if summary.Note == nil || *summary.Note != "перенести первый приём" {
		t.Fatalf("note: got %v", summary.Note)
	}
	if summary.UpdatedAt == nil {
		t.Fatal("UpdatedAt must be stamped")
	}
}

func TestConfirmDoctorDay_unknownStatus(t *testing.T) {
	s, _, _, _ := newTestService()

	_, err := s.ConfirmDoctorDay("doctor-lebedeva", &api.ConfirmDayRequest{
		Date:   testDay,
		Status: "maybe",
	})
	if !errors.Is(err, response.ErrBadStatus) {
		t.Fatalf("want ErrBadStatus, got %v", err)
	}
}

func TestConfirmDoctorDay_unknownDoctor(t *testing.T) {
	s, _, _, _ := newTestService()

	_, err := s.ConfirmDoctorDay("doctor-nope", &api.ConfirmDayRequest{
		Date:   testDay,
		Status: "confirmed",
	})
	if !errors.Is(err, response.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestConfirmDoctorDay_malformedDate(t *testing.T) {
	s, _, _, _ := newTestService()

	_, err := s.ConfirmDoctorDay("doctor-lebedeva", &api.ConfirmDayRequest{
		Date:   "01.09.2026",
		Status: "confirmed",
	})
	if !errors.Is(err, response.ErrBadDate) {
		t.Fatalf("want ErrBadDate, got %v", err)
	}
}
