package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinic-portal/internal/models"
	"clinic-portal/internal/store"
	"clinic-portal/internal/timeutil"
)

// Source supplies the immutable initial snapshot the store clones at start.
type Source interface {
	Snapshot(ctx context.Context) (store.Snapshot, error)
}

// Static is the built-in mock dataset: tomorrow's schedule for the demo
// clinic, a pending confirmation per doctor, and the matching call queue.
type Static struct{}

func (Static) Snapshot(_ context.Context) (store.Snapshot, error) {
	return Build(time.Now()), nil
}

func Build(now time.Time) store.Snapshot {
	tomorrow := timeutil.FormatDateKey(timeutil.AddDays(now, 1))

	doctors := []models.Doctor{
		{ID: "doctor-lebedeva", FullName: "Лебедева Анна Сергеевна", Specialty: "Терапевт", Color: "#4f7cac"},
		{ID: "doctor-denisenko", FullName: "Денисенко Игорь Павлович", Specialty: "Ортопед", Color: "#b0573f"},
		{ID: "doctor-savina", FullName: "Савина Ольга Викторовна", Specialty: "Хирург", Color: "#5f874f"},
	}

	assistants := []models.Assistant{
		{ID: "assistant-orlova", FullName: "Орлова Мария Дмитриевна"},
		{ID: "assistant-gusev", FullName: "Гусев Никита Андреевич"},
	}

	orlova := "assistant-orlova"
	allergyNote := "Аллергия на лидокаин"

	appointments := []models.Appointment{
		{
			ID: "appt-1001", Date: tomorrow, Time: "09:00", DurationMin: 60,
			DoctorID: "doctor-denisenko", AssistantID: &orlova, Room: "Кабинет 2",
			Procedure: "Повторная консультация", Status: models.APPT_NEEDS_CONFIRM,
			Patient: models.Patient{FullName: "Киселёв Артём Олегович", Phone: "+7 911 203-44-18"},
		},
		{
			ID: "appt-1002", Date: tomorrow, Time: "10:30", DurationMin: 45,
			DoctorID: "doctor-denisenko", Room: "Кабинет 2",
			Procedure: "Установка коронки", Status: models.APPT_SCHEDULED,
			Patient: models.Patient{FullName: "Мельникова Дарья Ивановна", Phone: "+7 921 554-09-72"},
		},
		{
			ID: "appt-1003", Date: tomorrow, Time: "09:30", DurationMin: 30,
			DoctorID: "doctor-lebedeva", Room: "Кабинет 1",
			Procedure: "Профилактический осмотр", Status: models.APPT_NEEDS_CONFIRM,
			Patient: models.Patient{FullName: "Фролов Денис Максимович", Phone: "+7 903 118-27-65", Notes: &allergyNote},
		},
		{
			ID: "appt-1004", Date: tomorrow, Time: "12:00", DurationMin: 90,
			DoctorID: "doctor-lebedeva", AssistantID: &orlova, Room: "Кабинет 1",
			Procedure: "Лечение кариеса", Status: models.APPT_CONFIRMED,
			Patient: models.Patient{FullName: "Зайцева Полина Романовна", Phone: "+7 931 640-88-30"},
		},
		{
			ID: "appt-1005", Date: tomorrow, Time: "14:00", DurationMin: 120,
			DoctorID: "doctor-savina", Room: "Операционная",
			Procedure: "Удаление восьмёрки", Status: models.APPT_NEEDS_FOLLOWUP,
			Patient: models.Patient{FullName: "Богданов Семён Ильич", Phone: "+7 981 772-15-04"},
		},
	}

	confirmations := make([]models.DoctorConfirmation, 0, len(doctors))
	for _, d := range doctors {
		confirmations = append(confirmations, models.DoctorConfirmation{
			DoctorID: d.ID,
			Date:     tomorrow,
			Status:   models.DAY_PENDING,
		})
	}

	tasks := []models.CallTask{
		{
			ID: "call-2001", AppointmentID: "appt-1001", DoctorID: "doctor-denisenko",
			PatientName: "Киселёв Артём Олегович", PatientPhone: "+7 911 203-44-18",
			Date: tomorrow, Time: "09:00", Status: models.CALL_PENDING,
		},
		{
			ID: "call-2002", AppointmentID: "appt-1003", DoctorID: "doctor-lebedeva",
			PatientName: "Фролов Денис Максимович", PatientPhone: "+7 903 118-27-65",
			Date: tomorrow, Time: "09:30", Status: models.CALL_PENDING,
		},
		{
			ID: "call-2003", AppointmentID: "appt-1005", DoctorID: "doctor-savina",
			PatientName: "Богданов Семён Ильич", PatientPhone: "+7 981 772-15-04",
			Date: tomorrow, Time: "14:00", Status: models.CALL_NO_ANSWER, Attempts: 1,
		},
	}

	registrations := []models.RegistrationRequest{
		{
			ID:        uuid.NewString(),
			FullName:  "Крылова Евгения Станиславовна",
			Email:     "e.krylova@example.com",
			Role:      "administrator",
			Status:    models.REG_PENDING,
			CreatedAt: now,
		},
	}

	return store.Snapshot{
		Doctors:       doctors,
		Assistants:    assistants,
		Appointments:  appointments,
		Confirmations: confirmations,
		CallTasks:     tasks,
		Registrations: registrations,
	}
}
