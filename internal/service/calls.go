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

// Board order: active calls first, untouched queue next, escalations after,
// finished last.
var callOrder = map[models.CallStatus]int{
	models.CALL_CALLING:    0,
	models.CALL_PENDING:    1,
	models.CALL_NO_ANSWER:  2,
	models.CALL_RESCHEDULE: 3,
	models.CALL_CONFIRMED:  4,
}

// CallBoard builds the outbound-call view for one day: tasks filtered to that
// day, ordered by status priority then time, with totals and per-task scripts.
func (s *Service) CallBoard(dayKey string) (*api.CallBoardResponse, error) {
	const op = "service.CallBoard"

	dayKey, err := timeutil.NormalizeDateKey(dayKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadDate)
	}

	board := &api.CallBoardResponse{Date: dayKey}

	for _, t := range s.store.CallTasks() {
		if t.Date != dayKey {
			continue
		}

		board.Tasks = append(board.Tasks, s.toCallTaskResponse(t))

		board.Totals.Total++
		switch t.Status {
		case models.CALL_CONFIRMED:
			board.Totals.Confirmed++
		case models.CALL_PENDING, models.CALL_CALLING:
			board.Totals.Waiting++
		case models.CALL_RESCHEDULE, models.CALL_NO_ANSWER:
			board.Totals.Escalation++
		}
	}

	sort.SliceStable(board.Tasks, func(i, j int) bool {
		pi := callOrder[models.CallStatus(board.Tasks[i].Status)]
		pj := callOrder[models.CallStatus(board.Tasks[j].Status)]
		if pi != pj {
			return pi < pj
		}
		return board.Tasks[i].Time < board.Tasks[j].Time
	})

	return board, nil
}

// StartCall marks a task as being called. A task already confirmed for the
// session has no actions left, so starting it is a validation failure.
func (s *Service) StartCall(taskID string) (*api.CallTaskResponse, error) {
	const op = "service.StartCall"

	task, ok := s.store.CallTask(taskID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	if task.Status == models.CALL_CONFIRMED {
		return nil, fmt.Errorf("%s: %w", op, response.ErrValidation)
	}

	s.store.StartCall(taskID)

	updated, _ := s.store.CallTask(taskID)
	resp := s.toCallTaskResponse(updated)

	return &resp, nil
}

// FinishCall records a call outcome. A reschedule without a note is rejected
// before the store is touched, so the task keeps its previous state.
func (s *Service) FinishCall(taskID string, req *api.FinishCallRequest) (*api.CallTaskResponse, error) {
	const op = "service.FinishCall"

	outcome, ok := parseCallOutcome(req.Outcome)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrBadStatus)
	}

	if outcome == models.CALL_RESCHEDULE && strings.TrimSpace(req.Note) == "" {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNoteRequired)
	}

	if _, ok := s.store.CallTask(taskID); !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	if err := s.store.FinishCall(taskID, outcome, req.Note); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, _ := s.store.CallTask(taskID)
	resp := s.toCallTaskResponse(updated)

	return &resp, nil
}

func (s *Service) toCallTaskResponse(t models.CallTask) api.CallTaskResponse {
	return api.CallTaskResponse{
		ID:            t.ID,
		AppointmentID: t.AppointmentID,
		DoctorID:      t.DoctorID,
		PatientName:   t.PatientName,
		PatientPhone:  t.PatientPhone,
		Date:          t.Date,
		Time:          t.Time,
		Status:        string(t.Status),
		Attempts:      t.Attempts,
		LastCallAt:    t.LastCallAt,
		Note:          t.Note,
		Script:        s.callScript(t),
		Actions:       callActions(t.Status),
	}
}

func (s *Service) callScript(t models.CallTask) string {
	doctorName := t.DoctorID
	if d, ok := s.doctorByID(t.DoctorID); ok {
		doctorName = d.FullName
	}

	day := t.Date
	if parsed, err := timeutil.ParseDateKey(t.Date); err == nil {
		day = fmt.Sprintf("%s (%s)", t.Date, timeutil.WeekdayLabel(parsed))
	}

	return fmt.Sprintf(
		"Здравствуйте, %s! Вас беспокоит администратор клиники. Напоминаем о приёме %s в %s, врач %s. Подскажите, планируете ли вы визит?",
		t.PatientName, day, t.Time, doctorName,
	)
}

func callActions(status models.CallStatus) []string {
	switch status {
	case models.CALL_PENDING, models.CALL_NO_ANSWER, models.CALL_RESCHEDULE:
		return []string{"start-call"}
	case models.CALL_CALLING:
		return []string{"confirmed", "reschedule", "no-answer"}
	default:
		return []string{}
	}
}

func parseCallOutcome(s string) (models.CallStatus, bool) {
	switch models.CallStatus(s) {
	case models.CALL_CONFIRMED, models.CALL_RESCHEDULE, models.CALL_NO_ANSWER:
		return models.CallStatus(s), true
	}

	return "", false
}
