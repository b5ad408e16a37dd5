package notify

import (
	"context"
	"fmt"
	"log/slog"

	"clinic-portal/internal/models"
)

// Mailer is the outbound notification boundary. Delivery lives outside the
// core; only the fixed message templates are defined here.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

const (
	approvedSubject = "Доступ к порталу клиники одобрен"
	rejectedSubject = "Заявка на доступ к порталу отклонена"

	approvedBody = "Здравствуйте, %s!\n\nВаша заявка на доступ к порталу сотрудников одобрена. Вы можете войти, используя указанный при регистрации адрес.\n\nС уважением,\nадминистрация клиники"
	rejectedBody = "Здравствуйте, %s!\n\nК сожалению, ваша заявка на доступ к порталу сотрудников отклонена. Свяжитесь с администратором клиники для уточнения деталей.\n\nС уважением,\nадминистрация клиники"
)

// DecisionMessage renders the fixed registration-decision template.
func DecisionMessage(req models.RegistrationRequest) (subject, body string) {
	if req.Status == models.REG_APPROVED {
		return approvedSubject, fmt.Sprintf(approvedBody, req.FullName)
	}

	return rejectedSubject, fmt.Sprintf(rejectedBody, req.FullName)
}

// LogMailer writes the rendered message to the log instead of delivering it.
// It is the default implementation wired in main.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Info("Outbound mail",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_len", len(body)),
	)

	return nil
}
