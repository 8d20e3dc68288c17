package end_conversation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/ptr"
)

// UseCase use case для завершения разговора
type UseCase struct {
	ledger       AppointmentLedger
	summaryRepo  SummaryRepository
	calculator   CostCalculator
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger AppointmentLedger,
	summaryRepo SummaryRepository,
	calculator CostCalculator,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:       ledger,
		summaryRepo:  summaryRepo,
		calculator:   calculator,
		notifier:     notifier,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute формирует, сохраняет и отправляет итог разговора
// Внутренние ошибки только логируются: разговор всегда завершается
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("EndConversation: session=%s", req.SessionID)

	// 1. Записи абонента, не больше MaxSummaryAppointments
	var mentioned []*domain.Appointment
	if req.Caller != nil && req.Caller.ContactNumber != "" {
		appts, err := uc.ledger.ListForContact(ctx, req.Caller.ContactNumber, true)
		if err != nil {
			uc.logger.Warn("EndConversation: failed to list appointments for %s: %v", req.Caller.ContactNumber, err)
		}
		if len(appts) > domain.MaxSummaryAppointments {
			appts = appts[:domain.MaxSummaryAppointments]
		}
		mentioned = appts
	}

	// 2. Итог и стоимость
	summary := domain.ConversationSummary{
		ID:                    uuid.NewString(),
		SessionID:             req.SessionID,
		SummaryText:           buildSummaryText(req.Caller, mentioned),
		AppointmentsMentioned: views(mentioned),
		CostBreakdown:         uc.calculator.Calculate(req.Usage),
		CreatedAt:             uc.timeProvider.Now(),
	}
	if req.Caller != nil && req.Caller.ContactNumber != "" {
		summary.ContactNumber = ptr.Ptr(req.Caller.ContactNumber)
	}

	// 3. Сохранение
	persisted := false
	if saved, err := uc.summaryRepo.Insert(ctx, &summary); err != nil {
		uc.logger.Error("EndConversation: failed to save summary for session=%s: %v", req.SessionID, err)
	} else {
		summary.CreatedAt = saved.CreatedAt
		persisted = true
	}

	// 4. Уведомление
	var user *domain.Caller
	if req.Caller != nil {
		c := *req.Caller
		user = &c
	}
	uc.notifier.Notify(domain.NewEvent(domain.EventConversationSummary, req.SessionID, domain.ConversationSummaryPayload{
		Summary:      summary.SummaryText,
		Appointments: summary.AppointmentsMentioned,
		Costs:        summary.CostBreakdown,
		User:         user,
	}, uc.timeProvider.Now()))

	uc.logger.Info("EndConversation: session=%s finished, summary persisted=%t, total cost=%.6f",
		req.SessionID, persisted, summary.CostBreakdown["total_cost"])
	return &Response{Summary: summary, Persisted: persisted}
}
