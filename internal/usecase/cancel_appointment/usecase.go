package cancel_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
)

// UseCase use case для отмены записи абонента
type UseCase struct {
	ledger       AppointmentLedger
	resolver     IdentifierResolver
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger AppointmentLedger,
	resolver IdentifierResolver,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:       ledger,
		resolver:     resolver,
		notifier:     notifier,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute выбирает запись абонента по фразе и отменяет её
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: session=%s, identifier=%q", req.SessionID, req.IdentifierPhrase)

	if req.Caller == nil || req.Caller.ContactNumber == "" {
		uc.logger.Warn("CancelAppointment: session=%s caller not identified", req.SessionID)
		return nil, ErrUserNotIdentified
	}

	// 1. Активные записи абонента
	active, err := uc.ledger.ListForContact(ctx, req.Caller.ContactNumber, false)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to list appointments for %s: %v", req.Caller.ContactNumber, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	if len(active) == 0 {
		uc.logger.Info("CancelAppointment: %s has no active appointments", req.Caller.ContactNumber)
		return nil, ErrNoAppointments
	}

	// 2. Выбор записи по фразе
	target := uc.resolver.Resolve(req.IdentifierPhrase, active)
	if target == nil {
		uc.logger.Info("CancelAppointment: %q matches none of %d appointments", req.IdentifierPhrase, len(active))
		return nil, ErrAppointmentAmbiguous
	}

	// 3. Отмена
	cancelled, err := uc.ledger.Cancel(ctx, target.ID)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to cancel appointment id=%s: %v", target.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}
	if !cancelled {
		uc.logger.Warn("CancelAppointment: appointment id=%s disappeared before cancel", target.ID)
		return nil, ErrCancelFailed
	}

	uc.notifier.Notify(domain.NewEvent(domain.EventAppointmentCancelled, req.SessionID, domain.AppointmentCancelledPayload{
		AppointmentID: target.ID.String(),
		Date:          target.Date,
		Time:          target.Time,
	}, uc.timeProvider.Now()))

	result := *target
	result.Status = domain.StatusCancelled

	uc.logger.Info("CancelAppointment: session=%s cancelled appointment id=%s", req.SessionID, target.ID)
	return &Response{Appointment: &result}, nil
}
