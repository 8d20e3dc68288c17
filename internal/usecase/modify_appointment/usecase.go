package modify_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
)

// UseCase use case для переноса записи абонента на другой слот
type UseCase struct {
	ledger       AppointmentLedger
	resolver     IdentifierResolver
	interpreter  DateTimeInterpreter
	policy       PolicyChecker
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger AppointmentLedger,
	resolver IdentifierResolver,
	interpreter DateTimeInterpreter,
	policy PolicyChecker,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:       ledger,
		resolver:     resolver,
		interpreter:  interpreter,
		policy:       policy,
		notifier:     notifier,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute выбирает запись абонента и переносит её на новый слот
// При конфликте исходная запись не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ModifyAppointment: session=%s, identifier=%q, date=%q, time=%q",
		req.SessionID, req.IdentifierPhrase, req.NewDatePhrase, req.NewTimePhrase)

	if req.Caller == nil || req.Caller.ContactNumber == "" {
		uc.logger.Warn("ModifyAppointment: session=%s caller not identified", req.SessionID)
		return nil, ErrUserNotIdentified
	}

	datePhrase := strings.TrimSpace(req.NewDatePhrase)
	timePhrase := strings.TrimSpace(req.NewTimePhrase)
	if datePhrase == "" && timePhrase == "" {
		return nil, fmt.Errorf("%w: new date or time is required", ErrInvalidInput)
	}

	// 1. Активные записи абонента
	active, err := uc.ledger.ListForContact(ctx, req.Caller.ContactNumber, false)
	if err != nil {
		uc.logger.Error("ModifyAppointment: failed to list appointments for %s: %v", req.Caller.ContactNumber, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	if len(active) == 0 {
		uc.logger.Info("ModifyAppointment: %s has no active appointments", req.Caller.ContactNumber)
		return nil, ErrNoAppointments
	}

	// 2. Выбор записи по фразе
	target := uc.resolver.Resolve(req.IdentifierPhrase, active)
	if target == nil {
		uc.logger.Info("ModifyAppointment: %q matches none of %d appointments", req.IdentifierPhrase, len(active))
		return nil, ErrAppointmentAmbiguous
	}
	previous := *target

	now := uc.timeProvider.Now()

	// 3. Новый слот; незаданная часть берется из текущей записи
	date, t := target.Date, target.Time
	if datePhrase != "" {
		if date, err = uc.interpreter.InterpretDate(datePhrase, now); err != nil {
			uc.logger.Warn("ModifyAppointment: failed to interpret date %q: %v", datePhrase, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
	}
	if timePhrase != "" {
		if t, err = uc.interpreter.InterpretTime(timePhrase); err != nil {
			uc.logger.Warn("ModifyAppointment: failed to interpret time %q: %v", timePhrase, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
	}

	if !uc.policy.IsBookable(date, t, now) {
		uc.logger.Warn("ModifyAppointment: slot %s %s is not offered", date, t)
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, domain.FormatSlot(date, t))
	}

	// 4. Перенос
	updated, err := uc.ledger.Modify(ctx, target.ID, date, t)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSlotConflict):
			uc.logger.Warn("ModifyAppointment: slot %s %s already booked", date, t)
			return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, domain.FormatSlot(date, t))
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointments.ErrPolicyViolation):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		default:
			uc.logger.Error("ModifyAppointment: failed to modify appointment id=%s: %v", target.ID, err)
			return nil, fmt.Errorf("%w: failed to modify appointment: %v", ErrInternal, err)
		}
	}

	uc.notifier.Notify(domain.NewEvent(domain.EventAppointmentModified, req.SessionID, domain.AppointmentModifiedPayload{
		AppointmentID: updated.ID.String(),
		OldDate:       previous.Date,
		OldTime:       previous.Time,
		NewDate:       updated.Date,
		NewTime:       updated.Time,
		Display:       updated.Display(),
	}, now))

	uc.logger.Info("ModifyAppointment: session=%s moved appointment id=%s from %s %s to %s %s",
		req.SessionID, updated.ID, previous.Date, previous.Time, updated.Date, updated.Time)
	return &Response{Appointment: updated, Previous: previous}, nil
}
