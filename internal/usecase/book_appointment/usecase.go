package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
)

// UseCase use case для записи абонента на слот
type UseCase struct {
	ledger       AppointmentLedger
	interpreter  DateTimeInterpreter
	policy       PolicyChecker
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger AppointmentLedger,
	interpreter DateTimeInterpreter,
	policy PolicyChecker,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:       ledger,
		interpreter:  interpreter,
		policy:       policy,
		notifier:     notifier,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute выполняет use case записи
// Без идентифицированного абонента хранилище не вызывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: session=%s, date=%q, time=%q", req.SessionID, req.DatePhrase, req.TimePhrase)

	// 1. Абонент должен быть идентифицирован
	if req.Caller == nil || req.Caller.ContactNumber == "" {
		uc.logger.Warn("BookAppointment: session=%s caller not identified", req.SessionID)
		return nil, ErrUserNotIdentified
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	name, err := resolveName(req)
	if err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 3. Разбор даты и времени
	date, err := uc.interpreter.InterpretDate(req.DatePhrase, now)
	if err != nil {
		uc.logger.Warn("BookAppointment: failed to interpret date %q: %v", req.DatePhrase, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	t, err := uc.interpreter.InterpretTime(req.TimePhrase)
	if err != nil {
		uc.logger.Warn("BookAppointment: failed to interpret time %q: %v", req.TimePhrase, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 4. Проверка политики расписания
	if !uc.policy.IsBookable(date, t, now) {
		uc.logger.Warn("BookAppointment: slot %s %s is not offered", date, t)
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, domain.FormatSlot(date, t))
	}

	// 5. Создание записи
	appt, err := uc.ledger.Create(ctx, appointments.CreateRequest{
		ContactNumber: req.Caller.ContactNumber,
		UserName:      name,
		Date:          date,
		Time:          t,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSlotConflict):
			uc.logger.Warn("BookAppointment: slot %s %s already booked", date, t)
			return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, domain.FormatSlot(date, t))
		case errors.Is(err, appointments.ErrPolicyViolation):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		case errors.Is(err, appointments.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	// 6. Уведомление отправляется после фиксации записи
	uc.notifier.Notify(domain.NewEvent(domain.EventAppointmentBooked, req.SessionID, domain.AppointmentBookedPayload{
		AppointmentID: appt.ID.String(),
		UserName:      appt.UserName,
		Date:          appt.Date,
		Time:          appt.Time,
		Display:       appt.Display(),
	}, now))

	caller := *req.Caller
	if caller.Name == nil {
		caller = caller.WithName(name)
	}
	caller.IsNew = false

	uc.logger.Info("BookAppointment: session=%s booked appointment id=%s", req.SessionID, appt.ID)
	return &Response{Appointment: appt, Caller: caller}, nil
}
