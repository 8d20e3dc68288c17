package retrieve_appointments

import (
	"context"
	"fmt"
)

// UseCase use case для получения записей абонента
type UseCase struct {
	ledger AppointmentLedger
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger AppointmentLedger, logger Logger) *UseCase {
	return &UseCase{
		ledger: ledger,
		logger: logger,
	}
}

// Execute возвращает записи абонента, всегда читая их из хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RetrieveAppointments: session=%s, includeCancelled=%t", req.SessionID, req.IncludeCancelled)

	if req.Caller == nil || req.Caller.ContactNumber == "" {
		uc.logger.Warn("RetrieveAppointments: session=%s caller not identified", req.SessionID)
		return nil, ErrUserNotIdentified
	}

	appts, err := uc.ledger.ListForContact(ctx, req.Caller.ContactNumber, req.IncludeCancelled)
	if err != nil {
		uc.logger.Error("RetrieveAppointments: failed to list appointments for %s: %v", req.Caller.ContactNumber, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	uc.logger.Info("RetrieveAppointments: session=%s found %d appointments", req.SessionID, len(appts))
	return &Response{Appointments: appts}, nil
}
