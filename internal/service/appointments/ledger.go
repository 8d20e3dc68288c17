package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/profile"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// Ledger журнал записей: единственное место, где записи создаются и меняются
// Не более одной активной записи на слот гарантирует уникальный индекс в хранилище,
// проверка IsFree лишь быстрый путь
type Ledger struct {
	appointments AppointmentRepository
	profiles     ProfileRepository
	txManager    TransactionManager
	policy       PolicyChecker
	timeProvider TimeProvider
	conflicts    ConflictRecorder
	logger       Logger
}

// NewLedger создает новый экземпляр журнала записей
func NewLedger(
	appointments AppointmentRepository,
	profiles ProfileRepository,
	txManager TransactionManager,
	policy PolicyChecker,
	conflicts ConflictRecorder,
	logger Logger,
) *Ledger {
	return &Ledger{
		appointments: appointments,
		profiles:     profiles,
		txManager:    txManager,
		policy:       policy,
		timeProvider: clock.Real{},
		conflicts:    conflicts,
		logger:       logger,
	}
}

// IsFree проверяет, что на слот нет активной записи
// При ошибке хранилища слот считается занятым
func (l *Ledger) IsFree(ctx context.Context, date types.Date, t types.TimeString) (bool, error) {
	_, err := l.appointments.FindActive(ctx, date, t)
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		return true, nil
	}
	if err != nil {
		l.logger.Error("IsFree: repository error for slot %s %s: %v", date, t, err)
		return false, fmt.Errorf("%w: IsFree - repository error: %v", ErrStore, err)
	}
	return false, nil
}

// TakenSlots возвращает занятые слоты в диапазоне дат одним запросом
func (l *Ledger) TakenSlots(ctx context.Context, from, to types.Date) (map[domain.SlotKey]struct{}, error) {
	active, err := l.appointments.FindActiveInRange(ctx, from, to)
	if err != nil {
		l.logger.Error("TakenSlots: repository error for range %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: TakenSlots - repository error: %v", ErrStore, err)
	}

	taken := make(map[domain.SlotKey]struct{}, len(active))
	for _, appt := range active {
		taken[domain.SlotKey{Date: appt.Date, Time: appt.Time}] = struct{}{}
	}
	return taken, nil
}

// Create создает активную запись на свободный слот
// Профиль абонента создается при первой записи; существующий профиль не меняется
func (l *Ledger) Create(ctx context.Context, req CreateRequest) (*domain.Appointment, error) {
	l.logger.Info("Create: contact=%s, slot=%s %s", req.ContactNumber, req.Date, req.Time)

	if strings.TrimSpace(req.ContactNumber) == "" || strings.TrimSpace(req.UserName) == "" ||
		req.Date.IsZero() || req.Time.IsZero() {
		return nil, fmt.Errorf("%w: contact, name, date and time are required", ErrInvalidInput)
	}

	if !l.policy.IsBookable(req.Date, req.Time, l.timeProvider.Now()) {
		l.logger.Warn("Create: slot %s %s violates scheduling policy", req.Date, req.Time)
		return nil, fmt.Errorf("%w: %s %s", ErrPolicyViolation, req.Date, req.Time)
	}

	var created *domain.Appointment
	// Проверка свободы слота и вставка в одной SERIALIZABLE транзакции
	err := l.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		free, err := l.IsFree(txCtx, req.Date, req.Time)
		if err != nil {
			return err
		}
		if !free {
			return ErrSlotConflict
		}

		if err := l.ensureProfile(txCtx, req.ContactNumber, req.UserName); err != nil {
			return err
		}

		appt := &domain.Appointment{
			ID:            domain.NewAppointmentID(),
			ContactNumber: req.ContactNumber,
			UserName:      strings.TrimSpace(req.UserName),
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusActive,
			Notes:         req.Notes,
		}

		created, err = l.appointments.Insert(txCtx, appt)
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return ErrSlotConflict
		}
		if err != nil {
			return fmt.Errorf("%w: Create - insert appointment: %v", ErrStore, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			l.conflicts.IncSlotConflict()
			l.logger.Warn("Create: slot %s %s already booked", req.Date, req.Time)
			return nil, err
		}
		l.logger.Error("Create: failed for contact=%s: %v", req.ContactNumber, err)
		if errors.Is(err, ErrStore) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Create - transaction: %v", ErrStore, err)
	}

	l.logger.Info("Create: appointment id=%s booked for %s %s", created.ID, created.Date, created.Time)
	return created, nil
}

// Cancel переводит запись в статус cancelled
// Возвращает false, если записи с таким ID нет; повторная отмена успешна
func (l *Ledger) Cancel(ctx context.Context, id domain.AppointmentID) (bool, error) {
	l.logger.Info("Cancel: appointment id=%s", id)

	_, err := l.appointments.UpdateStatus(ctx, id, domain.StatusCancelled)
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		l.logger.Warn("Cancel: appointment id=%s not found", id)
		return false, nil
	}
	if err != nil {
		l.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return false, fmt.Errorf("%w: Cancel - repository error: %v", ErrStore, err)
	}

	l.logger.Info("Cancel: appointment id=%s cancelled", id)
	return true, nil
}

// Modify переносит запись на новый слот целиком или не меняет ничего
// Собственный слот записи не считается занятым
func (l *Ledger) Modify(ctx context.Context, id domain.AppointmentID, date types.Date, t types.TimeString) (*domain.Appointment, error) {
	l.logger.Info("Modify: appointment id=%s, new slot=%s %s", id, date, t)

	if date.IsZero() || t.IsZero() {
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}

	if !l.policy.IsBookable(date, t, l.timeProvider.Now()) {
		l.logger.Warn("Modify: slot %s %s violates scheduling policy", date, t)
		return nil, fmt.Errorf("%w: %s %s", ErrPolicyViolation, date, t)
	}

	var updated *domain.Appointment
	err := l.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := l.appointments.GetByID(txCtx, id)
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Modify - get appointment: %v", ErrStore, err)
		}

		if current.Occupies(date, t) {
			updated = current
			return nil
		}

		holder, err := l.appointments.FindActive(txCtx, date, t)
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		case err != nil:
			return fmt.Errorf("%w: Modify - check slot: %v", ErrStore, err)
		case holder.ID != id:
			return ErrSlotConflict
		}

		updated, err = l.appointments.UpdateDateTime(txCtx, id, date, t)
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			return ErrSlotConflict
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return ErrAppointmentNotFound
		case err != nil:
			return fmt.Errorf("%w: Modify - update appointment: %v", ErrStore, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict):
			l.conflicts.IncSlotConflict()
			l.logger.Warn("Modify: slot %s %s already booked", date, t)
			return nil, err
		case errors.Is(err, ErrAppointmentNotFound):
			l.logger.Warn("Modify: appointment id=%s not found", id)
			return nil, err
		case errors.Is(err, ErrStore):
			l.logger.Error("Modify: failed for appointment id=%s: %v", id, err)
			return nil, err
		default:
			l.logger.Error("Modify: transaction failed for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Modify - transaction: %v", ErrStore, err)
		}
	}

	l.logger.Info("Modify: appointment id=%s moved to %s %s", id, updated.Date, updated.Time)
	return updated, nil
}

// ListForContact возвращает записи абонента по возрастанию даты и времени
func (l *Ledger) ListForContact(ctx context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error) {
	appts, err := l.appointments.FindByContact(ctx, contact, includeCancelled)
	if err != nil {
		l.logger.Error("ListForContact: repository error for contact=%s: %v", contact, err)
		return nil, fmt.Errorf("%w: ListForContact - repository error: %v", ErrStore, err)
	}
	return appts, nil
}

func (l *Ledger) ensureProfile(ctx context.Context, contact, name string) error {
	_, err := l.profiles.Find(ctx, contact)
	if err == nil {
		return nil
	}
	if !errors.Is(err, profileRepo.ErrProfileNotFound) {
		return fmt.Errorf("%w: ensureProfile - find profile: %v", ErrStore, err)
	}

	trimmed := strings.TrimSpace(name)
	if _, err := l.profiles.Insert(ctx, &domain.UserProfile{ContactNumber: contact, Name: &trimmed}); err != nil {
		return fmt.Errorf("%w: ensureProfile - insert profile: %v", ErrStore, err)
	}
	return nil
}
