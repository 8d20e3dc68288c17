package appointments

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/profile"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

var errStoreDown = errors.New("connection refused")

// memoryAppointments хранилище записей в памяти с тем же уникальным ограничением, что и индекс в БД
type memoryAppointments struct {
	mu    sync.Mutex
	items map[domain.AppointmentID]domain.Appointment
	fail  error
}

func newMemoryAppointments() *memoryAppointments {
	return &memoryAppointments{items: make(map[domain.AppointmentID]domain.Appointment)}
}

func (m *memoryAppointments) activeHolder(date types.Date, t types.TimeString) (domain.Appointment, bool) {
	for _, a := range m.items {
		if a.Occupies(date, t) {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

func (m *memoryAppointments) Insert(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	if _, taken := m.activeHolder(appt.Date, appt.Time); taken && appt.IsActive() {
		return nil, appointmentRepo.ErrSlotTaken
	}
	m.items[appt.ID] = *appt
	copied := *appt
	return &copied, nil
}

func (m *memoryAppointments) GetByID(_ context.Context, id domain.AppointmentID) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	a, ok := m.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (m *memoryAppointments) FindActive(_ context.Context, date types.Date, t types.TimeString) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	a, ok := m.activeHolder(date, t)
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (m *memoryAppointments) FindActiveInRange(_ context.Context, from, to types.Date) ([]*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range m.items {
		if a.IsActive() && !a.Date.Before(from) && !a.Date.After(to) {
			a := a
			result = append(result, &a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func (m *memoryAppointments) FindByContact(_ context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range m.items {
		if a.ContactNumber == contact && (includeCancelled || a.IsActive()) {
			a := a
			result = append(result, &a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func (m *memoryAppointments) UpdateStatus(_ context.Context, id domain.AppointmentID, status domain.AppointmentStatus) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	a, ok := m.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	m.items[id] = a
	return &a, nil
}

func (m *memoryAppointments) UpdateDateTime(_ context.Context, id domain.AppointmentID, date types.Date, t types.TimeString) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	a, ok := m.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	if holder, taken := m.activeHolder(date, t); taken && holder.ID != id {
		return nil, appointmentRepo.ErrSlotTaken
	}
	a.Date, a.Time, a.Status = date, t, domain.StatusActive
	m.items[id] = a
	return &a, nil
}

func sortAppointments(list []*domain.Appointment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].Time.IsBefore(list[j].Time)
	})
}

type memoryProfiles struct {
	mu    sync.Mutex
	items map[string]domain.UserProfile
}

func newMemoryProfiles() *memoryProfiles {
	return &memoryProfiles{items: make(map[string]domain.UserProfile)}
}

func (m *memoryProfiles) Find(_ context.Context, contact string) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[contact]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return &p, nil
}

func (m *memoryProfiles) Insert(_ context.Context, p *domain.UserProfile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[p.ContactNumber]; ok {
		return false, nil
	}
	m.items[p.ContactNumber] = *p
	return true, nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// isolationTx запоминает, с каким уровнем изоляции открывались транзакции
type isolationTx struct {
	mu           sync.Mutex
	plain        int
	serializable int
}

func (tx *isolationTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	tx.plain++
	tx.mu.Unlock()
	return fn(ctx)
}

func (tx *isolationTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	tx.serializable++
	tx.mu.Unlock()
	return fn(ctx)
}

type conflictCounter struct {
	mu    sync.Mutex
	count int
}

func (c *conflictCounter) IncSlotConflict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
