package identifier

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// DateInterpreter разбор даты из фразы
type DateInterpreter interface {
	InterpretDate(phrase string, reference time.Time) (types.Date, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Resolver выбирает запись, о которой говорит абонент
type Resolver struct {
	dates        DateInterpreter
	timeProvider TimeProvider
}

// NewResolver создает резолвер
func NewResolver(dates DateInterpreter) *Resolver {
	return &Resolver{dates: dates, timeProvider: clock.Real{}}
}

// Resolve сопоставляет фразу со списком записей:
// точный ID, затем дата из фразы, затем единственная запись; иначе nil
func (r *Resolver) Resolve(phrase string, candidates []*domain.Appointment) *domain.Appointment {
	phrase = strings.TrimSpace(phrase)

	if phrase != "" {
		for _, c := range candidates {
			if strings.EqualFold(c.ID.String(), phrase) {
				return c
			}
		}

		if date, err := r.dates.InterpretDate(phrase, r.timeProvider.Now()); err == nil {
			for _, c := range candidates {
				if c.Date == date {
					return c
				}
			}
		}
	}

	if len(candidates) == 1 {
		return candidates[0]
	}
	return nil
}
