package fetch_slots

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/slots"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
)

// UseCase use case для получения свободных слотов
type UseCase struct {
	catalog      SlotCatalog
	availability AvailabilityReader
	dates        DateInterpreter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog SlotCatalog,
	availability AvailabilityReader,
	dates DateInterpreter,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		availability: availability,
		dates:        dates,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute возвращает свободные слоты горизонта записи
// Если хранилище недоступно, отдает слоты политики без проверки занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	preferred := strings.TrimSpace(req.PreferredDate)
	uc.logger.Info("FetchSlots: session=%s, preferred=%q", req.SessionID, preferred)

	now := uc.timeProvider.Now()

	// 1. Все слоты политики в горизонте записи
	all := uc.catalog.Generate(now, 0)
	if len(all) == 0 {
		uc.logger.Warn("FetchSlots: scheduling policy produced no slots")
		return nil, ErrNoSlotsAvailable
	}

	// 2. Занятые слоты одним запросом на весь диапазон
	taken, err := uc.availability.TakenSlots(ctx, all[0].Date, all[len(all)-1].Date)
	if err != nil {
		uc.logger.Warn("FetchSlots: availability check failed, suggesting unchecked slots: %v", err)
		suggested := uc.catalog.Suggest(now, preferred)
		return &Response{
			Slots:          suggested,
			TotalAvailable: len(suggested),
			Degraded:       true,
		}, nil
	}

	free := slots.Exclude(all, taken)
	if len(free) == 0 {
		uc.logger.Info("FetchSlots: all %d slots are booked", len(all))
		return nil, ErrNoSlotsAvailable
	}

	resp := &Response{}
	result := free

	// 3. Фильтр по желаемой дате; при неудаче отдаем ближайшие слоты
	if preferred != "" {
		date, err := uc.dates.InterpretDate(preferred, now)
		if err != nil {
			uc.logger.Info("FetchSlots: preferred date %q not understood: %v", preferred, err)
		} else {
			resp.PreferredDate = &date
			if onDate := slots.OnDate(free, date); len(onDate) > 0 {
				result = onDate
				resp.PreferredMatched = true
			}
		}
	}

	resp.TotalAvailable = len(result)
	resp.Slots = slots.Limit(result, domain.MaxSuggestedSlots)

	uc.logger.Info("FetchSlots: session=%s, %d free slots, returning %d, preferred matched=%t",
		req.SessionID, len(free), len(resp.Slots), resp.PreferredMatched)
	return resp, nil
}
