package slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// Catalog перечисляет слоты, разрешенные политикой расписания
// Каталог не знает о занятости слотов: это делает журнал записей
type Catalog struct {
	config domain.SchedulingConfig
}

// NewCatalog создает каталог слотов
func NewCatalog(config domain.SchedulingConfig) *Catalog {
	return &Catalog{config: config}
}

// Config возвращает политику расписания
func (c *Catalog) Config() domain.SchedulingConfig {
	return c.config
}

// Today возвращает текущую дату в часовом поясе расписания
func (c *Catalog) Today(now time.Time) types.Date {
	return types.DateOf(now.In(c.config.Loc()))
}

// Generate возвращает слоты на horizonDays дней начиная с даты from
// horizonDays <= 0 означает горизонт из конфигурации
// Порядок: по дате, внутри даты в порядке available_times
func (c *Catalog) Generate(from time.Time, horizonDays int) []domain.Slot {
	if horizonDays <= 0 {
		horizonDays = c.config.DaysAhead
	}

	local := from.In(c.config.Loc())
	today := types.DateOf(local)

	// Сегодня доступны только слоты не раньше now + min_notice_minutes
	// Если граница выходит за полночь, сегодня слотов нет
	cutoff, todayOpen := c.leadCutoff(local)
	todayClosed := !todayOpen

	result := make([]domain.Slot, 0, horizonDays*len(c.config.AvailableTimes))
	for offset := 0; offset < horizonDays; offset++ {
		date := today.AddDays(offset)
		if c.config.IsExcluded(date.Weekday()) {
			continue
		}

		for _, t := range c.config.AvailableTimes {
			if offset == 0 && (todayClosed || t.IsBefore(cutoff)) {
				continue
			}
			result = append(result, domain.NewSlot(date, t))
		}
	}

	return result
}

// IsWithinPolicy проверяет слот против политики без учета занятости и времени суток
func (c *Catalog) IsWithinPolicy(date types.Date, t types.TimeString, today types.Date) bool {
	if !c.config.HasTime(t) {
		return false
	}
	if date.Before(today) || date.After(today.AddDays(c.config.DaysAhead)) {
		return false
	}
	return !c.config.IsExcluded(date.Weekday())
}

// IsBookable проверяет политику и минимальное время до записи на сегодня
func (c *Catalog) IsBookable(date types.Date, t types.TimeString, now time.Time) bool {
	local := now.In(c.config.Loc())
	today := types.DateOf(local)

	if !c.IsWithinPolicy(date, t, today) {
		return false
	}
	if date != today {
		return true
	}

	cutoff, ok := c.leadCutoff(local)
	if !ok {
		return false
	}
	return !t.IsBefore(cutoff)
}

// leadCutoff самое раннее время сегодня, не раньше now + min_notice_minutes
// Неполная минута округляется вверх; false - граница за полночью
func (c *Catalog) leadCutoff(local time.Time) (types.TimeString, bool) {
	lead := c.config.MinNoticeMinutes
	if local.Second() != 0 || local.Nanosecond() != 0 {
		lead++
	}
	cutoff, err := types.NewTimeString(local).AddMinutes(lead)
	if err != nil {
		return "", false
	}
	return cutoff, true
}

// Suggest возвращает до MaxSuggestedSlots слотов с учетом пожелания по дате
// Понимает "today", "tomorrow" и YYYY-MM-DD; в остальных случаях или если
// на выбранную дату ничего нет, возвращает первые слоты без фильтра
func (c *Catalog) Suggest(now time.Time, preferred string) []domain.Slot {
	all := c.Generate(now, 0)

	target, ok := suggestionDate(preferred, c.Today(now))
	if !ok {
		return Limit(all, domain.MaxSuggestedSlots)
	}

	filtered := OnDate(all, target)
	if len(filtered) == 0 {
		return Limit(all, domain.MaxSuggestedSlots)
	}
	return Limit(filtered, domain.MaxSuggestedSlots)
}

func suggestionDate(preferred string, today types.Date) (types.Date, bool) {
	switch p := strings.ToLower(strings.TrimSpace(preferred)); p {
	case "":
		return types.Date{}, false
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDays(1), true
	default:
		d, err := types.ParseDate(p)
		if err != nil {
			return types.Date{}, false
		}
		return d, true
	}
}

// OnDate оставляет слоты указанной даты
func OnDate(slots []domain.Slot, date types.Date) []domain.Slot {
	result := make([]domain.Slot, 0)
	for _, s := range slots {
		if s.Date == date {
			result = append(result, s)
		}
	}
	return result
}

// Exclude убирает занятые слоты, сохраняя порядок
func Exclude(slots []domain.Slot, taken map[domain.SlotKey]struct{}) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if _, busy := taken[s.Key()]; !busy {
			result = append(result, s)
		}
	}
	return result
}

// Limit обрезает список до n элементов
func Limit(slots []domain.Slot, n int) []domain.Slot {
	if len(slots) > n {
		return slots[:n]
	}
	return slots
}

// StepTimes генерирует времена начала от open до close с шагом step минут
// Слот включается, только если он целиком помещается до close
func StepTimes(open, close types.TimeString, step int) ([]types.TimeString, error) {
	if step <= 0 {
		step = domain.DefaultDurationMinutes
	}
	if err := open.Validate(); err != nil {
		return nil, err
	}
	if err := close.Validate(); err != nil {
		return nil, err
	}

	result := make([]types.TimeString, 0)
	current := open
	for current.IsBefore(close) {
		end, err := current.AddMinutes(step)
		if err != nil || end.IsAfter(close) {
			break
		}
		result = append(result, current)
		current = end
	}

	return result, nil
}
