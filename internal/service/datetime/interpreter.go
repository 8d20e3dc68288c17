package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

var timeLiterals = map[string]types.TimeString{
	"noon":      "12:00",
	"midnight":  "00:00",
	"morning":   "09:00",
	"afternoon": "14:00",
	"evening":   "18:00",
}

// Даты без года: год подставляется от опорной даты
var monthDayLayouts = []string{
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
}

var fullDateLayouts = []string{
	"2006-01-02",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday January 2 2006",
}

// Формы времени, которые разбираются напрямую через time.Parse
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04pm",
	"3:04 pm",
	"3pm",
	"3 pm",
}

// Обороты, задающие половину суток: "7 in the evening" -> "7 pm"
var meridiemPhrases = strings.NewReplacer(
	"in the morning", "am",
	"in the afternoon", "pm",
	"in the evening", "pm",
	"at night", "pm",
	"tonight", "pm",
)

// Опорная дата для разбора времени через dateparse
const anchorDate = "2000-01-01"

var (
	spacePattern    = regexp.MustCompile(`\s+`)
	ordinalPattern  = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)\b`)
	fillerPattern   = regexp.MustCompile(`\b(o'clock|oclock|at|around)\b`)
	dottedPattern   = regexp.MustCompile(`\b(\d{1,2})\.(\d{2})\b`)
	compactPattern  = regexp.MustCompile(`^(\d{1,2})(\d{2})(?: ?(am|pm))?$`)
	spacedPattern   = regexp.MustCompile(`^(\d{1,2}) (\d{2})(?: ?(am|pm))?$`)
	hourOnlyPattern = regexp.MustCompile(`^(\d{1,2})$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	clockMeridiem   = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	hourMeridiem    = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	bareHourPattern = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\b`)
)

// Interpreter переводит фразы естественного языка в даты и время
// Опорный момент передается явно, поэтому результат детерминирован
type Interpreter struct{}

// NewInterpreter создает интерпретатор
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// InterpretDate разбирает фразу о дате относительно опорного момента
func (i *Interpreter) InterpretDate(phrase string, reference time.Time) (types.Date, error) {
	p := normalize(phrase)
	if p == "" {
		return types.Date{}, fmt.Errorf("%w: empty phrase", ErrDateParse)
	}

	today := types.DateOf(reference)

	switch p {
	case "today", "now":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "day after tomorrow", "the day after tomorrow":
		return today.AddDays(2), nil
	}

	if rest, ok := strings.CutPrefix(p, "next "); ok {
		if weekday, ok := leadingWeekday(rest); ok {
			return nextWeekday(today, weekday), nil
		}
	}

	if weekday, ok := weekdays[strings.TrimPrefix(p, "this ")]; ok {
		return upcomingWeekday(today, weekday), nil
	}

	cleaned := cleanDatePhrase(p)

	for _, layout := range fullDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return types.DateOf(t), nil
		}
	}

	for _, layout := range monthDayLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			d := types.NewDate(today.Year(), t.Month(), t.Day())
			if d.Before(today) {
				d = types.NewDate(today.Year()+1, t.Month(), t.Day())
			}
			return d, nil
		}
	}

	t, err := dateparse.ParseIn(cleaned, reference.Location())
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: %q: %v", ErrDateParse, phrase, err)
	}
	return types.DateOf(t), nil
}

// InterpretTime разбирает фразу о времени суток и возвращает HH:MM
func (i *Interpreter) InterpretTime(phrase string) (types.TimeString, error) {
	p := normalize(phrase)
	p = strings.NewReplacer("a.m.", "am", "p.m.", "pm").Replace(p)

	if literal, ok := timeLiterals[p]; ok {
		return literal, nil
	}

	p = meridiemPhrases.Replace(p)
	p = dottedPattern.ReplaceAllString(p, "$1:$2")

	cleaned := strings.TrimSpace(spacePattern.ReplaceAllString(fillerPattern.ReplaceAllString(p, " "), " "))
	if cleaned == "" {
		return "", fmt.Errorf("%w: %q", ErrTimeParse, phrase)
	}

	if literal, ok := timeLiterals[cleaned]; ok {
		return literal, nil
	}

	// 1. Числовые формы без двоеточия: "1430", "930am", "2 30"
	for _, pattern := range []*regexp.Regexp{compactPattern, spacedPattern} {
		if m := pattern.FindStringSubmatch(cleaned); m != nil {
			if ts, ok := toClock(m[1], m[2], m[3]); ok {
				return ts, nil
			}
			return "", fmt.Errorf("%w: %q", ErrTimeParse, phrase)
		}
	}
	if m := hourOnlyPattern.FindStringSubmatch(cleaned); m != nil {
		if ts, ok := toClock(m[1], "", ""); ok {
			return ts, nil
		}
		return "", fmt.Errorf("%w: %q", ErrTimeParse, phrase)
	}
	if digitsPattern.MatchString(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrTimeParse, phrase)
	}

	// 2. Точные форматы
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return types.NewTimeString(t), nil
		}
	}

	// 3. Нечеткий разбор, привязанный к фиксированной дате
	if ts, ok := parseAnchored(cleaned); ok {
		return ts, nil
	}

	// 4. Время внутри произвольного текста
	if ts, ok := parseClockFallback(cleaned); ok {
		return ts, nil
	}

	return "", fmt.Errorf("%w: %q", ErrTimeParse, phrase)
}

// parseAnchored разбирает время через dateparse на фиксированной дате
// Результат на другой дате означает, что фраза была понята не как время
func parseAnchored(s string) (types.TimeString, bool) {
	if !strings.ContainsAny(s, "0123456789") {
		return "", false
	}
	t, err := dateparse.ParseIn(anchorDate+" "+s, time.UTC)
	if err != nil {
		return "", false
	}
	if y, m, d := t.Date(); y != 2000 || m != time.January || d != 1 {
		return "", false
	}
	return types.NewTimeString(t), true
}

// parseClockFallback ищет H:MM[am|pm], H[am|pm] или голое H[:MM] в произвольном тексте
func parseClockFallback(s string) (types.TimeString, bool) {
	if m := clockMeridiem.FindStringSubmatch(s); m != nil {
		return toClock(m[1], m[2], m[3])
	}
	if m := hourMeridiem.FindStringSubmatch(s); m != nil {
		return toClock(m[1], "", m[2])
	}
	if m := bareHourPattern.FindStringSubmatch(s); m != nil {
		return toClock(m[1], m[2], "")
	}
	return "", false
}

func toClock(hourStr, minuteStr, meridiem string) (types.TimeString, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil {
			return "", false
		}
	}

	switch meridiem {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	ts, err := types.NewTimeStringFromClock(hour, minute)
	if err != nil {
		return "", false
	}
	return ts, true
}

func normalize(phrase string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(strings.ToLower(phrase), " "))
}

func cleanDatePhrase(p string) string {
	p = strings.TrimPrefix(p, "on ")
	p = strings.TrimPrefix(p, "the ")
	p = ordinalPattern.ReplaceAllString(p, "$1")
	p = strings.ReplaceAll(p, ",", " ")
	p = strings.ReplaceAll(p, " of ", " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(p, " "))
}

// leadingWeekday проверяет, начинается ли фраза с названия дня недели
func leadingWeekday(s string) (time.Weekday, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	weekday, ok := weekdays[strings.Trim(fields[0], ".,!?")]
	return weekday, ok
}

// nextWeekday ближайший такой день строго после today (тот же день недели - через 7 дней)
func nextWeekday(today types.Date, weekday time.Weekday) types.Date {
	days := (int(weekday) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDays(days)
}

// upcomingWeekday ближайший такой день начиная с today
func upcomingWeekday(today types.Date, weekday time.Weekday) types.Date {
	days := (int(weekday) - int(today.Weekday()) + 7) % 7
	return today.AddDays(days)
}
