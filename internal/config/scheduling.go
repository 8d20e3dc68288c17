package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/slots"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type schedulingFile struct {
	AvailableTimes   []string           `toml:"available_times" yaml:"available_times"`
	DaysAhead        *int               `toml:"days_ahead" yaml:"days_ahead"`
	ExcludedWeekdays *[]int             `toml:"excluded_weekdays" yaml:"excluded_weekdays"`
	DurationMinutes  *int               `toml:"duration_minutes" yaml:"duration_minutes"`
	MinNoticeMinutes *int               `toml:"min_notice_minutes" yaml:"min_notice_minutes"`
	BusinessHours    *businessHoursFile `toml:"business_hours" yaml:"business_hours"`
}

type businessHoursFile struct {
	Start string `toml:"start" yaml:"start"`
	End   string `toml:"end" yaml:"end"`
}

// LoadScheduling загружает политику расписания из TOML или YAML файла (по расширению)
// Отсутствие файла или любая ошибка приводят к значениям по умолчанию с предупреждением в лог
func LoadScheduling(path, timezone string, logger Logger) domain.SchedulingConfig {
	loc := loadLocation(timezone, logger)

	defaults := domain.DefaultSchedulingConfig()
	defaults.Location = loc

	if path == "" {
		logger.Info("LoadScheduling: no scheduling file configured, using defaults")
		return defaults
	}

	cfg, err := readScheduling(path, defaults)
	if err != nil {
		logger.Warn("LoadScheduling: failed to load %s, using defaults: %v", path, err)
		return defaults
	}

	logger.Info("LoadScheduling: loaded %s: %d times, %d days ahead, excluded weekdays %v",
		path, len(cfg.AvailableTimes), cfg.DaysAhead, cfg.ExcludedWeekdays)
	return cfg
}

func readScheduling(path string, base domain.SchedulingConfig) (domain.SchedulingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	var file schedulingFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return base, fmt.Errorf("unsupported scheduling file extension %q", ext)
	}
	if err != nil {
		return base, fmt.Errorf("decode %s: %w", path, err)
	}

	return file.apply(base)
}

func (f schedulingFile) apply(cfg domain.SchedulingConfig) (domain.SchedulingConfig, error) {
	if f.DaysAhead != nil {
		if *f.DaysAhead <= 0 {
			return cfg, fmt.Errorf("days_ahead must be positive, got %d", *f.DaysAhead)
		}
		cfg.DaysAhead = *f.DaysAhead
	}

	if f.DurationMinutes != nil {
		if *f.DurationMinutes <= 0 {
			return cfg, fmt.Errorf("duration_minutes must be positive, got %d", *f.DurationMinutes)
		}
		cfg.DurationMinutes = *f.DurationMinutes
	}

	if f.MinNoticeMinutes != nil {
		if *f.MinNoticeMinutes < 0 {
			return cfg, fmt.Errorf("min_notice_minutes must not be negative, got %d", *f.MinNoticeMinutes)
		}
		cfg.MinNoticeMinutes = *f.MinNoticeMinutes
	}

	if f.ExcludedWeekdays != nil {
		weekdays := make([]time.Weekday, 0, len(*f.ExcludedWeekdays))
		for _, idx := range *f.ExcludedWeekdays {
			w, ok := domain.WeekdayFromIndex(idx)
			if !ok {
				return cfg, fmt.Errorf("excluded_weekdays: index %d out of range 0..6", idx)
			}
			weekdays = append(weekdays, w)
		}
		cfg.ExcludedWeekdays = weekdays
	}

	if f.BusinessHours != nil {
		start, err := types.NewTimeStringFromString(f.BusinessHours.Start)
		if err != nil {
			return cfg, fmt.Errorf("business_hours.start: %w", err)
		}
		end, err := types.NewTimeStringFromString(f.BusinessHours.End)
		if err != nil {
			return cfg, fmt.Errorf("business_hours.end: %w", err)
		}
		if !start.IsBefore(end) {
			return cfg, fmt.Errorf("business_hours: start %s is not before end %s", start, end)
		}
		cfg.BusinessHours = domain.BusinessHours{Start: start, End: end}
	}

	switch {
	case len(f.AvailableTimes) > 0:
		times := make([]types.TimeString, 0, len(f.AvailableTimes))
		for _, raw := range f.AvailableTimes {
			t, err := types.NewTimeStringFromString(raw)
			if err != nil {
				return cfg, fmt.Errorf("available_times: %w", err)
			}
			times = append(times, t)
		}
		cfg.AvailableTimes = times
	case f.BusinessHours != nil:
		times, err := slots.StepTimes(cfg.BusinessHours.Start, cfg.BusinessHours.End, cfg.DurationMinutes)
		if err != nil {
			return cfg, fmt.Errorf("derive available_times: %w", err)
		}
		if len(times) == 0 {
			return cfg, fmt.Errorf("business_hours %s-%s fit no %d-minute slot",
				cfg.BusinessHours.Start, cfg.BusinessHours.End, cfg.DurationMinutes)
		}
		cfg.AvailableTimes = times
	}

	return cfg, nil
}

func loadLocation(timezone string, logger Logger) *time.Location {
	if timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("LoadScheduling: unknown timezone %q, using local: %v", timezone, err)
		return time.Local
	}
	return loc
}
