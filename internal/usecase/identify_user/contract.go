package identify_user

import (
	"context"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Find(ctx context.Context, contact string) (*domain.UserProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
