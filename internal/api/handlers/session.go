package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/infra/session"
)

// SessionIDVar имя переменной пути с ID сессии
const SessionIDVar = "sessionId"

// SessionStore хранилище абонентов сессий
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Caller, error)
	Save(ctx context.Context, sessionID string, caller domain.Caller) error
	Delete(ctx context.Context, sessionID string) error
}

// ToolRecorder учитывает исходы вызовов инструментов
type ToolRecorder interface {
	ObserveTool(tool string, success bool)
}

// SessionID возвращает ID сессии из пути запроса
func SessionID(r *http.Request) string {
	return mux.Vars(r)[SessionIDVar]
}

// LoadCaller возвращает абонента сессии или nil, если абонент еще не идентифицирован
func LoadCaller(ctx context.Context, store SessionStore, sessionID string) (*domain.Caller, error) {
	caller, err := store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return caller, nil
}
