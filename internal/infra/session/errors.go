package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда абонент сессии еще не идентифицирован
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибках хранилища сессий
	ErrStore = errors.New("session.store: store error")
)
