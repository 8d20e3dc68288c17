package frontend

import "errors"

var (
	// ErrNoParticipant возвращается, когда в сессии нет подключенного абонента
	ErrNoParticipant = errors.New("frontend client: no remote participant in session")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("frontend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе фронтенда
	ErrInvalidResponse = errors.New("frontend client: invalid response")
)
