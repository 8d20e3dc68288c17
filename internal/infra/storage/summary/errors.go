package summary

import "errors"

var (
	// ErrSummaryExists возвращается при повторной записи итога той же сессии
	ErrSummaryExists = errors.New("summary.repository: summary already stored for session")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("summary.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("summary.repository: failed to execute query")

	// ErrMarshal возвращается, если не удалось сериализовать jsonb поля
	ErrMarshal = errors.New("summary.repository: failed to marshal payload")
)
