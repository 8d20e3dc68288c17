package frontend

import "time"

// rpcRequest тело push-запроса во фронтенд сессии
type rpcRequest struct {
	ID         string      `json:"id"`
	Method     string      `json:"method"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// ErrorResponse модель ошибки фронтенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
