package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError = "внутренняя ошибка сервера"

	// Тело запроса инструмента не больше 64 КБ
	maxBodyBytes = 64 << 10
)

// ErrorResponse HTTP модель ошибки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToolResponse общая часть ответа любого инструмента
// Message озвучивается абоненту как есть
type ToolResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToolOK формирует успешный ответ инструмента
func ToolOK(message string) ToolResponse {
	return ToolResponse{Success: true, Message: message}
}

// ToolFail формирует неуспешный ответ инструмента
func ToolFail(message string) ToolResponse {
	return ToolResponse{Success: false, Message: message}
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondTool пишет ответ инструмента; инструменты всегда отвечают 200,
// исход передается полем success
func RespondTool(w http.ResponseWriter, payload interface{}) {
	RespondJSON(w, http.StatusOK, payload)
}

// RespondError пишет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondInternalError пишет ошибку 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса в dst; пустое тело допустимо
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
