package end_conversation

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	endConversation "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/end_conversation"
)

type Handler struct {
	useCase  EndConversationUseCase
	sessions handlers.SessionStore
	tools    handlers.ToolRecorder
	logger   Logger
}

func NewHandler(useCase EndConversationUseCase, sessions handlers.SessionStore, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		tools:    tools,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/end_conversation
// Всегда завершается успехом: ошибки хранилищ только логируются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req EndConversationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/end_conversation - Invalid request body, usage ignored: session=%s, error=%v", sessionID, err)
		req = EndConversationRequest{}
	}

	caller, err := handlers.LoadCaller(r.Context(), h.sessions, sessionID)
	if err != nil {
		h.logger.Warn("POST /tools/end_conversation - Failed to load session, summarizing anonymously: session=%s, error=%v", sessionID, err)
		caller = nil
	}

	result := h.useCase.Execute(r.Context(), &endConversation.Request{
		SessionID: sessionID,
		Caller:    caller,
		Usage:     req.Usage,
	})

	if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
		h.logger.Warn("POST /tools/end_conversation - Failed to delete session: session=%s, error=%v", sessionID, err)
	}

	h.logger.Info("POST /tools/end_conversation - Conversation ended: session=%s, summary_id=%s, persisted=%t",
		sessionID, result.Summary.ID, result.Persisted)

	resp := EndConversationResponse{
		ToolResponse: handlers.ToolOK(result.Summary.SummaryText),
		Summary:      fromSummary(result.Summary),
		Persisted:    result.Persisted,
	}
	h.tools.ObserveTool(domain.ToolEndConversation, resp.Success)
	handlers.RespondTool(w, resp)
}
