package tool_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
)

// ToolCatalogResponse HTTP response model
type ToolCatalogResponse struct {
	Tools []Tool `json:"tools"`
}

type Handler struct {
	tools []Tool
}

func NewHandler() *Handler {
	return &Handler{tools: Catalog()}
}

// Handle GET /api/v1/tools
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ToolCatalogResponse{Tools: h.tools})
}
