package handlers

import (
	"net/http"

	"github.com/adbonpastor/church-api/internal/usecase"
)

type DashboardHandler struct {
	UC *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{UC: uc}
}

// Handle (GET /admin/dashboard)
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.UC.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao montar o painel")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
