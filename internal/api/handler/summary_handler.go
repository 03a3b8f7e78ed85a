package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type SummaryHandler struct {
	summaryService service.ISummaryService
}

func NewSummaryHandler(summaryService service.ISummaryService) *SummaryHandler {
	if summaryService == nil {
		panic("summaryService cannot be nil")
	}
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryService.GetSummary(r.Context())
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load summary"))
		return
	}
	api.SuccessJSON(w, http.StatusOK, summary)
}
