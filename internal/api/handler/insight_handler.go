package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"learning_iq/internal/app/service"
	"learning_iq/internal/common"

	"github.com/go-chi/chi/v5"
)

type InsightHandler struct {
	insightService *service.InsightService
}

func NewInsightHandler(insightService *service.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

func (h *InsightHandler) RegisterRoutes(r chi.Router) {
	r.Get("/recommendations/{userID}", h.recommendations)
	r.Get("/gaps/{userID}", h.gaps)
	r.Get("/extra-knowledge/{topicName}", h.extraKnowledge)
}

// recommendations keeps the original wire shape: the recommendation object is
// serialized to a string and wrapped again in JSON. Existing clients parse
// that inner string, so the double encoding stays.
func (h *InsightHandler) recommendations(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)

	rec := h.insightService.Recommendations(r.Context(), userID)
	encoded, err := json.Marshal(rec)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"recommendations": string(encoded)})
}

func (h *InsightHandler) gaps(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)

	report, err := h.insightService.Gaps(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, report)
}

func (h *InsightHandler) extraKnowledge(w http.ResponseWriter, r *http.Request) {
	topicName := strings.TrimSpace(strings.ReplaceAll(chi.URLParam(r, "topicName"), "%20", " "))
	common.RespondWithJSON(w, http.StatusOK, h.insightService.ExtraKnowledge(topicName))
}
