package handler

import (
	"net/http"
	"strconv"

	"learning_iq/internal/app/service"
	"learning_iq/internal/common"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/subjects", h.listSubjects)
	r.Get("/subjects/{subjectID}/topics", h.listSubjectTopics)
	r.Get("/topics", h.listTopics)
}

func (h *CatalogHandler) listSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.catalogService.Subjects(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, subjects)
}

func (h *CatalogHandler) listSubjectTopics(w http.ResponseWriter, r *http.Request) {
	subjectID, err := strconv.ParseInt(chi.URLParam(r, "subjectID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid subject id")
		return
	}
	topics, err := h.catalogService.TopicsBySubject(r.Context(), subjectID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, topics)
}

func (h *CatalogHandler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.catalogService.TopicsWithQuizzes(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, topics)
}
