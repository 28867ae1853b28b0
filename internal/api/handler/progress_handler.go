package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"learning_iq/internal/app/service"
	"learning_iq/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/progress/{userID}/{topicID}", h.recordAttempt)
	r.Post("/quiz", h.submitQuiz)
	r.Get("/test-scores/{userID}", h.testScores)
}

type recordAttemptRequest struct {
	Score       float64 `json:"score"`
	TimeSeconds *int    `json:"time_seconds"`
	Confidence  *int    `json:"confidence"`
}

func (h *ProgressHandler) recordAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	topicID, err := strconv.ParseInt(chi.URLParam(r, "topicID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid topic id")
		return
	}

	var req recordAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Confidence == nil {
		defaultConfidence := 70
		req.Confidence = &defaultConfidence
	}

	score, err := h.progressService.RecordAttempt(r.Context(), userID, topicID, req.Score, req.TimeSeconds, req.Confidence)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "score": score})
}

// submitQuiz reports any failure as a 400 with the error message; the
// original API deliberately folds caller errors and internal faults together
// on this path.
func (h *ProgressHandler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	var req service.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.progressService.SubmitQuiz(r.Context(), req)
	if err != nil {
		common.RespondWithFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *ProgressHandler) testScores(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	scores, err := h.progressService.TestScores(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, scores)
}
