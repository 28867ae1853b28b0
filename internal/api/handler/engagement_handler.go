package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"learning_iq/internal/api/middleware"
	"learning_iq/internal/app/service"
	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type EngagementHandler struct {
	engagementService *service.EngagementService
	defaultUserID     int64
}

func NewEngagementHandler(engagementService *service.EngagementService, defaultUserID int64) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService, defaultUserID: defaultUserID}
}

func (h *EngagementHandler) RegisterRoutes(r chi.Router) {
	r.Get("/leaderboard", h.leaderboard)
	r.Get("/reminder/{userID}", h.getReminder)
	r.Post("/reminder/{userID}", h.saveReminder)
	r.Post("/rating", h.rate)
	r.Get("/downloads/{userID}", h.listDownloads)
}

func (h *EngagementHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.engagementService.Leaderboard(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}

func (h *EngagementHandler) getReminder(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	reminder, err := h.engagementService.Reminder(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, reminder)
}

func (h *EngagementHandler) saveReminder(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		DailyStudyTime *string `json:"daily_study_time"`
		NotifyBrowser  *bool   `json:"notify_browser"`
		NotifyEmail    *bool   `json:"notify_email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reminder := &model.Reminder{
		UserID:         userID,
		DailyStudyTime: req.DailyStudyTime,
		NotifyBrowser:  true,
		NotifyEmail:    false,
	}
	if req.NotifyBrowser != nil {
		reminder.NotifyBrowser = *req.NotifyBrowser
	}
	if req.NotifyEmail != nil {
		reminder.NotifyEmail = *req.NotifyEmail
	}

	if err := h.engagementService.SaveReminder(r.Context(), reminder); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *EngagementHandler) rate(w http.ResponseWriter, r *http.Request) {
	userID := h.defaultUserID
	if authedID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = authedID
	}

	var req struct {
		Stars *int `json:"stars"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stars := 5
	if req.Stars != nil {
		stars = *req.Stars
	}

	if err := h.engagementService.Rate(r.Context(), userID, stars); err != nil {
		common.RespondWithFailure(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *EngagementHandler) listDownloads(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	downloads, err := h.engagementService.Downloads(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, downloads)
}
