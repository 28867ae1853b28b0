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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/user/{userID}", h.getUser)
	r.Put("/user/{userID}", h.updateUser)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	// An authenticated caller always reads their own profile, whatever the
	// path says.
	if authedID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = authedID
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "User not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var upd model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var callerID *int64
	if authedID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		callerID = &authedID
	}

	if err := h.userService.UpdateProfile(r.Context(), callerID, userID, upd); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
