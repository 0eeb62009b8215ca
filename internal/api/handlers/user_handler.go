package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/uptraa/platform/internal/api/middleware"
	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/models"
	"github.com/uptraa/platform/internal/services"
	"github.com/uptraa/platform/internal/validation"
	appErr "github.com/uptraa/platform/pkg/errors"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func currentUser(w http.ResponseWriter, r *http.Request) (*models.Profile, bool) {
	me, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondError(w, r, appErr.Unauthorized("Authentication required"))
	}
	return me, ok
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	me, ok := currentUser(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, "Profile fetched successfully", map[string]any{"user": me})
}

// Get returns any user's public profile. Ids that are not UUIDs cannot exist.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, appErr.NotFound("User not found"))
		return
	}
	user, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "User profile fetched successfully", map[string]any{"user": user})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	me, ok := currentUser(w, r)
	if !ok {
		return
	}
	payload, err := decodeJSON(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in validation.UpdateProfileInput
	if err := validation.Bind(payload, &in, validation.Strict); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), me, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "User profile updated successfully", map[string]any{"user": user})
}

func (h *UserHandler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, h.svc.UpdateProfilePicture, "Profile picture updated successfully")
}

func (h *UserHandler) UpdateResume(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, h.svc.UpdateResume, "Resume updated successfully")
}

func (h *UserHandler) updateMedia(w http.ResponseWriter, r *http.Request,
	update func(context.Context, *models.Profile, *media.File) (*models.Profile, error), message string) {
	me, ok := currentUser(w, r)
	if !ok {
		return
	}
	file, err := formFile(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := update(r.Context(), me, file)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, message, map[string]any{"user": user})
}

func (h *UserHandler) AllSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.AllSkills(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "All skills fetched successfully", map[string]any{"skills": skills})
}

func (h *UserHandler) MySkills(w http.ResponseWriter, r *http.Request) {
	me, ok := currentUser(w, r)
	if !ok {
		return
	}
	skills, err := h.svc.UserSkills(r.Context(), me.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "User skills fetched successfully", map[string]any{"userSkills": skills})
}

func (h *UserHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	me, in, ok := h.skillRequest(w, r)
	if !ok {
		return
	}
	link, err := h.svc.AddSkill(r.Context(), me.ID, in.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Skill added to user successfully", map[string]any{"userSkill": link})
}

func (h *UserHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	me, in, ok := h.skillRequest(w, r)
	if !ok {
		return
	}
	link, err := h.svc.RemoveSkill(r.Context(), me.ID, in.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Skill removed from user successfully", map[string]any{"userSkill": link})
}

func (h *UserHandler) skillRequest(w http.ResponseWriter, r *http.Request) (*models.Profile, validation.SkillNameInput, bool) {
	var in validation.SkillNameInput
	me, ok := currentUser(w, r)
	if !ok {
		return nil, in, false
	}
	payload, err := decodeJSON(w, r)
	if err != nil {
		respondError(w, r, err)
		return nil, in, false
	}
	if err := validation.Bind(payload, &in, validation.Strict); err != nil {
		respondError(w, r, err)
		return nil, in, false
	}
	return me, in, true
}
