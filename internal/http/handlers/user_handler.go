// User HTTP handlers.
//
// This file exposes the REST endpoints for user profiles:
//   - GET /users/{id}  (public profile with statistics)
//   - GET /users/me    (the signed-in user's own profile)
//   - PUT /users/me    (edit username and bio)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/services"
)

// UpdateProfileRequest is the JSON payload for editing one's own profile.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	// Username is the new unique display name (1-64 chars).
	Username *string `json:"username,omitempty" example:"octocat"`
	// Bio is the profile description (up to 500 chars).
	Bio *string `json:"bio,omitempty" example:"Ships prompts for a living"`
}

// ProfileResponse combines a user record with its derived statistics block.
type ProfileResponse struct {
	User  *domain.User           `json:"user"`
	Stats *services.ProfileStats `json:"stats"`
}

// GetUserProfile godoc
// @ID          getUserProfile
// @Summary     View a user's profile
// @Description Returns the public profile and activity statistics for a user.
// @Tags        Users
// @Produce     json
//
// @Param       id  path  string  true  "User ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.ProfileResponse
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{id} [get]
func (h *Handlers) GetUserProfile(c *gin.Context) {
	h.profile(c, c.Param("id"))
}

// GetMe godoc
// @ID          getMe
// @Summary     View your own profile
// @Description Returns the signed-in user's profile and statistics.
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.ProfileResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/me [get]
func (h *Handlers) GetMe(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	h.profile(c, uid)
}

// profile assembles the shared profile-with-stats response.
func (h *Handlers) profile(c *gin.Context, id string) {
	ctx := c.Request.Context()
	u, err := h.userSvc.Get(ctx, id)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	stats, err := h.profileSvc.Stats(ctx, id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ProfileResponse{User: u, Stats: stats})
}

// UpdateMe godoc
// @ID          updateMe
// @Summary     Edit your own profile
// @Description Updates the signed-in user's username and/or bio.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.UpdateProfileRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid fields"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     409  {object}  handlers.ErrorResponse  "Username already taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/me [put]
func (h *Handlers) UpdateMe(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.userSvc.UpdateProfile(c.Request.Context(), uid, services.ProfileUpdate{
		Username: req.Username,
		Bio:      req.Bio,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidProfile:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid profile fields")
		case services.ErrUsernameTaken:
			fail(c, http.StatusConflict, ErrCodeConflict, "username already taken")
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}
