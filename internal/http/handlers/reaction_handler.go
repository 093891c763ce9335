// Reaction HTTP handlers.
//
// This file exposes the REST endpoint for reacting to experiences:
//   - POST /experiences/{id}/reactions  (upsert a typed reaction)
//
// Reactions are idempotent by design: repeating the same (user, experience,
// type) submission resolves to the existing row and never errors.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/services"
)

// PostReactionRequest is the JSON payload for reacting to an experience.
type PostReactionRequest struct {
	// Type is one of: helpful, creative, educational, innovative, like, bookmark.
	Type string `json:"type" binding:"required" example:"helpful"`
}

// ReactionResponse wraps the stored reaction and the experience's total
// reaction count after the call.
type ReactionResponse struct {
	Reaction      *domain.Reaction `json:"reaction"`
	ReactionCount int64            `json:"reaction_count"`
}

// PostReaction godoc
// @ID          postReaction
// @Summary     React to an experience
// @Description Records a typed reaction. Repeating the same reaction is a no-op that returns the existing row with 200.
// @Tags        Reactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Experience ID (UUID)"  format(uuid)
// @Param       body  body  handlers.PostReactionRequest  true  "Reaction payload"
//
// @Success     201  {object}  handlers.ReactionResponse
// @Success     200  {object}  handlers.ReactionResponse  "Reaction already existed"
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown reaction type"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     404  {object}  handlers.ErrorResponse  "Experience not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences/{id}/reactions [post]
func (h *Handlers) PostReaction(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	var req PostReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "reaction type required")
		return
	}

	res, err := h.reactionSvc.React(c.Request.Context(), uid, c.Param("id"), strings.TrimSpace(req.Type))
	if err != nil {
		switch err {
		case services.ErrInvalidReaction:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown reaction type")
		case services.ErrExperienceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "experience not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	status := http.StatusCreated
	if !res.Created {
		status = http.StatusOK
	}
	ok(c, status, ReactionResponse{Reaction: res.Reaction, ReactionCount: res.ReactionCount})
}
