// Rating HTTP handlers.
//
// This file exposes the REST endpoint for rating prompts:
//   - POST /prompts/{id}/ratings  (upsert a 1-5 star rating)
//
// One rating exists per (prompt, user); a repeat submission replaces the
// stored value in place rather than conflicting. The response carries the
// prompt's recomputed aggregates so clients can refresh without a re-fetch.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/services"
)

// RatePromptRequest is the JSON payload for rating a prompt.
type RatePromptRequest struct {
	// Rating is the star value, 1 through 5.
	Rating int `json:"rating" binding:"required,min=1,max=5" example:"4"`
}

// RatingResponse wraps the stored rating and the prompt's recomputed
// aggregates.
type RatingResponse struct {
	Rating        *domain.PromptRating `json:"rating"`
	AverageRating float64              `json:"average_rating"`
	RatingCount   int64                `json:"rating_count"`
}

// RatePrompt godoc
// @ID          ratePrompt
// @Summary     Rate a prompt
// @Description Stores the caller's 1-5 star rating of a prompt. A repeat submission replaces the previous value and returns 200.
// @Tags        Ratings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Prompt ID (UUID)"  format(uuid)
// @Param       body  body  handlers.RatePromptRequest  true  "Rating payload"
//
// @Success     201  {object}  handlers.RatingResponse
// @Success     200  {object}  handlers.RatingResponse  "Rating replaced"
// @Failure     400  {object}  handlers.ErrorResponse  "Rating outside 1-5"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     404  {object}  handlers.ErrorResponse  "Prompt not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /prompts/{id}/ratings [post]
func (h *Handlers) RatePrompt(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	var req RatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rating must be between 1 and 5")
		return
	}

	res, err := h.ratingSvc.Rate(c.Request.Context(), uid, c.Param("id"), req.Rating)
	if err != nil {
		switch err {
		case services.ErrInvalidRating:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rating must be between 1 and 5")
		case services.ErrPromptNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "prompt not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	status := http.StatusCreated
	if !res.Created {
		status = http.StatusOK
	}
	ok(c, status, RatingResponse{
		Rating:        res.Rating,
		AverageRating: res.AverageRating,
		RatingCount:   res.RatingCount,
	})
}
