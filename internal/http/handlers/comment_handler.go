// Comment HTTP handlers.
//
// This file exposes the REST endpoints for experience comments:
//   - GET  /experiences/{id}/comments  (list, paginated, newest first)
//   - POST /experiences/{id}/comments  (create; Idempotency-Key replays)
//
// A client that retries a POST with the same Idempotency-Key receives the
// originally stored comment with a 200 instead of a duplicate 201.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/http/middleware"
	"github.com/promptlog/go-experience-backend/internal/services"
	"github.com/promptlog/go-experience-backend/internal/utils"
)

// PostCommentRequest is the JSON payload for commenting on an experience.
type PostCommentRequest struct {
	// Content is the comment text (1-1000 chars).
	Content string `json:"content" binding:"required" example:"This prompt saved me an afternoon"`
}

// CommentResponse wraps a stored comment and the experience's comment count.
type CommentResponse struct {
	Comment      *domain.Comment `json:"comment"`
	CommentCount int64           `json:"comment_count"`
}

// ListCommentsResponse wraps a page of comments and pagination information.
type ListCommentsResponse struct {
	Comments   []domain.Comment `json:"comments"`
	Pagination Pagination       `json:"pagination"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List comments on an experience
// @Description Returns a page of comments, newest first.
// @Tags        Comments
// @Produce     json
//
// @Param       id     path   string  true   "Experience ID (UUID)"  format(uuid)
// @Param       page   query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int     false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListCommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid pagination"
// @Failure     404  {object}  handlers.ErrorResponse  "Experience not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences/{id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	page, limit, okParams := pageParams(c)
	if !okParams {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "page and limit must be integers")
		return
	}

	items, total, err := h.commentSvc.ListPage(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		switch err {
		case services.ErrInvalidPage:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid pagination parameters")
		case services.ErrExperienceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "experience not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}

	totalPages := utils.PageCount(total, limit)
	ok(c, http.StatusOK, ListCommentsResponse{
		Comments: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// PostComment godoc
// @ID          postComment
// @Summary     Comment on an experience
// @Description Appends a comment. Sending the same Idempotency-Key again returns the stored comment with 200 instead of creating a duplicate.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header  string  false  "Stable key for safe retries"
// @Param       id               path    string  true   "Experience ID (UUID)"  format(uuid)
// @Param       body             body    handlers.PostCommentRequest  true  "Comment payload"
//
// @Success     201  {object}  handlers.CommentResponse
// @Success     200  {object}  handlers.CommentResponse  "Idempotent replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     404  {object}  handlers.ErrorResponse  "Experience not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences/{id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content required (1-1000 chars)")
		return
	}

	idemKey, _ := middleware.GetIdempotencyKey(c)
	res, err := h.commentSvc.Add(c.Request.Context(), uid, c.Param("id"), req.Content, idemKey)
	if err != nil {
		switch err {
		case services.ErrInvalidComment:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content required (1-1000 chars)")
		case services.ErrExperienceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "experience not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	status := http.StatusCreated
	if !res.Created {
		status = http.StatusOK // replayed
	}
	ok(c, status, CommentResponse{Comment: res.Comment, CommentCount: res.CommentCount})
}
