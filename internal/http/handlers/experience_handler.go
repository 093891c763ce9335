// Experience HTTP handlers.
//
// This file exposes the REST endpoints for experience resources:
//   - POST   /experiences          (publish, with nested prompts)
//   - GET    /experiences          (public filtered feed, paginated)
//   - GET    /experiences/{id}     (detail view)
//   - PUT    /experiences/{id}     (owner-only partial update)
//   - DELETE /experiences/{id}     (owner-only cascading delete)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
	"github.com/promptlog/go-experience-backend/internal/services"
	"github.com/promptlog/go-experience-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ExperienceService defines the experience lifecycle operations consumed by
// HTTP handlers. Implementations must be safe for concurrent use and honor
// the provided context.
type ExperienceService interface {
	// Create publishes an experience with nested prompts for userID.
	Create(ctx context.Context, userID string, in services.ExperienceInput) (*domain.Experience, error)
	// Get returns the detail view of one experience.
	Get(ctx context.Context, id string) (*services.ExperienceDetail, error)
	// ListFeed returns a page of the public feed under the given filter.
	ListFeed(ctx context.Context, f repo.FeedFilter, page, limit int) (*services.FeedPage, error)
	// Update applies an owner-only partial edit.
	Update(ctx context.Context, userID, id string, upd services.ExperienceUpdate) (*domain.Experience, error)
	// Delete soft-deletes an experience and everything under it.
	Delete(ctx context.Context, userID, id string) error
}

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	// Add appends a comment; a repeated idemKey replays the stored comment.
	Add(ctx context.Context, userID, experienceID, content, idemKey string) (*services.CommentResult, error)
	// ListPage returns a page of an experience's comments and the total.
	ListPage(ctx context.Context, experienceID string, page, limit int) ([]domain.Comment, int64, error)
}

// ReactionService defines reaction operations consumed by HTTP handlers.
type ReactionService interface {
	// React upserts a typed reaction on an experience.
	React(ctx context.Context, userID, experienceID, rtype string) (*services.ReactionResult, error)
}

// RatingService defines prompt rating operations consumed by HTTP handlers.
type RatingService interface {
	// Rate upserts userID's 1-5 star rating of a prompt.
	Rate(ctx context.Context, userID, promptID string, value int) (*services.RatingResult, error)
}

// UserService defines account operations consumed by HTTP handlers.
type UserService interface {
	// Get returns a user by id.
	Get(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the user's own profile edit.
	UpdateProfile(ctx context.Context, userID string, upd services.ProfileUpdate) (*domain.User, error)
}

// ProfileService defines the profile statistics read model.
type ProfileService interface {
	// Stats assembles the statistics block for a user.
	Stats(ctx context.Context, userID string) (*services.ProfileStats, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for experiences, comments, reactions,
// ratings, and user profiles. It depends on abstract service interfaces to
// keep transport concerns separate from business logic.
type Handlers struct {
	expSvc      ExperienceService
	commentSvc  CommentService
	reactionSvc ReactionService
	ratingSvc   RatingService
	userSvc     UserService
	profileSvc  ProfileService
}

// New constructs a Handlers instance bound to the given services.
func New(exp ExperienceService, comments CommentService, reactions ReactionService,
	ratings RatingService, users UserService, profiles ProfileService) *Handlers {
	return &Handlers{
		expSvc:      exp,
		commentSvc:  comments,
		reactionSvc: reactions,
		ratingSvc:   ratings,
		userSvc:     users,
		profileSvc:  profiles,
	}
}

// userID extracts the authenticated user id set by the auth middleware.
// Routes that reach a mutating handler are always behind RequireAuth, so an
// empty result only happens on misconfigured routes and fails closed.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// requireUserID resolves the authenticated user or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return "", false
	}
	return uid, true
}

//
// DTOs
//

// PromptPayload is the nested prompt body inside CreateExperienceRequest.
type PromptPayload struct {
	// Content is the instruction text given to the assistant (10-5000 chars).
	Content string `json:"content" binding:"required" example:"Refactor the session store to use context-aware methods"`
	// Context optionally describes the situation the prompt was used in.
	Context string `json:"context,omitempty" example:"Legacy codebase, no tests"`
	// Results optionally describes what the assistant produced.
	Results string `json:"results_achieved,omitempty" example:"Clean diff, all handlers migrated"`
}

// CreateExperienceRequest is the JSON payload for publishing an experience.
type CreateExperienceRequest struct {
	Title           string          `json:"title" binding:"required" example:"Migrating a monolith with Claude"`
	Description     string          `json:"description" binding:"required" example:"How I used an AI assistant to split a legacy service"`
	AIAssistantType string          `json:"ai_assistant_type" binding:"required" example:"claude"`
	Tags            []string        `json:"tags,omitempty" example:"go,refactoring"`
	RepoURLs        []string        `json:"repo_urls,omitempty" example:"https://github.com/acme/monolith"`
	IsNews          bool            `json:"is_news,omitempty"`
	Prompts         []PromptPayload `json:"prompts" binding:"required,min=1"`
}

// UpdateExperienceRequest is the JSON payload for the owner's partial edit.
// Absent fields are left unchanged; the assistant type is immutable.
type UpdateExperienceRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	RepoURLs    []string `json:"repo_urls,omitempty"`
	IsNews      *bool    `json:"is_news,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// FeedResponse wraps a page of the experience feed.
type FeedResponse struct {
	Experiences []domain.Experience `json:"experiences"`
	Pagination  Pagination          `json:"pagination"`
}

// ExperienceDetailResponse is the full detail view of one experience.
type ExperienceDetailResponse struct {
	Experience     *domain.Experience `json:"experience"`
	Prompts        []domain.Prompt    `json:"prompts"`
	Author         *domain.User       `json:"author,omitempty"`
	ReactionCounts map[string]int64   `json:"reaction_counts"`
}

//
// Helpers
//

// pageParams parses page/limit query parameters strictly: non-integer values
// are a client error, and range checks happen in the service so out-of-range
// values surface as ErrInvalidPage rather than being clamped.
func pageParams(c *gin.Context) (page, limit int, ok bool) {
	page, okP := utils.ParseIntParam(c.Query("page"), 1)
	limit, okL := utils.ParseIntParam(c.Query("limit"), services.DefaultPageLimit)
	if !okP || !okL {
		return 0, 0, false
	}
	return page, limit, true
}

//
// Handlers
//

// CreateExperience godoc
// @ID          createExperience
// @Summary     Publish an experience
// @Description Publishes an experience with at least one prompt and returns the stored resource.
// @Tags        Experiences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateExperienceRequest  true  "Experience payload"
//
// @Success     201  {object}  domain.Experience
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences [post]
func (h *Handlers) CreateExperience(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	in := services.ExperienceInput{
		Title:           req.Title,
		Description:     req.Description,
		AIAssistantType: req.AIAssistantType,
		Tags:            req.Tags,
		RepoURLs:        req.RepoURLs,
		IsNews:          req.IsNews,
	}
	for _, p := range req.Prompts {
		in.Prompts = append(in.Prompts, services.PromptInput{
			Content: p.Content,
			Context: p.Context,
			Results: p.Results,
		})
	}

	e, err := h.expSvc.Create(c.Request.Context(), uid, in)
	if err != nil {
		switch err {
		case services.ErrInvalidExperience, services.ErrInvalidPrompt:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, e)
}

// GetFeed godoc
// @ID          getFeed
// @Summary     Browse the experience feed
// @Description Returns a page of published experiences ordered by average rating, newest first within ties. Filters compose with AND.
// @Tags        Experiences
// @Produce     json
//
// @Param       page          query  int     false "Page number"        minimum(1) default(1)
// @Param       limit         query  int     false "Items per page"     minimum(1) maximum(100) default(20)
// @Param       ai_assistant  query  string  false "Assistant type filter" Enums(github-copilot, claude, gpt, cursor, other)
// @Param       tags          query  string  false "Comma-separated tags; any match" example(go,testing)
// @Param       search        query  string  false "Case-insensitive substring over title, description, tags"
//
// @Success     200  {object}  handlers.FeedResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid filter or pagination"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences [get]
func (h *Handlers) GetFeed(c *gin.Context) {
	page, limit, okParams := pageParams(c)
	if !okParams {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "page and limit must be integers")
		return
	}

	f := repo.FeedFilter{
		AIAssistant: strings.TrimSpace(c.Query("ai_assistant")),
		Search:      strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("tags")); raw != "" {
		f.Tags = domain.SplitList(raw)
	}

	feed, err := h.expSvc.ListFeed(c.Request.Context(), f, page, limit)
	if err != nil {
		switch err {
		case services.ErrInvalidPage:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid pagination or filter parameters")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, FeedResponse{
		Experiences: feed.Experiences,
		Pagination: Pagination{
			Page:       feed.Page,
			Limit:      limit,
			Total:      feed.Total,
			TotalPages: feed.Pages,
			HasNext:    feed.Page < feed.Pages,
		},
	})
}

// GetExperience godoc
// @ID          getExperience
// @Summary     Get one experience
// @Description Returns the experience with its prompts, author, and per-type reaction counts.
// @Tags        Experiences
// @Produce     json
//
// @Param       id  path  string  true  "Experience ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.ExperienceDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Experience not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences/{id} [get]
func (h *Handlers) GetExperience(c *gin.Context) {
	d, err := h.expSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrExperienceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "experience not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ExperienceDetailResponse{
		Experience:     d.Experience,
		Prompts:        d.Prompts,
		Author:         d.Author,
		ReactionCounts: d.ReactionCounts,
	})
}

// UpdateExperience godoc
// @ID          updateExperience
// @Summary     Edit an experience
// @Description Applies a partial edit to an experience owned by the current user. The assistant type cannot change.
// @Tags        Experiences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Experience ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateExperienceRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Experience
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Experience not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences/{id} [put]
func (h *Handlers) UpdateExperience(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	e, err := h.expSvc.Update(c.Request.Context(), uid, c.Param("id"), services.ExperienceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		RepoURLs:    req.RepoURLs,
		IsNews:      req.IsNews,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidExperience:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrNotOwner:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "only the owner may edit this experience")
		case services.ErrExperienceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "experience not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, e)
}

// DeleteExperience godoc
// @ID          deleteExperience
// @Summary     Delete an experience
// @Description Soft-deletes an experience owned by the current user, cascading to prompts, comments, reactions, and ratings.
// @Tags        Experiences
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Experience ID (UUID)"  format(uuid)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Not signed in"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Experience not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /experiences/{id} [delete]
func (h *Handlers) DeleteExperience(c *gin.Context) {
	uid, okAuth := requireUserID(c)
	if !okAuth {
		return
	}
	if err := h.expSvc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		switch err {
		case services.ErrNotOwner:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "only the owner may delete this experience")
		case services.ErrExperienceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "experience not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
