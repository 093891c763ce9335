package handlers

// Shared test fixtures: function-backed stubs for every service interface
// consumed by the handlers, plus a router helper that injects an
// authenticated identity the way the session middleware would.

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
	"github.com/promptlog/go-experience-backend/internal/services"
)

type stubExpSvc struct {
	create   func(ctx context.Context, userID string, in services.ExperienceInput) (*domain.Experience, error)
	get      func(ctx context.Context, id string) (*services.ExperienceDetail, error)
	listFeed func(ctx context.Context, f repo.FeedFilter, page, limit int) (*services.FeedPage, error)
	update   func(ctx context.Context, userID, id string, upd services.ExperienceUpdate) (*domain.Experience, error)
	del      func(ctx context.Context, userID, id string) error
}

func (s stubExpSvc) Create(ctx context.Context, userID string, in services.ExperienceInput) (*domain.Experience, error) {
	return s.create(ctx, userID, in)
}
func (s stubExpSvc) Get(ctx context.Context, id string) (*services.ExperienceDetail, error) {
	return s.get(ctx, id)
}
func (s stubExpSvc) ListFeed(ctx context.Context, f repo.FeedFilter, page, limit int) (*services.FeedPage, error) {
	return s.listFeed(ctx, f, page, limit)
}
func (s stubExpSvc) Update(ctx context.Context, userID, id string, upd services.ExperienceUpdate) (*domain.Experience, error) {
	return s.update(ctx, userID, id, upd)
}
func (s stubExpSvc) Delete(ctx context.Context, userID, id string) error {
	return s.del(ctx, userID, id)
}

type stubCommentSvc struct {
	add  func(ctx context.Context, userID, experienceID, content, idemKey string) (*services.CommentResult, error)
	list func(ctx context.Context, experienceID string, page, limit int) ([]domain.Comment, int64, error)
}

func (s stubCommentSvc) Add(ctx context.Context, userID, experienceID, content, idemKey string) (*services.CommentResult, error) {
	return s.add(ctx, userID, experienceID, content, idemKey)
}
func (s stubCommentSvc) ListPage(ctx context.Context, experienceID string, page, limit int) ([]domain.Comment, int64, error) {
	return s.list(ctx, experienceID, page, limit)
}

type stubReactionSvc struct {
	react func(ctx context.Context, userID, experienceID, rtype string) (*services.ReactionResult, error)
}

func (s stubReactionSvc) React(ctx context.Context, userID, experienceID, rtype string) (*services.ReactionResult, error) {
	return s.react(ctx, userID, experienceID, rtype)
}

type stubRatingSvc struct {
	rate func(ctx context.Context, userID, promptID string, value int) (*services.RatingResult, error)
}

func (s stubRatingSvc) Rate(ctx context.Context, userID, promptID string, value int) (*services.RatingResult, error) {
	return s.rate(ctx, userID, promptID, value)
}

type stubUserSvc struct {
	get    func(ctx context.Context, id string) (*domain.User, error)
	update func(ctx context.Context, userID string, upd services.ProfileUpdate) (*domain.User, error)
}

func (s stubUserSvc) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.get(ctx, id)
}
func (s stubUserSvc) UpdateProfile(ctx context.Context, userID string, upd services.ProfileUpdate) (*domain.User, error) {
	return s.update(ctx, userID, upd)
}

type stubProfileSvc struct {
	stats func(ctx context.Context, userID string) (*services.ProfileStats, error)
}

func (s stubProfileSvc) Stats(ctx context.Context, userID string) (*services.ProfileStats, error) {
	return s.stats(ctx, userID)
}

// stubHandlers bundles all stubs; zero-value funcs panic if hit, which makes
// an unexpected service call an obvious test failure.
type stubHandlers struct {
	exp      stubExpSvc
	comments stubCommentSvc
	react    stubReactionSvc
	rate     stubRatingSvc
	users    stubUserSvc
	profiles stubProfileSvc
}

func (s stubHandlers) build() *Handlers {
	return New(s.exp, s.comments, s.react, s.rate, s.users, s.profiles)
}

// testRouter registers the public API routes on a bare engine. A non-empty
// uid simulates a validated session the way middleware.RequireAuth would.
func testRouter(t *testing.T, h *Handlers, uid string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if uid != "" {
		r.Use(func(c *gin.Context) { c.Set("userID", uid); c.Next() })
	}

	r.GET("/experiences", h.GetFeed)
	r.POST("/experiences", h.CreateExperience)
	r.GET("/experiences/:id", h.GetExperience)
	r.PUT("/experiences/:id", h.UpdateExperience)
	r.DELETE("/experiences/:id", h.DeleteExperience)
	r.GET("/experiences/:id/comments", h.ListComments)
	r.POST("/experiences/:id/comments", h.PostComment)
	r.POST("/experiences/:id/reactions", h.PostReaction)
	r.POST("/prompts/:id/ratings", h.RatePrompt)
	r.GET("/users/:id", h.GetUserProfile)
	r.PUT("/users/me", h.UpdateMe)
	return r
}

// doJSON issues a request with an optional JSON body and returns the recorder.
func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeErr unmarshals the standard error envelope.
func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error envelope: %v (body %q)", err, w.Body.String())
	}
	return e
}
