package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/http/middleware"
	"github.com/promptlog/go-experience-backend/internal/services"
)

func TestListComments_Success(t *testing.T) {
	var gotExpID string
	s := stubHandlers{
		comments: stubCommentSvc{
			list: func(_ context.Context, expID string, page, limit int) ([]domain.Comment, int64, error) {
				gotExpID = expID
				return []domain.Comment{{ID: "c-1", Content: "nice"}, {ID: "c-2", Content: "same"}}, 50, nil
			},
		},
	}
	w := doJSON(testRouter(t, s.build(), ""), http.MethodGet, "/experiences/e-1/comments?page=1&limit=20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if gotExpID != "e-1" {
		t.Errorf("experience id = %q, want e-1", gotExpID)
	}
	var resp ListCommentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Comments) != 2 || resp.Pagination.Total != 50 || resp.Pagination.TotalPages != 3 {
		t.Errorf("resp = %+v", resp)
	}
	if !resp.Pagination.HasNext {
		t.Error("page 1 of 3 must have a next page")
	}
}

func TestListComments_ErrorMappings(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		svcErr   error
		wantCode int
	}{
		{"non-integer page", "?page=x", nil, http.StatusBadRequest},
		{"out-of-range limit", "?limit=500", services.ErrInvalidPage, http.StatusBadRequest},
		{"unknown experience", "", services.ErrExperienceNotFound, http.StatusNotFound},
		{"storage failure", "", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stubHandlers{
				comments: stubCommentSvc{
					list: func(context.Context, string, int, int) ([]domain.Comment, int64, error) {
						return nil, 0, tc.svcErr
					},
				},
			}
			w := doJSON(testRouter(t, s.build(), ""), http.MethodGet, "/experiences/e-1/comments"+tc.query, "")
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}

func TestPostComment_CreatedVsReplayed(t *testing.T) {
	cases := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{"first submission", true, http.StatusCreated},
		{"idempotent replay", false, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stubHandlers{
				comments: stubCommentSvc{
					add: func(_ context.Context, uid, expID, content, _ string) (*services.CommentResult, error) {
						return &services.CommentResult{
							Comment:      &domain.Comment{ID: "c-1", UserID: uid, ExperienceID: expID, Content: content},
							Created:      tc.created,
							CommentCount: 7,
						}, nil
					},
				},
			}
			w := doJSON(testRouter(t, s.build(), "u-123"), http.MethodPost, "/experiences/e-1/comments", `{"content":"nice"}`)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var resp CommentResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Comment.Content != "nice" || resp.CommentCount != 7 {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}

// The handler must hand the validated Idempotency-Key through to the service.
func TestPostComment_ForwardsIdempotencyKey(t *testing.T) {
	var gotKey string
	s := stubHandlers{
		comments: stubCommentSvc{
			add: func(_ context.Context, _, _, _, idemKey string) (*services.CommentResult, error) {
				gotKey = idemKey
				return &services.CommentResult{Comment: &domain.Comment{ID: "c-1"}, Created: true, CommentCount: 1}, nil
			},
		},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u-123"); c.Next() })
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	h := s.build()
	r.POST("/experiences/:id/comments", h.PostComment)

	req := httptest.NewRequest(http.MethodPost, "/experiences/e-1/comments", strings.NewReader(`{"content":"nice"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderIdempotencyKey, "retry-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	if gotKey != "retry-1" {
		t.Errorf("idempotency key = %q, want retry-1", gotKey)
	}
}

func TestPostComment_ErrorMappings(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{"empty body", `{}`, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"blank content", `{"content":"   "}`, services.ErrInvalidComment, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown experience", `{"content":"hi"}`, services.ErrExperienceNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"storage failure", `{"content":"hi"}`, errors.New("boom"), http.StatusInternalServerError, ErrCodeCreateFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stubHandlers{
				comments: stubCommentSvc{
					add: func(context.Context, string, string, string, string) (*services.CommentResult, error) {
						return nil, tc.svcErr
					},
				},
			}
			w := doJSON(testRouter(t, s.build(), "u-123"), http.MethodPost, "/experiences/e-1/comments", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
			if e := decodeErr(t, w); e.Code != tc.wantErr {
				t.Errorf("code = %q, want %q", e.Code, tc.wantErr)
			}
		})
	}
}

func TestPostComment_Unauthenticated(t *testing.T) {
	w := doJSON(testRouter(t, stubHandlers{}.build(), ""), http.MethodPost, "/experiences/e-1/comments", `{"content":"hi"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
