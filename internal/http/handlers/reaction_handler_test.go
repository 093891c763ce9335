package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/services"
)

func TestPostReaction_CreatedVsExisting(t *testing.T) {
	cases := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{"new reaction", true, http.StatusCreated},
		{"repeat reaction", false, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotType string
			s := stubHandlers{
				react: stubReactionSvc{
					react: func(_ context.Context, uid, expID, rtype string) (*services.ReactionResult, error) {
						gotType = rtype
						return &services.ReactionResult{
							Reaction:      &domain.Reaction{ID: "r-1", UserID: uid, ExperienceID: expID, Type: rtype},
							Created:       tc.created,
							ReactionCount: 4,
						}, nil
					},
				},
			}
			// Surrounding whitespace is trimmed before the service sees the type.
			w := doJSON(testRouter(t, s.build(), "u-123"), http.MethodPost, "/experiences/e-1/reactions", `{"type":" helpful "}`)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if gotType != "helpful" {
				t.Errorf("type = %q, want helpful", gotType)
			}
			var resp ReactionResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Reaction.Type != "helpful" || resp.ReactionCount != 4 {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}

func TestPostReaction_ErrorMappings(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{"missing type", `{}`, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown type", `{"type":"meh"}`, services.ErrInvalidReaction, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown experience", `{"type":"like"}`, services.ErrExperienceNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"storage failure", `{"type":"like"}`, errors.New("boom"), http.StatusInternalServerError, ErrCodeCreateFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stubHandlers{
				react: stubReactionSvc{
					react: func(context.Context, string, string, string) (*services.ReactionResult, error) {
						return nil, tc.svcErr
					},
				},
			}
			w := doJSON(testRouter(t, s.build(), "u-123"), http.MethodPost, "/experiences/e-1/reactions", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
			if e := decodeErr(t, w); e.Code != tc.wantErr {
				t.Errorf("code = %q, want %q", e.Code, tc.wantErr)
			}
		})
	}
}

func TestPostReaction_Unauthenticated(t *testing.T) {
	w := doJSON(testRouter(t, stubHandlers{}.build(), ""), http.MethodPost, "/experiences/e-1/reactions", `{"type":"like"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
