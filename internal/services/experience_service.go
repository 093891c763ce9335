// Package services - ExperienceService
//
// This file implements ExperienceService, the application-level component
// that owns the lifecycle of experiences and their prompts: creation with
// nested prompts, the public filtered feed, the detail view, owner-only
// update, and the cascading delete.
//
// Observability: the feed and detail paths are OpenTelemetry-instrumented;
// spans include experience/user identifiers and pagination parameters.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
	"github.com/promptlog/go-experience-backend/internal/utils"
)

// Validation bounds for experiences and prompts.
const (
	MaxTitleRunes       = 200
	MaxDescriptionRunes = 5000
	MinPromptRunes      = 10
	MaxPromptRunes      = 5000
	MaxPromptMetaRunes  = 500
	MaxTags             = 10

	// Feed pagination bounds. Values outside these are rejected, not clamped.
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ValidatePage checks feed pagination parameters. Out-of-range values are a
// caller error (ErrInvalidPage), never silently adjusted.
func ValidatePage(page, limit int) error {
	if page < 1 || limit < 1 || limit > MaxPageLimit {
		return ErrInvalidPage
	}
	return nil
}

// ExperienceService implements the use-cases around experiences.
type ExperienceService struct {
	// DB is the database handle used for all experience operations.
	DB *gorm.DB
}

// PromptInput is the nested prompt payload accepted by Create.
type PromptInput struct {
	Content string
	Context string
	Results string
}

// ExperienceInput is the payload accepted by Create.
type ExperienceInput struct {
	Title           string
	Description     string
	AIAssistantType string
	Tags            []string
	RepoURLs        []string
	IsNews          bool
	Prompts         []PromptInput
}

// ExperienceUpdate carries the owner-editable fields for Update. Nil pointers
// mean "leave unchanged".
type ExperienceUpdate struct {
	Title       *string
	Description *string
	Tags        []string
	RepoURLs    []string
	IsNews      *bool
}

// ExperienceDetail is the full read model for one experience.
type ExperienceDetail struct {
	Experience     *domain.Experience
	Prompts        []domain.Prompt
	Author         *domain.User
	ReactionCounts map[string]int64
}

// FeedPage is the paginated feed read model. Pages is ceil(Total/limit).
type FeedPage struct {
	Experiences []domain.Experience
	Total       int64
	Page        int
	Pages       int
}

// validateInput checks the Create payload, returning ErrInvalidExperience or
// ErrInvalidPrompt. Tags are normalized in place.
func (in *ExperienceInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || utf8.RuneCountInString(in.Title) > MaxTitleRunes {
		return ErrInvalidExperience
	}
	if in.Description == "" || utf8.RuneCountInString(in.Description) > MaxDescriptionRunes {
		return ErrInvalidExperience
	}
	if !domain.ValidAssistantType(in.AIAssistantType) {
		return ErrInvalidExperience
	}
	in.Tags = domain.NormalizeTags(in.Tags)
	if len(in.Tags) > MaxTags {
		return ErrInvalidExperience
	}
	for _, u := range in.RepoURLs {
		if !domain.ValidRepoURL(u) {
			return ErrInvalidExperience
		}
	}
	if len(in.Prompts) == 0 {
		return ErrInvalidExperience
	}
	for i := range in.Prompts {
		if err := in.Prompts[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *PromptInput) validate() error {
	p.Content = strings.TrimSpace(p.Content)
	n := utf8.RuneCountInString(p.Content)
	if n < MinPromptRunes || n > MaxPromptRunes {
		return ErrInvalidPrompt
	}
	if utf8.RuneCountInString(p.Context) > MaxPromptMetaRunes ||
		utf8.RuneCountInString(p.Results) > MaxPromptMetaRunes {
		return ErrInvalidPrompt
	}
	return nil
}

// Create persists a new experience with its nested prompts on behalf of
// userID and returns the stored row with its rollup initialized.
//
// Validation: title 1-200, description 1-5000, known assistant type, at most
// MaxTags normalized tags, every repo URL a github.com URL, and at least one
// prompt with content 10-5000 runes. Failures return ErrInvalidExperience or
// ErrInvalidPrompt before anything is written.
func (s *ExperienceService) Create(ctx context.Context, userID string, in ExperienceInput) (*domain.Experience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var created *domain.Experience
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e := &domain.Experience{
			UserID:          userID,
			Title:           in.Title,
			Description:     in.Description,
			AIAssistantType: in.AIAssistantType,
			Tags:            domain.JoinList(in.Tags),
			RepoURLs:        domain.JoinList(in.RepoURLs),
			IsNews:          in.IsNews,
		}
		if err := repo.CreateExperience(ctx, tx, e); err != nil {
			return err
		}
		for _, p := range in.Prompts {
			if err := repo.CreatePrompt(ctx, tx, &domain.Prompt{
				ExperienceID: e.ID,
				Content:      p.Content,
				Context:      p.Context,
				Results:      p.Results,
			}); err != nil {
				return err
			}
		}
		if err := recomputeExperienceRollup(ctx, tx, e.ID); err != nil {
			return err
		}
		var err error
		created, err = repo.GetExperience(ctx, tx, e.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the detail view: the experience, its prompts in creation
// order, the author, and the per-type reaction breakdown.
func (s *ExperienceService) Get(ctx context.Context, id string) (*ExperienceDetail, error) {
	tr := otel.Tracer("services/ExperienceService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("experience.id", id)),
	)
	defer span.End()

	h := s.DB.WithContext(ctx)
	e, err := repo.GetExperience(ctx, h, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	prompts, err := repo.ListPromptsByExperience(ctx, h, id)
	if err != nil {
		return nil, err
	}
	counts, err := repo.ReactionCountsByType(ctx, h, id)
	if err != nil {
		return nil, err
	}
	author, err := repo.GetUser(ctx, h, e.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &ExperienceDetail{
		Experience:     e,
		Prompts:        prompts,
		Author:         author,
		ReactionCounts: counts,
	}, nil
}

// ListFeed returns a page of the public feed. Filters compose with AND;
// within the tags dimension any requested tag matches. Ordering is
// average_rating DESC, created_at DESC.
func (s *ExperienceService) ListFeed(ctx context.Context, f repo.FeedFilter, page, limit int) (*FeedPage, error) {
	tr := otel.Tracer("services/ExperienceService")
	ctx, span := tr.Start(ctx, "ListFeed",
		trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("limit", limit),
			attribute.String("filter.ai_assistant", f.AIAssistant),
		),
	)
	defer span.End()

	if err := ValidatePage(page, limit); err != nil {
		return nil, err
	}
	if f.AIAssistant != "" && !domain.ValidAssistantType(f.AIAssistant) {
		return nil, ErrInvalidPage
	}

	h := s.DB.WithContext(ctx)
	total, err := repo.CountExperiences(ctx, h, f)
	if err != nil {
		return nil, err
	}
	out := &FeedPage{
		Experiences: []domain.Experience{},
		Total:       total,
		Page:        page,
		Pages:       utils.PageCount(total, limit),
	}
	if total == 0 {
		return out, nil
	}
	out.Experiences, err = repo.ListExperiencesPage(ctx, h, f, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the owner's partial edit. The assistant type is immutable
// after creation; derived columns are untouchable from here.
func (s *ExperienceService) Update(ctx context.Context, userID, id string, upd ExperienceUpdate) (*domain.Experience, error) {
	fields := map[string]any{}
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		if t == "" || utf8.RuneCountInString(t) > MaxTitleRunes {
			return nil, ErrInvalidExperience
		}
		fields["title"] = t
	}
	if upd.Description != nil {
		d := strings.TrimSpace(*upd.Description)
		if d == "" || utf8.RuneCountInString(d) > MaxDescriptionRunes {
			return nil, ErrInvalidExperience
		}
		fields["description"] = d
	}
	if upd.Tags != nil {
		tags := domain.NormalizeTags(upd.Tags)
		if len(tags) > MaxTags {
			return nil, ErrInvalidExperience
		}
		fields["tags"] = domain.JoinList(tags)
	}
	if upd.RepoURLs != nil {
		for _, u := range upd.RepoURLs {
			if !domain.ValidRepoURL(u) {
				return nil, ErrInvalidExperience
			}
		}
		fields["repo_urls"] = domain.JoinList(upd.RepoURLs)
	}
	if upd.IsNews != nil {
		fields["is_news"] = *upd.IsNews
	}

	var updated *domain.Experience
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := repo.GetExperience(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExperienceNotFound
			}
			return err
		}
		if e.UserID != userID {
			return ErrNotOwner
		}
		if len(fields) > 0 {
			if err := repo.UpdateExperienceFields(ctx, tx, id, fields); err != nil {
				return err
			}
		}
		updated, err = repo.GetExperience(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete soft-deletes the experience and cascades to its prompts, comments,
// reactions, and the ratings under those prompts, then recomputes the
// owner's received-rating totals. Only the owner may delete.
func (s *ExperienceService) Delete(ctx context.Context, userID, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := repo.GetExperience(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExperienceNotFound
			}
			return err
		}
		if e.UserID != userID {
			return ErrNotOwner
		}
		if err := repo.SoftDeleteExperienceChildren(ctx, tx, id); err != nil {
			return err
		}
		if err := repo.SoftDeleteExperience(ctx, tx, id); err != nil {
			return err
		}
		return recomputeUserReceivedRating(ctx, tx, userID)
	})
}
