// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Experience
// model, including the composable feed query used by the public listing.
//
// Feed filtering semantics:
//   - AIAssistant is an exact match on ai_assistant_type.
//   - Tags match when the experience has ANY of the requested tags
//     (OR within the dimension). Tags are stored comma-delimited, so each
//     tag is matched against the list wrapped in delimiters.
//   - Search is a case-insensitive substring match against title,
//     description, or the tag text.
//   - Dimensions compose conjunctively (AND across dimensions).
//
// Ordering is deterministic: average_rating DESC, created_at DESC. Soft
// deleted rows are excluded by GORM's default scope.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
)

// FeedFilter carries the optional predicate set for the experience feed.
// Zero values mean "no filter" for their dimension.
type FeedFilter struct {
	AIAssistant string
	Tags        []string
	Search      string
}

// feedQuery applies the filter predicates to a base experiences query.
func feedQuery(db *gorm.DB, f FeedFilter) *gorm.DB {
	q := db.Model(&domain.Experience{})
	if f.AIAssistant != "" {
		q = q.Where("ai_assistant_type = ?", f.AIAssistant)
	}
	if len(f.Tags) > 0 {
		// ANY-of semantics: wrap the stored list in delimiters so that
		// "go" does not match "golang".
		tagCond := db.Session(&gorm.Session{NewDB: true})
		first := true
		for _, t := range f.Tags {
			pat := "%," + strings.ToLower(strings.TrimSpace(t)) + ",%"
			if first {
				tagCond = tagCond.Where("(',' || LOWER(tags) || ',') LIKE ?", pat)
				first = false
			} else {
				tagCond = tagCond.Or("(',' || LOWER(tags) || ',') LIKE ?", pat)
			}
		}
		q = q.Where(tagCond)
	}
	if f.Search != "" {
		pat := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?", pat, pat, pat)
	}
	return q
}

// CountExperiences returns the number of non-deleted experiences matching
// the filter.
func CountExperiences(ctx context.Context, db *gorm.DB, f FeedFilter) (int64, error) {
	var total int64
	err := feedQuery(db.WithContext(ctx), f).Count(&total).Error
	return total, err
}

// ListExperiencesPage returns a page of experiences matching the filter,
// ordered by average_rating DESC then created_at DESC. The caller computes
// offset as (page-1)*limit.
func ListExperiencesPage(ctx context.Context, db *gorm.DB, f FeedFilter, offset, limit int) ([]domain.Experience, error) {
	var out []domain.Experience
	err := feedQuery(db.WithContext(ctx), f).
		Order("average_rating DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CreateExperience inserts a new Experience row with a generated UUID.
func CreateExperience(ctx context.Context, db *gorm.DB, e *domain.Experience) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(e).Error
}

// GetExperience fetches a single experience by ID, or ErrNotFound if it is
// missing or soft-deleted.
func GetExperience(ctx context.Context, db *gorm.DB, id string) (*domain.Experience, error) {
	var e domain.Experience
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExperiencesByUser returns the user's non-deleted experiences in
// creation order (oldest first). The stable order matters downstream: the
// profile tag ranking breaks frequency ties by first appearance.
func ListExperiencesByUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.Experience, error) {
	var out []domain.Experience
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// UpdateExperienceFields applies a partial update to an experience row.
// Derived columns must never be passed here; they belong to the aggregation
// functions. Returns ErrNotFound when no row matched.
func UpdateExperienceFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Experience{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteExperience marks the experience deleted. Child rows are handled
// by the service layer cascade (SoftDeleteExperienceChildren) inside the
// same transaction.
func SoftDeleteExperience(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteExperienceChildren soft-deletes the prompts, comments, and
// reactions owned by an experience, and the ratings under its prompts.
// Cascading is explicit application logic rather than a database rule so the
// core stays persistence-agnostic.
func SoftDeleteExperienceChildren(ctx context.Context, db *gorm.DB, experienceID string) error {
	h := db.WithContext(ctx)
	if err := h.Where("prompt_id IN (?)",
		h.Session(&gorm.Session{NewDB: true}).
			Model(&domain.Prompt{}).
			Select("id").
			Where("experience_id = ?", experienceID),
	).Delete(&domain.PromptRating{}).Error; err != nil {
		return err
	}
	if err := h.Where("experience_id = ?", experienceID).Delete(&domain.Prompt{}).Error; err != nil {
		return err
	}
	if err := h.Where("experience_id = ?", experienceID).Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	return h.Where("experience_id = ?", experienceID).Delete(&domain.Reaction{}).Error
}
