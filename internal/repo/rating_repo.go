// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// PromptRating model.
//
// Ratings are keyed by (prompt_id, user_id): a repeated submission from the
// same user replaces the stored value in place (last write wins) rather than
// inserting a duplicate. UpsertRating implements that contract inside the
// caller's transaction; the unique index backs it up against races.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
)

// UpsertRating stores the user's rating for a prompt, returning the row and
// whether a new row was created (false means an existing rating was updated
// in place).
func UpsertRating(ctx context.Context, db *gorm.DB, promptID, userID string, rating int) (*domain.PromptRating, bool, error) {
	var existing domain.PromptRating
	err := db.WithContext(ctx).
		Where("prompt_id = ? AND user_id = ?", promptID, userID).
		First(&existing).Error
	if err == nil {
		res := db.WithContext(ctx).
			Model(&domain.PromptRating{}).
			Where("id = ?", existing.ID).
			Update("rating", rating)
		if res.Error != nil {
			return nil, false, res.Error
		}
		existing.Rating = rating
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	r := &domain.PromptRating{
		ID:        uuid.NewString(),
		PromptID:  promptID,
		UserID:    userID,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, false, err
	}
	return r, true, nil
}

// PromptRatingStats returns the count and arithmetic mean of the live rating
// rows for a prompt. The average is 0 (not NaN) when there are no ratings.
func PromptRatingStats(ctx context.Context, db *gorm.DB, promptID string) (count int64, avg float64, err error) {
	q := db.WithContext(ctx).Model(&domain.PromptRating{}).Where("prompt_id = ?", promptID)
	if err = q.Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	var row struct{ Avg float64 }
	if err = q.Select("AVG(rating) AS avg").Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return count, row.Avg, nil
}

// UserReceivedRatingStats sums the live ratings attached to prompts whose
// experiences belong to userID. This drives the rolling total_rating /
// rating_count columns on the user row.
func UserReceivedRatingStats(ctx context.Context, db *gorm.DB, userID string) (total int64, count int64, err error) {
	var row struct {
		Total int64
		N     int64
	}
	err = db.WithContext(ctx).
		Model(&domain.PromptRating{}).
		Select("COALESCE(SUM(prompt_ratings.rating),0) AS total, COUNT(*) AS n").
		Joins("JOIN prompts ON prompts.id = prompt_ratings.prompt_id AND prompts.deleted_at IS NULL").
		Joins("JOIN experiences ON experiences.id = prompts.experience_id AND experiences.deleted_at IS NULL").
		Where("experiences.user_id = ?", userID).
		Scan(&row).Error
	return row.Total, row.N, err
}
