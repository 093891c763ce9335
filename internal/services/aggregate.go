// Package services - aggregation engine
//
// This file owns every write to the derived columns: Prompt.AverageRating /
// RatingCount, the Experience rollup (AverageRating, PromptCount,
// CommentCount, ReactionCount), and User.TotalRating / RatingCount. Nothing
// else in the codebase updates these fields.
//
// Each recompute reads the full set of live child rows and rewrites the
// cached value, so the stored aggregates can never drift from the raw data:
// whichever transaction commits last has recomputed from the complete state.
// Rounding to two decimals happens on the way out of a recompute and never
// compounds, because the next recompute starts again from raw rows.
//
// All functions expect a transaction-bound handle; callers wrap the
// triggering write and the recomputes in a single db.Transaction.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
)

// recomputePromptRating refreshes a prompt's average_rating and rating_count
// from its live rating rows.
func recomputePromptRating(ctx context.Context, tx *gorm.DB, promptID string) error {
	count, avg, err := repo.PromptRatingStats(ctx, tx, promptID)
	if err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Model(&domain.Prompt{}).
		Where("id = ?", promptID).
		Updates(map[string]any{
			"average_rating": domain.Round2(avg),
			"rating_count":   count,
		}).Error
}

// recomputeExperienceRollup refreshes an experience's derived columns. The
// average is the mean of the prompts' stored averages, so call
// recomputePromptRating for any affected prompt first.
func recomputeExperienceRollup(ctx context.Context, tx *gorm.DB, experienceID string) error {
	ru, err := repo.ComputeExperienceRollup(ctx, tx, experienceID)
	if err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Model(&domain.Experience{}).
		Where("id = ?", experienceID).
		Updates(map[string]any{
			"average_rating": domain.Round2(ru.AverageRating),
			"prompt_count":   ru.PromptCount,
			"comment_count":  ru.CommentCount,
			"reaction_count": ru.ReactionCount,
		}).Error
}

// recomputeUserReceivedRating refreshes the rolling total/count of stars the
// user has received across all prompts under their live experiences.
func recomputeUserReceivedRating(ctx context.Context, tx *gorm.DB, userID string) error {
	total, count, err := repo.UserReceivedRatingStats(ctx, tx, userID)
	if err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"total_rating": total,
			"rating_count": count,
		}).Error
}
