// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate queries behind profile
// statistics and the experience rollup recomputation. Each function reads
// the live, non-deleted child rows; none of them write anything, so they are
// safe to call from services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
)

// ExperienceRollup is the recomputed derived state for one experience.
type ExperienceRollup struct {
	AverageRating float64 // mean of the prompts' average_rating values
	PromptCount   int64
	CommentCount  int64
	ReactionCount int64
}

// ComputeExperienceRollup recomputes an experience's derived fields from its
// live children. The average is the mean of the prompts' stored averages
// (prompt-of-averages), 0 when the experience has no prompts.
func ComputeExperienceRollup(ctx context.Context, db *gorm.DB, experienceID string) (ExperienceRollup, error) {
	var out ExperienceRollup
	h := db.WithContext(ctx)

	var row struct {
		N   int64
		Avg float64
	}
	err := h.Model(&domain.Prompt{}).
		Select("COUNT(*) AS n, COALESCE(AVG(average_rating),0) AS avg").
		Where("experience_id = ?", experienceID).
		Scan(&row).Error
	if err != nil {
		return out, err
	}
	out.PromptCount = row.N
	if row.N > 0 {
		out.AverageRating = row.Avg
	}

	if out.CommentCount, err = CountComments(ctx, db, experienceID); err != nil {
		return out, err
	}
	if out.ReactionCount, err = CountReactions(ctx, db, experienceID); err != nil {
		return out, err
	}
	return out, nil
}

// CountExperiencesByUser returns the user's live experience count.
func CountExperiencesByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Experience{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountPromptsByUser counts live prompts across the user's live experiences.
func CountPromptsByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Prompt{}).
		Joins("JOIN experiences ON experiences.id = prompts.experience_id AND experiences.deleted_at IS NULL").
		Where("experiences.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountReactionsReceived counts reactions on the user's experiences, all
// types combined. Distinct from CountReactionsGiven.
func CountReactionsReceived(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Reaction{}).
		Joins("JOIN experiences ON experiences.id = reactions.experience_id AND experiences.deleted_at IS NULL").
		Where("experiences.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountCommentsReceived counts comments on the user's experiences.
func CountCommentsReceived(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Joins("JOIN experiences ON experiences.id = comments.experience_id AND experiences.deleted_at IS NULL").
		Where("experiences.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountReactionsGiven counts reactions the user left on any experience.
func CountReactionsGiven(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Reaction{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountCommentsGiven counts comments the user wrote on any experience.
func CountCommentsGiven(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountRatingsGiven counts prompt ratings the user submitted.
func CountRatingsGiven(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.PromptRating{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// AssistantDistribution returns the count of the user's live experiences per
// ai_assistant_type. Types the user never posted under are absent.
func AssistantDistribution(ctx context.Context, db *gorm.DB, userID string) (map[string]int64, error) {
	var rows []struct {
		AIAssistantType string
		N               int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Experience{}).
		Select("ai_assistant_type, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("ai_assistant_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.AIAssistantType] = r.N
	}
	return out, nil
}
