// Package services - RatingService
//
// This file implements RatingService, which governs how users rate prompts
// with 1-5 stars. A rating is an upsert keyed by (prompt, user): submitting
// again replaces the previous value rather than conflicting. Every accepted
// rating triggers the aggregation chain inside one transaction: the prompt's
// average, its experience's rollup, and the experience owner's
// received-rating totals.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
)

// RatingService implements the use-cases around prompt ratings.
type RatingService struct {
	// DB is the database handle used for all rating operations.
	DB *gorm.DB
}

// RatingResult describes the stored rating and the recomputed prompt
// aggregates after a Rate call.
type RatingResult struct {
	Rating        *domain.PromptRating
	Created       bool // false when an existing rating was replaced
	AverageRating float64
	RatingCount   int64
}

// Rate stores value as userID's rating of promptID.
//
// Semantics and validation:
//   - value must be within 1..5; otherwise ErrInvalidRating.
//   - promptID must exist and not be deleted; otherwise ErrPromptNotFound.
//   - One rating per (prompt, user): a repeat submission updates the stored
//     value in place. The rating count does not change on a repeat.
//
// The upsert and all three recomputes run in a single transaction, so a
// reader never observes a rating row whose aggregates have not caught up.
func (s *RatingService) Rate(ctx context.Context, userID, promptID string, value int) (*RatingResult, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}

	var out RatingResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prompt, err := repo.GetPrompt(ctx, tx, promptID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPromptNotFound
			}
			return err
		}

		row, created, err := repo.UpsertRating(ctx, tx, promptID, userID, value)
		if err != nil {
			return err
		}
		out.Rating = row
		out.Created = created

		if err := recomputePromptRating(ctx, tx, promptID); err != nil {
			return err
		}
		if err := recomputeExperienceRollup(ctx, tx, prompt.ExperienceID); err != nil {
			return err
		}
		exp, err := repo.GetExperience(ctx, tx, prompt.ExperienceID)
		if err != nil {
			return err
		}
		if err := recomputeUserReceivedRating(ctx, tx, exp.UserID); err != nil {
			return err
		}

		refreshed, err := repo.GetPrompt(ctx, tx, promptID)
		if err != nil {
			return err
		}
		out.AverageRating = refreshed.AverageRating
		out.RatingCount = refreshed.RatingCount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
