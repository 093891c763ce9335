// Package services - ReactionService
//
// This file implements ReactionService, which records typed endorsements on
// experiences. A reaction is an idempotent upsert keyed by
// (experience, user, type); the same user can attach several different types
// to one experience, but never the same type twice.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
)

// ReactionService implements the use-cases around experience reactions.
type ReactionService struct {
	// DB is the database handle used for all reaction operations.
	DB *gorm.DB
}

// ReactionResult describes the stored reaction and the experience's reaction
// count after a React call.
type ReactionResult struct {
	Reaction      *domain.Reaction
	Created       bool // false when the same reaction already existed
	ReactionCount int64
}

// React records a reaction of rtype on experienceID by userID.
//
// Semantics and validation:
//   - rtype must be a known reaction type; otherwise ErrInvalidReaction.
//   - experienceID must exist and not be deleted; otherwise
//     ErrExperienceNotFound.
//   - A repeated (experience, user, type) submission resolves to the existing
//     row and leaves the count unchanged.
//
// The upsert and the reaction-count recompute run in one transaction.
func (s *ReactionService) React(ctx context.Context, userID, experienceID, rtype string) (*ReactionResult, error) {
	if !domain.ValidReactionType(rtype) {
		return nil, ErrInvalidReaction
	}

	var out ReactionResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetExperience(ctx, tx, experienceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExperienceNotFound
			}
			return err
		}

		row, created, err := repo.UpsertReaction(ctx, tx, experienceID, userID, rtype)
		if err != nil {
			return err
		}
		out.Reaction = row
		out.Created = created

		if err := recomputeExperienceRollup(ctx, tx, experienceID); err != nil {
			return err
		}
		out.ReactionCount, err = repo.CountReactions(ctx, tx, experienceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
