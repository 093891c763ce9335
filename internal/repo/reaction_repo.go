// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Reaction
// model.
//
// Reactions are keyed by (experience_id, user_id, type): the same user
// submitting the same reaction twice must resolve to a single stored row.
// UpsertReaction implements that contract with a find-then-insert inside the
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

// UpsertReaction stores a reaction for (experienceID, userID, rtype),
// returning the row and whether a new row was created. When a matching live
// row already exists the call is a no-op (reactions carry no payload beyond
// their type), which makes repeated submissions idempotent.
func UpsertReaction(ctx context.Context, db *gorm.DB, experienceID, userID, rtype string) (*domain.Reaction, bool, error) {
	var existing domain.Reaction
	err := db.WithContext(ctx).
		Where("experience_id = ? AND user_id = ? AND type = ?", experienceID, userID, rtype).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	r := &domain.Reaction{
		ID:           uuid.NewString(),
		ExperienceID: experienceID,
		UserID:       userID,
		Type:         rtype,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, false, err
	}
	return r, true, nil
}

// CountReactions returns the total number of non-deleted reaction rows on an
// experience, all types combined.
func CountReactions(ctx context.Context, db *gorm.DB, experienceID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Reaction{}).
		Where("experience_id = ?", experienceID).
		Count(&total).Error
	return total, err
}

// ReactionCountsByType returns a per-type breakdown of the reactions on an
// experience. Types with no reactions are absent from the map.
func ReactionCountsByType(ctx context.Context, db *gorm.DB, experienceID string) (map[string]int64, error) {
	var rows []struct {
		Type string
		N    int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Reaction{}).
		Select("type, COUNT(*) AS n").
		Where("experience_id = ?", experienceID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Type] = r.N
	}
	return out, nil
}
