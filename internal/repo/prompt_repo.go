// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Prompt model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
)

// CreatePrompt inserts a new prompt row under an experience.
func CreatePrompt(ctx context.Context, db *gorm.DB, p *domain.Prompt) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(p).Error
}

// GetPrompt fetches a prompt by ID, or ErrNotFound when it is missing or
// soft-deleted.
func GetPrompt(ctx context.Context, db *gorm.DB, id string) (*domain.Prompt, error) {
	var p domain.Prompt
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPromptsByExperience returns the experience's non-deleted prompts,
// ordered deterministically (CreatedAt ASC, ID ASC).
func ListPromptsByExperience(ctx context.Context, db *gorm.DB, experienceID string) ([]domain.Prompt, error) {
	var out []domain.Prompt
	err := db.WithContext(ctx).
		Where("experience_id = ?", experienceID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
