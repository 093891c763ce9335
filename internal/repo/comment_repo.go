// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model. Comments are append-only: there is no update or upsert path.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
)

// CreateComment inserts a comment row for the given experience and author.
func CreateComment(ctx context.Context, db *gorm.DB, experienceID, userID, content string) (*domain.Comment, error) {
	c := &domain.Comment{
		ID:           uuid.NewString(),
		ExperienceID: experienceID,
		UserID:       userID,
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetComment fetches a comment by ID.
func GetComment(ctx context.Context, db *gorm.DB, id string) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CountComments returns the number of non-deleted comments on an experience.
func CountComments(ctx context.Context, db *gorm.DB, experienceID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("experience_id = ?", experienceID).
		Count(&total).Error
	return total, err
}

// DeleteComment permanently removes a comment row. Comments have no
// user-facing delete; this only discards the insert of a retry that lost the
// idempotency race, before the row was ever visible.
func DeleteComment(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Unscoped().Delete(&domain.Comment{}, "id = ?", id).Error
}

// ListCommentsPage returns a page of comments for an experience, newest
// first. Use CountComments for pagination metadata.
func ListCommentsPage(ctx context.Context, db *gorm.DB, experienceID string, offset, limit int) ([]domain.Comment, error) {
	var out []domain.Comment
	err := db.WithContext(ctx).
		Where("experience_id = ?", experienceID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
