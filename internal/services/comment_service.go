// Package services - CommentService
//
// This file implements CommentService. Comments are the one append-only write
// in the system: a blind client retry would duplicate the row, so Add accepts
// an optional idempotency key and replays the stored comment when the same
// (user, experience, key) arrives again within the TTL.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
)

// MaxCommentRunes is the maximum comment length.
const MaxCommentRunes = 1000

// DefaultIdempotencyTTL bounds how long a comment idempotency key is honored
// when the service is constructed with a zero TTL.
const DefaultIdempotencyTTL = 24 * time.Hour

// CommentService implements the use-cases around experience comments.
type CommentService struct {
	// DB is the database handle used for all comment operations.
	DB *gorm.DB

	// IdempotencyTTL is how long a stored idempotency record satisfies
	// replays. Zero means DefaultIdempotencyTTL.
	IdempotencyTTL time.Duration
}

// CommentResult carries the stored comment, whether this call created it
// (false on an idempotent replay), and the experience's comment count.
type CommentResult struct {
	Comment      *domain.Comment
	Created      bool
	CommentCount int64
}

// Add appends a comment to experienceID on behalf of userID.
//
// Semantics and validation:
//   - content must be non-blank and at most MaxCommentRunes runes after
//     trimming; otherwise ErrInvalidComment.
//   - experienceID must exist and not be deleted; otherwise
//     ErrExperienceNotFound.
//   - When idemKey is non-empty and a record exists for (user, experience,
//     key), the previously stored comment is returned with Created=false and
//     no new row is written.
//
// The insert, the idempotency record, and the comment-count recompute run in
// one transaction.
func (s *CommentService) Add(ctx context.Context, userID, experienceID, content, idemKey string) (*CommentResult, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > MaxCommentRunes {
		return nil, ErrInvalidComment
	}

	var out CommentResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetExperience(ctx, tx, experienceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExperienceNotFound
			}
			return err
		}

		if idemKey != "" {
			rec, err := repo.GetIdempotency(ctx, tx, userID, experienceID, idemKey, time.Now().UTC())
			if err == nil {
				stored, err := repo.GetComment(ctx, tx, rec.CommentID)
				if err != nil {
					return err
				}
				out.Comment = stored
				out.Created = false
				out.CommentCount, err = repo.CountComments(ctx, tx, experienceID)
				return err
			}
			if !errors.Is(err, repo.ErrNotFound) {
				return err
			}
		}

		c, err := repo.CreateComment(ctx, tx, experienceID, userID, content)
		if err != nil {
			return err
		}
		out.Comment = c
		out.Created = true

		if idemKey != "" {
			ttl := s.IdempotencyTTL
			if ttl <= 0 {
				ttl = DefaultIdempotencyTTL
			}
			if _, err := repo.CreateIdempotency(ctx, tx, userID, experienceID, idemKey, c.ID, 201, ttl); err != nil {
				if !errors.Is(err, repo.ErrDuplicate) {
					return err
				}
				// A concurrent retry won the race. Discard this insert and
				// surface the winner's stored comment so the row count stays
				// unchanged.
				rec, gerr := repo.GetIdempotency(ctx, tx, userID, experienceID, idemKey, time.Now().UTC())
				switch {
				case gerr == nil:
					stored, cerr := repo.GetComment(ctx, tx, rec.CommentID)
					if cerr != nil {
						return cerr
					}
					if derr := repo.DeleteComment(ctx, tx, c.ID); derr != nil {
						return derr
					}
					out.Comment = stored
					out.Created = false
				case errors.Is(gerr, repo.ErrNotFound):
					// The slot is held by an expired record: the key is no
					// longer honored, so the fresh comment stands.
				default:
					return gerr
				}
			}
		}

		if err := recomputeExperienceRollup(ctx, tx, experienceID); err != nil {
			return err
		}
		out.CommentCount, err = repo.CountComments(ctx, tx, experienceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPage returns paginated comments for an experience, newest first,
// together with the total count. Page and limit must already be validated by
// the caller (ValidatePage).
func (s *CommentService) ListPage(ctx context.Context, experienceID string, page, limit int) ([]domain.Comment, int64, error) {
	h := s.DB.WithContext(ctx)
	if _, err := repo.GetExperience(ctx, h, experienceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrExperienceNotFound
		}
		return nil, 0, err
	}

	total, err := repo.CountComments(ctx, h, experienceID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Comment{}, 0, nil
	}
	items, err := repo.ListCommentsPage(ctx, h, experienceID, (page-1)*limit, limit)
	return items, total, err
}
