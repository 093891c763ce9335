package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/promptlog/go-experience-backend/internal/domain"
)

func newRatingRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("rating_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestUpsertRating_CreatesThenReplacesInPlace(t *testing.T) {
	db := newRatingRepoDB(t, &domain.PromptRating{})
	ctx := context.Background()

	first, created, err := UpsertRating(ctx, db, "p1", "u1", 5)
	if err != nil {
		t.Fatalf("first UpsertRating: %v", err)
	}
	if !created || first.Rating != 5 {
		t.Fatalf("first upsert: created=%v row=%+v", created, first)
	}

	second, created, err := UpsertRating(ctx, db, "p1", "u1", 2)
	if err != nil {
		t.Fatalf("second UpsertRating: %v", err)
	}
	if created {
		t.Fatalf("re-rating must update in place, not insert")
	}
	if second.ID != first.ID || second.Rating != 2 {
		t.Fatalf("expected same row with new value, got %+v", second)
	}

	var n int64
	if err := db.Model(&domain.PromptRating{}).Where("prompt_id = ? AND user_id = ?", "p1", "u1").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected a single stored row, got %d", n)
	}
}

func TestUpsertRating_DistinctUsersDistinctRows(t *testing.T) {
	db := newRatingRepoDB(t, &domain.PromptRating{})
	ctx := context.Background()

	for _, u := range []string{"u1", "u2", "u3"} {
		if _, _, err := UpsertRating(ctx, db, "p1", u, 4); err != nil {
			t.Fatalf("UpsertRating(%s): %v", u, err)
		}
	}
	count, avg, err := PromptRatingStats(ctx, db, "p1")
	if err != nil {
		t.Fatalf("PromptRatingStats: %v", err)
	}
	if count != 3 || avg != 4 {
		t.Fatalf("stats = (%d, %v), want (3, 4)", count, avg)
	}
}

func TestPromptRatingStats_EmptyIsZeroNotNaN(t *testing.T) {
	db := newRatingRepoDB(t, &domain.PromptRating{})

	count, avg, err := PromptRatingStats(context.Background(), db, "nobody-rated-me")
	if err != nil {
		t.Fatalf("PromptRatingStats: %v", err)
	}
	if count != 0 || avg != 0 {
		t.Fatalf("stats = (%d, %v), want (0, 0)", count, avg)
	}
}

func TestUserReceivedRatingStats_JoinsThroughLiveRows(t *testing.T) {
	// The cascade delete below also soft-deletes comments and reactions.
	db := newRatingRepoDB(t,
		&domain.Experience{}, &domain.Prompt{}, &domain.Comment{},
		&domain.Reaction{}, &domain.PromptRating{},
	)
	ctx := context.Background()

	e := &domain.Experience{ID: "e1", UserID: "author", Title: "t", Description: "d", AIAssistantType: domain.AssistantGPT}
	if err := CreateExperience(ctx, db, e); err != nil {
		t.Fatalf("seed experience: %v", err)
	}
	p := &domain.Prompt{ID: "p1", ExperienceID: "e1", Content: "c"}
	if err := CreatePrompt(ctx, db, p); err != nil {
		t.Fatalf("seed prompt: %v", err)
	}
	if _, _, err := UpsertRating(ctx, db, "p1", "u1", 5); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if _, _, err := UpsertRating(ctx, db, "p1", "u2", 3); err != nil {
		t.Fatalf("rate: %v", err)
	}

	total, count, err := UserReceivedRatingStats(ctx, db, "author")
	if err != nil {
		t.Fatalf("UserReceivedRatingStats: %v", err)
	}
	if total != 8 || count != 2 {
		t.Fatalf("stats = (%d, %d), want (8, 2)", total, count)
	}

	// Deleting the experience removes its ratings from the author's totals.
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := SoftDeleteExperienceChildren(ctx, tx, "e1"); err != nil {
			return err
		}
		return SoftDeleteExperience(ctx, tx, "e1")
	}); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	total, count, err = UserReceivedRatingStats(ctx, db, "author")
	if err != nil {
		t.Fatalf("UserReceivedRatingStats after delete: %v", err)
	}
	if total != 0 || count != 0 {
		t.Fatalf("stats after delete = (%d, %d), want (0, 0)", total, count)
	}
}
