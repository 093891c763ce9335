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

func newCommentRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("comment_repo_test_%d.db", time.Now().UnixNano()))
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
	if err := db.AutoMigrate(&domain.User{}, &domain.Experience{}, &domain.Comment{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateComment_AssignsIDAndTimestamp(t *testing.T) {
	db := newCommentRepoDB(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	c, err := CreateComment(ctx, db, "e1", "u1", "nice writeup")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected a generated comment ID")
	}
	if c.ExperienceID != "e1" || c.UserID != "u1" || c.Content != "nice writeup" {
		t.Fatalf("unexpected row: %+v", c)
	}
	if c.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt not set: %v", c.CreatedAt)
	}

	got, err := GetComment(ctx, db, c.ID)
	if err != nil {
		t.Fatalf("GetComment: %v", err)
	}
	if got.ID != c.ID || got.Content != c.Content {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, c)
	}
}

func TestGetComment_Missing(t *testing.T) {
	db := newCommentRepoDB(t)

	if _, err := GetComment(context.Background(), db, "nope"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestCountComments_ScopedToExperience(t *testing.T) {
	db := newCommentRepoDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := CreateComment(ctx, db, "e1", "u1", fmt.Sprintf("comment %d", i)); err != nil {
			t.Fatalf("seed e1: %v", err)
		}
	}
	if _, err := CreateComment(ctx, db, "e2", "u1", "elsewhere"); err != nil {
		t.Fatalf("seed e2: %v", err)
	}

	total, err := CountComments(ctx, db, "e1")
	if err != nil {
		t.Fatalf("CountComments: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 comments on e1, got %d", total)
	}

	total, err = CountComments(ctx, db, "empty")
	if err != nil {
		t.Fatalf("CountComments empty: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 comments, got %d", total)
	}
}

func TestListCommentsPage_NewestFirstWithOffset(t *testing.T) {
	db := newCommentRepoDB(t)
	ctx := context.Background()

	// Explicit timestamps so the DESC order is deterministic.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		row := domain.Comment{
			ID:           fmt.Sprintf("c%d", i),
			ExperienceID: "e1",
			UserID:       "u1",
			Content:      fmt.Sprintf("comment %d", i),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	first, err := ListCommentsPage(ctx, db, "e1", 0, 2)
	if err != nil {
		t.Fatalf("ListCommentsPage page 1: %v", err)
	}
	if len(first) != 2 || first[0].ID != "c4" || first[1].ID != "c3" {
		t.Fatalf("expected [c4 c3], got %+v", first)
	}

	second, err := ListCommentsPage(ctx, db, "e1", 2, 2)
	if err != nil {
		t.Fatalf("ListCommentsPage page 2: %v", err)
	}
	if len(second) != 2 || second[0].ID != "c2" || second[1].ID != "c1" {
		t.Fatalf("expected [c2 c1], got %+v", second)
	}

	last, err := ListCommentsPage(ctx, db, "e1", 4, 2)
	if err != nil {
		t.Fatalf("ListCommentsPage page 3: %v", err)
	}
	if len(last) != 1 || last[0].ID != "c0" {
		t.Fatalf("expected [c0], got %+v", last)
	}
}

func TestListCommentsPage_IDBreaksTimestampTies(t *testing.T) {
	db := newCommentRepoDB(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		row := domain.Comment{
			ID:           id,
			ExperienceID: "e1",
			UserID:       "u1",
			Content:      "tied",
			CreatedAt:    at,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	got, err := ListCommentsPage(ctx, db, "e1", 0, 10)
	if err != nil {
		t.Fatalf("ListCommentsPage: %v", err)
	}
	if len(got) != 3 || got[0].ID != "c" || got[1].ID != "b" || got[2].ID != "a" {
		t.Fatalf("expected ID DESC tiebreak [c b a], got %+v", got)
	}
}
