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

func newPromptRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("prompt_repo_test_%d.db", time.Now().UnixNano()))
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
	if err := db.AutoMigrate(&domain.User{}, &domain.Experience{}, &domain.Prompt{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreatePrompt_DefaultsIDAndTimestamp(t *testing.T) {
	db := newPromptRepoDB(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	p := &domain.Prompt{
		ExperienceID: "e1",
		Content:      "write a table-driven test for the parser",
		Context:      "legacy parser with no coverage",
		Results:      "12 cases, two real bugs found",
	}
	if err := CreatePrompt(ctx, db, p); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected a generated prompt ID")
	}
	if p.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt not set: %v", p.CreatedAt)
	}

	got, err := GetPrompt(ctx, db, p.ID)
	if err != nil {
		t.Fatalf("GetPrompt: %v", err)
	}
	if got.Content != p.Content || got.Context != p.Context || got.Results != p.Results {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.AverageRating != 0 || got.RatingCount != 0 {
		t.Fatalf("new prompt must start with zero aggregates: %+v", got)
	}
}

func TestCreatePrompt_KeepsCallerValues(t *testing.T) {
	db := newPromptRepoDB(t)
	ctx := context.Background()

	at := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	p := &domain.Prompt{
		ID:           "p-fixed",
		ExperienceID: "e1",
		Content:      "explain this stack trace",
		CreatedAt:    at,
	}
	if err := CreatePrompt(ctx, db, p); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	if p.ID != "p-fixed" || !p.CreatedAt.Equal(at) {
		t.Fatalf("caller-supplied ID/CreatedAt overwritten: %+v", p)
	}
}

func TestGetPrompt_Missing(t *testing.T) {
	db := newPromptRepoDB(t)

	if _, err := GetPrompt(context.Background(), db, "nope"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestListPromptsByExperience_OrderedOldestFirst(t *testing.T) {
	db := newPromptRepoDB(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	for i := 2; i >= 0; i-- { // insert out of order on purpose
		p := &domain.Prompt{
			ID:           fmt.Sprintf("p%d", i),
			ExperienceID: "e1",
			Content:      fmt.Sprintf("step %d", i),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := CreatePrompt(ctx, db, p); err != nil {
			t.Fatalf("seed p%d: %v", i, err)
		}
	}
	other := &domain.Prompt{ID: "px", ExperienceID: "e2", Content: "unrelated"}
	if err := CreatePrompt(ctx, db, other); err != nil {
		t.Fatalf("seed px: %v", err)
	}

	got, err := ListPromptsByExperience(ctx, db, "e1")
	if err != nil {
		t.Fatalf("ListPromptsByExperience: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 prompts, got %d", len(got))
	}
	for i, p := range got {
		if p.ID != fmt.Sprintf("p%d", i) {
			t.Fatalf("expected CreatedAt ASC order, got %+v", got)
		}
	}
}
