// Package services - ProfileService
//
// This file implements ProfileService, which assembles the public profile
// statistics block: contribution counts, interaction counts split into
// received versus given, the average rating received, the per-assistant
// distribution, and the user's most-used tags.
package services

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
)

// TopTagLimit caps how many tags the profile reports.
const TopTagLimit = 10

// ProfileStats is the read model for a user's profile statistics.
type ProfileStats struct {
	ExperienceCount       int64            `json:"experience_count"`
	PromptCount           int64            `json:"prompt_count"`
	ReactionsReceived     int64            `json:"reactions_received"`
	ReactionsGiven        int64            `json:"reactions_given"`
	CommentsReceived      int64            `json:"comments_received"`
	CommentsGiven         int64            `json:"comments_given"`
	RatingsGiven          int64            `json:"ratings_given"`
	AverageRatingReceived float64          `json:"average_rating_received"`
	AssistantDistribution map[string]int64 `json:"assistant_distribution"`
	TopTags               []string         `json:"top_tags"`
}

// ProfileService implements the profile read use-cases.
type ProfileService struct {
	// DB is the database handle used for all profile queries.
	DB *gorm.DB
}

// Stats assembles the statistics block for userID, or ErrUserNotFound. A user
// with no experiences gets an all-zero block, never an error.
func (s *ProfileService) Stats(ctx context.Context, userID string) (*ProfileStats, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Stats",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	h := s.DB.WithContext(ctx)
	u, err := repo.GetUser(ctx, h, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	out := &ProfileStats{AverageRatingReceived: u.AverageRatingReceived()}

	counts := []struct {
		dst *int64
		fn  func(context.Context, *gorm.DB, string) (int64, error)
	}{
		{&out.ExperienceCount, repo.CountExperiencesByUser},
		{&out.PromptCount, repo.CountPromptsByUser},
		{&out.ReactionsReceived, repo.CountReactionsReceived},
		{&out.ReactionsGiven, repo.CountReactionsGiven},
		{&out.CommentsReceived, repo.CountCommentsReceived},
		{&out.CommentsGiven, repo.CountCommentsGiven},
		{&out.RatingsGiven, repo.CountRatingsGiven},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(ctx, h, userID); err != nil {
			return nil, err
		}
	}

	if out.AssistantDistribution, err = repo.AssistantDistribution(ctx, h, userID); err != nil {
		return nil, err
	}

	exps, err := repo.ListExperiencesByUser(ctx, h, userID)
	if err != nil {
		return nil, err
	}
	out.TopTags = topTags(exps, TopTagLimit)
	return out, nil
}

// topTags ranks tags across the user's experiences by frequency. Ties keep
// first-appearance order, which is stable because experiences arrive in
// creation order.
func topTags(exps []domain.Experience, limit int) []string {
	freq := make(map[string]int)
	order := make(map[string]int)
	next := 0
	for _, e := range exps {
		for _, t := range e.TagList() {
			if _, seen := freq[t]; !seen {
				order[t] = next
				next++
			}
			freq[t]++
		}
	}
	tags := make([]string, 0, len(freq))
	for t := range freq {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if freq[tags[i]] != freq[tags[j]] {
			return freq[tags[i]] > freq[tags[j]]
		}
		return order[tags[i]] < order[tags[j]]
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}
