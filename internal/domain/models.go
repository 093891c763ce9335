// Package domain defines the persistence models for users, experiences,
// prompts, and the interaction records (comments, reactions, prompt ratings).
// These types are mapped with GORM and form the core data layer of the
// application.
//
// Derived fields (average ratings and the *Count columns) are materialized
// caches over the live, non-deleted child rows. They are written exclusively
// by the aggregation functions in the services package and are recomputed in
// the same transaction as the child write that invalidated them.
package domain

import (
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AI assistant types an experience can be tagged with.
const (
	AssistantCopilot = "github-copilot"
	AssistantClaude  = "claude"
	AssistantGPT     = "gpt"
	AssistantCursor  = "cursor"
	AssistantOther   = "other"
)

// AssistantTypes lists every valid ai_assistant_type value, in the order the
// profile distribution reports them.
var AssistantTypes = []string{
	AssistantCopilot,
	AssistantClaude,
	AssistantGPT,
	AssistantCursor,
	AssistantOther,
}

// ValidAssistantType reports whether s is a known AI assistant type.
func ValidAssistantType(s string) bool {
	for _, t := range AssistantTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Reaction types a user can attach to an experience.
const (
	ReactionHelpful     = "helpful"
	ReactionCreative    = "creative"
	ReactionEducational = "educational"
	ReactionInnovative  = "innovative"
	ReactionLike        = "like"
	ReactionBookmark    = "bookmark"
)

// ReactionTypes lists every valid reaction type.
var ReactionTypes = []string{
	ReactionHelpful,
	ReactionCreative,
	ReactionEducational,
	ReactionInnovative,
	ReactionLike,
	ReactionBookmark,
}

// ValidReactionType reports whether s is a known reaction type.
func ValidReactionType(s string) bool {
	for _, t := range ReactionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// User represents an account created on first successful GitHub sign-in.
// Users are never hard-deleted; DeletedAt marks the account inactive.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - GithubID: the identity provider's numeric user id; unique and immutable.
//   - Username: unique display name, editable by the user.
//   - TotalRating / RatingCount: rolling sum and count of stars received on
//     the user's prompts, maintained by the aggregation engine.
type User struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	GithubID    int64          `json:"github_id"    gorm:"not null;uniqueIndex:ux_users_github_id"`
	Username    string         `json:"username"     gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Email       string         `json:"email,omitempty"      gorm:"type:varchar(255)"`
	AvatarURL   string         `json:"avatar_url,omitempty" gorm:"type:varchar(512)"`
	Bio         string         `json:"bio,omitempty"        gorm:"type:varchar(500)"`
	TotalRating int64          `json:"total_rating" gorm:"not null;default:0"`
	RatingCount int64          `json:"rating_count" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// AverageRatingReceived is the user's average received stars, 0 when the user
// has no rated prompts (never NaN).
func (u *User) AverageRatingReceived() float64 {
	if u.RatingCount == 0 {
		return 0
	}
	return Round2(float64(u.TotalRating) / float64(u.RatingCount))
}

// Experience is a user-authored post describing an AI-coding-assistant
// session. It owns its prompts, comments, and reactions; deleting an
// experience soft-deletes all of them.
//
// Tags and RepoURLs are stored as comma-delimited strings (see TagList /
// RepoURLList). AverageRating is the mean of the experience's prompts'
// average ratings, not of the raw rating rows.
type Experience struct {
	ID              string         `json:"id"                gorm:"type:char(36);primaryKey"`
	UserID          string         `json:"user_id"           gorm:"type:char(36);not null;index:idx_user_experiences"`
	Title           string         `json:"title"             gorm:"type:varchar(200);not null"`
	Description     string         `json:"description"       gorm:"type:text;not null"`
	AIAssistantType string         `json:"ai_assistant_type" gorm:"type:varchar(32);not null;index"`
	Tags            string         `json:"tags"              gorm:"type:varchar(512)"`
	RepoURLs        string         `json:"repo_urls"         gorm:"type:varchar(2048)"`
	IsNews          bool           `json:"is_news"           gorm:"not null;default:false"`
	AverageRating   float64        `json:"average_rating"    gorm:"not null;default:0;index:idx_feed_order,priority:1"`
	ReactionCount   int64          `json:"reaction_count"    gorm:"not null;default:0"`
	CommentCount    int64          `json:"comment_count"     gorm:"not null;default:0"`
	PromptCount     int64          `json:"prompt_count"      gorm:"not null;default:0"`
	CreatedAt       time.Time      `json:"created_at"        gorm:"index:idx_feed_order,priority:2"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-"                 gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Experience.
func (Experience) TableName() string { return "experiences" }

// TagList parses the stored comma-delimited tags into a slice, preserving
// stored order and dropping empties.
func (e *Experience) TagList() []string { return SplitList(e.Tags) }

// RepoURLList parses the stored comma-delimited repository URLs.
func (e *Experience) RepoURLList() []string { return SplitList(e.RepoURLs) }

// Prompt is a single instruction submitted to an AI assistant, independently
// rateable with 1-5 stars.
type Prompt struct {
	ID            string         `json:"id"            gorm:"type:char(36);primaryKey"`
	ExperienceID  string         `json:"experience_id" gorm:"type:char(36);not null;index:idx_experience_prompts"`
	Content       string         `json:"content"       gorm:"type:text;not null"`
	Context       string         `json:"context,omitempty"          gorm:"type:varchar(500)"`
	Results       string         `json:"results_achieved,omitempty" gorm:"type:varchar(500)"`
	AverageRating float64        `json:"average_rating" gorm:"not null;default:0"`
	RatingCount   int64          `json:"rating_count"   gorm:"not null;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`

	Experience Experience `json:"-" gorm:"foreignKey:ExperienceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Prompt.
func (Prompt) TableName() string { return "prompts" }

// Comment is an append-only remark on an experience (1-1000 chars).
type Comment struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	ExperienceID string         `json:"experience_id" gorm:"type:char(36);not null;index:idx_experience_comments"`
	UserID       string         `json:"user_id"       gorm:"type:char(36);not null;index"`
	Content      string         `json:"content"       gorm:"type:varchar(1000);not null"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`

	Experience Experience `json:"-" gorm:"foreignKey:ExperienceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// Reaction is a typed endorsement of an experience. At most one row exists
// per (experience, user, type); repeated submissions upsert.
type Reaction struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	ExperienceID string         `json:"experience_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_reaction_exp_user_type,priority:1"`
	UserID       string         `json:"user_id"       gorm:"type:char(36);not null;index;uniqueIndex:ux_reaction_exp_user_type,priority:2"`
	Type         string         `json:"type"          gorm:"type:varchar(16);not null;uniqueIndex:ux_reaction_exp_user_type,priority:3"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`

	Experience Experience `json:"-" gorm:"foreignKey:ExperienceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Reaction.
func (Reaction) TableName() string { return "reactions" }

// PromptRating is a 1-5 star rating on a prompt. At most one row exists per
// (prompt, user); a repeated submission replaces the value in place.
type PromptRating struct {
	ID        string         `json:"id"        gorm:"type:char(36);primaryKey"`
	PromptID  string         `json:"prompt_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_rating_prompt_user,priority:1"`
	UserID    string         `json:"user_id"   gorm:"type:char(36);not null;index;uniqueIndex:ux_rating_prompt_user,priority:2"`
	Rating    int            `json:"rating"    gorm:"not null;check:rating BETWEEN 1 AND 5"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"         gorm:"index"`

	Prompt Prompt `json:"-" gorm:"foreignKey:PromptID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PromptRating.
func (PromptRating) TableName() string { return "prompt_ratings" }

// Round2 rounds v half away from zero to two decimal places. All stored
// averages pass through this after being recomputed from raw rows, so
// rounding never compounds.
func Round2(v float64) float64 {
	if v < 0 {
		return float64(int64(v*100-0.5)) / 100
	}
	return float64(int64(v*100+0.5)) / 100
}

// SplitList parses a comma-delimited stored list, trimming whitespace and
// dropping empty elements.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string { return strings.Join(items, ",") }

// NormalizeTags lowercases and trims tags, dropping empties and duplicates
// while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ValidRepoURL reports whether raw is an absolute http(s) URL whose host is
// github.com (optionally www-prefixed).
func ValidRepoURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "github.com" || host == "www.github.com"
}
