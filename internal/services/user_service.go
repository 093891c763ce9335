// Package services - UserService
//
// This file implements UserService, which owns account provisioning from the
// GitHub OAuth callback and profile edits. Accounts are created on first
// successful sign-in; subsequent sign-ins refresh the mutable identity fields
// (avatar, email) without touching anything the user edited locally.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/repo"
)

// MaxBioRunes is the maximum profile bio length.
const MaxBioRunes = 500

// GitHubProfile is the subset of the GitHub user payload the service needs.
type GitHubProfile struct {
	ID        int64
	Login     string
	Name      string
	Email     string
	AvatarURL string
}

// ProfileUpdate carries the user-editable profile fields. Nil means "leave
// unchanged".
type ProfileUpdate struct {
	Username *string
	Bio      *string
}

// UserService implements the account use-cases.
type UserService struct {
	// DB is the database handle used for all user operations.
	DB *gorm.DB
}

// UpsertFromGitHub resolves a GitHub identity to a local account, creating it
// on first sign-in. The initial username is the GitHub login (a numeric
// suffix resolves collisions); the bio is seeded from the GitHub display name
// in title case when present. Later sign-ins refresh email and avatar only.
func (s *UserService) UpsertFromGitHub(ctx context.Context, p GitHubProfile) (*domain.User, error) {
	if p.ID == 0 || strings.TrimSpace(p.Login) == "" {
		return nil, ErrInvalidProfile
	}

	var out *domain.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := repo.GetUserByGithubID(ctx, tx, p.ID)
		if err == nil {
			fields := map[string]any{}
			if p.Email != "" && p.Email != existing.Email {
				fields["email"] = p.Email
			}
			if p.AvatarURL != "" && p.AvatarURL != existing.AvatarURL {
				fields["avatar_url"] = p.AvatarURL
			}
			if len(fields) > 0 {
				if err := repo.UpdateUserFields(ctx, tx, existing.ID, fields); err != nil {
					return err
				}
			}
			out, err = repo.GetUser(ctx, tx, existing.ID)
			return err
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		username, err := s.freeUsername(ctx, tx, strings.ToLower(strings.TrimSpace(p.Login)))
		if err != nil {
			return err
		}
		u := &domain.User{
			GithubID:  p.ID,
			Username:  username,
			Email:     p.Email,
			AvatarURL: p.AvatarURL,
			Bio:       seedBio(p.Name),
		}
		if err := repo.CreateUser(ctx, tx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the user or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies the user's edit. Usernames must stay unique;
// requesting one another account holds returns ErrUsernameTaken.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error) {
	fields := map[string]any{}
	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" || utf8.RuneCountInString(name) > 64 {
			return nil, ErrInvalidProfile
		}
		fields["username"] = name
	}
	if upd.Bio != nil {
		bio := strings.TrimSpace(*upd.Bio)
		if utf8.RuneCountInString(bio) > MaxBioRunes {
			return nil, ErrInvalidProfile
		}
		fields["bio"] = bio
	}

	var out *domain.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetUser(ctx, tx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if name, ok := fields["username"].(string); ok {
			taken, err := repo.UsernameTaken(ctx, tx, name, userID)
			if err != nil {
				return err
			}
			if taken {
				return ErrUsernameTaken
			}
		}
		if len(fields) > 0 {
			if err := repo.UpdateUserFields(ctx, tx, userID, fields); err != nil {
				return err
			}
		}
		var err error
		out, err = repo.GetUser(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// freeUsername returns base, or base-2, base-3, ... until one is unclaimed.
func (s *UserService) freeUsername(ctx context.Context, tx *gorm.DB, base string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		taken, err := repo.UsernameTaken(ctx, tx, candidate, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// seedBio builds the initial bio from the GitHub display name.
func seedBio(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(name))
}
