// Package services defines the business logic for experiences, prompts, and
// the interaction flows (comments, reactions, ratings). This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Experience-related errors.
var (
	// ErrExperienceNotFound indicates that the requested experience does not
	// exist or has been deleted.
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrNotOwner is returned when a user attempts to modify or delete an
	// experience they do not own.
	ErrNotOwner = errors.New("not the owner of this experience")

	// ErrInvalidExperience is returned when experience fields fail validation
	// (title/description bounds, unknown assistant type, bad tags or repo URLs,
	// missing prompts).
	ErrInvalidExperience = errors.New("invalid experience")

	// ErrInvalidPage is returned when pagination parameters are out of range.
	// Invalid values are rejected, never clamped.
	ErrInvalidPage = errors.New("invalid pagination parameters")
)

// Prompt and rating errors.
var (
	// ErrPromptNotFound indicates that the requested prompt does not exist or
	// has been deleted.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrInvalidPrompt is returned when prompt content is outside the allowed
	// length bounds.
	ErrInvalidPrompt = errors.New("invalid prompt")

	// ErrInvalidRating is returned when a rating value is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Interaction errors.
var (
	// ErrInvalidComment is returned when comment content is empty or exceeds
	// the maximum length.
	ErrInvalidComment = errors.New("invalid comment")

	// ErrInvalidReaction is returned when a reaction type is not in the
	// allowed set.
	ErrInvalidReaction = errors.New("invalid reaction type")
)

// User errors.
var (
	// ErrUserNotFound indicates that the requested user does not exist or is
	// deactivated.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when a profile update requests a username
	// already held by another user.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidProfile is returned when profile fields fail validation.
	ErrInvalidProfile = errors.New("invalid profile")
)
