// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a missing target or referenced entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a uniqueness violation or a lost race on removal.
	ErrConflict = errors.New("conflict")
	// ErrNotAuthorized signals a failed login lookup.
	ErrNotAuthorized = errors.New("not authorized")
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = fmt.Errorf("team %w", ErrNotFound)
	// ErrMeetingNotFound signals missing meeting.
	ErrMeetingNotFound = fmt.Errorf("meeting %w", ErrNotFound)
	// ErrMeetingConfigNotFound signals missing meeting config.
	ErrMeetingConfigNotFound = fmt.Errorf("meeting config %w", ErrNotFound)
	// ErrUserTimeNotFound signals missing user time record.
	ErrUserTimeNotFound = fmt.Errorf("user time %w", ErrNotFound)

	// ErrEmailTaken signals that the email is already registered.
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)
	// ErrAlreadyDeleted signals that the record was gone before removal.
	ErrAlreadyDeleted = fmt.Errorf("%w: already deleted", ErrConflict)
)
