// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"smt-backend/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ReferenceInterface answers point existence lookups used before dependent writes.
type ReferenceInterface interface {
	// Exists reports whether a document with id lives in collection. A store
	// failure is returned as an error, never as false.
	Exists(ctx context.Context, collection entities.Collection, id entities.ID) (bool, error)
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id entities.ID) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateUserName(ctx context.Context, id entities.ID, name string) (*entities.User, error)
	DeleteUser(ctx context.Context, id entities.ID) (*entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id entities.ID) (*entities.Team, error)
	UpdateTeamName(ctx context.Context, id entities.ID, name string) (*entities.Team, error)
}

// MeetingConfigInterface exposes meeting config operations.
type MeetingConfigInterface interface {
	CreateMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error)
	GetMeetingConfig(ctx context.Context, id entities.ID) (*entities.MeetingConfig, error)
	ReplaceMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error)
}

// MeetingInterface exposes meeting operations.
type MeetingInterface interface {
	CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error)
	GetMeeting(ctx context.Context, id entities.ID) (*entities.Meeting, error)
}

// UserTimeInterface exposes user time operations.
type UserTimeInterface interface {
	CreateUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error)
	GetUserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error)
	ReplaceUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error)
	DeleteUserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error)
}
