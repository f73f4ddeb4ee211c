package usecase

import (
	"context"

	"smt-backend/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Login(ctx context.Context, email string) (*entities.User, error)
	Signup(ctx context.Context, user entities.User) (*entities.User, error)
	User(ctx context.Context, id entities.ID) (*entities.User, error)
	RenameUser(ctx context.Context, id entities.ID, name string) (*entities.User, error)
	DeleteUser(ctx context.Context, id entities.ID) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, id entities.ID) (*entities.Team, error)
	RenameTeam(ctx context.Context, id entities.ID, name string) (*entities.Team, error)
	TeamUsers(ctx context.Context, id entities.ID) ([]entities.User, error)
}

// MeetingConfigUsecaseInterface abstracts meeting config operations.
type MeetingConfigUsecaseInterface interface {
	CreateMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error)
	MeetingConfig(ctx context.Context, id entities.ID) (*entities.MeetingConfig, error)
	UpdateMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error)
}

// MeetingUsecaseInterface abstracts meeting operations.
type MeetingUsecaseInterface interface {
	CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error)
	StartMeeting(ctx context.Context, configID entities.ID) (*entities.Meeting, error)
	Meeting(ctx context.Context, id entities.ID) (*entities.Meeting, error)
}

// UserTimeUsecaseInterface abstracts user time operations.
type UserTimeUsecaseInterface interface {
	CreateUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error)
	UserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error)
	UpdateUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error)
	DeleteUserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error)
}
