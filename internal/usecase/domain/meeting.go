// Package domain contains application Usecases orchestrating domain logic by meeting.
package domain

import (
	"context"
	"fmt"
	"strings"

	"smt-backend/internal/entities"
)

// CreateMeetingConfig stores a config for an existing team.
func (u *Usecase) CreateMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateMeetingConfig(&cfg); err != nil {
		return nil, err
	}
	return checkedWrite(ctx, u, []reference{ref(entities.CollectionTeams, cfg.TeamID)},
		func(ctx context.Context) (*entities.MeetingConfig, error) {
			return u.repo.CreateMeetingConfig(ctx, cfg)
		})
}

// MeetingConfig returns a meeting config by id.
func (u *Usecase) MeetingConfig(ctx context.Context, id entities.ID) (*entities.MeetingConfig, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetMeetingConfig(ctx, id)
}

// UpdateMeetingConfig replaces every field of the config identified by cfg.ID
// after re-checking its team.
func (u *Usecase) UpdateMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateMeetingConfig(&cfg); err != nil {
		return nil, err
	}
	return checkedWrite(ctx, u, []reference{ref(entities.CollectionTeams, cfg.TeamID)},
		func(ctx context.Context) (*entities.MeetingConfig, error) {
			return u.repo.ReplaceMeetingConfig(ctx, cfg)
		})
}

func validateMeetingConfig(cfg *entities.MeetingConfig) error {
	cfg.Name = strings.TrimSpace(cfg.Name)
	if err := requireField(cfg.Name, "meeting_name"); err != nil {
		return err
	}
	if _, err := entities.ParseMeetingType(string(cfg.Type)); err != nil {
		return err
	}
	return nil
}

// CreateMeeting stores a fully specified meeting; its config, when given, must exist.
func (u *Usecase) CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if meeting.DateUTC.IsZero() {
		return nil, fmt.Errorf("%w: date_utc is required", entities.ErrInvalidArgument)
	}
	meeting.DateUTC = entities.MeetingDate(meeting.DateUTC)

	var refs []reference
	if meeting.ConfigID != nil {
		refs = append(refs, ref(entities.CollectionMeetingConfigs, *meeting.ConfigID))
	}
	return checkedWrite(ctx, u, refs, func(ctx context.Context) (*entities.Meeting, error) {
		return u.repo.CreateMeeting(ctx, meeting)
	})
}

// StartMeeting opens a meeting for a config now, with zero duration.
func (u *Usecase) StartMeeting(ctx context.Context, configID entities.ID) (*entities.Meeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	meeting := entities.Meeting{
		ConfigID: &configID,
		DateUTC:  entities.MeetingDate(u.now()),
	}
	return checkedWrite(ctx, u, []reference{ref(entities.CollectionMeetingConfigs, configID)},
		func(ctx context.Context) (*entities.Meeting, error) {
			return u.repo.CreateMeeting(ctx, meeting)
		})
}

// Meeting returns a meeting by id.
func (u *Usecase) Meeting(ctx context.Context, id entities.ID) (*entities.Meeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetMeeting(ctx, id)
}
