package mongodb

import (
	"context"

	"smt-backend/internal/entities"
)

// CreateMeetingConfig inserts a meeting config.
func (p *Mongo) CreateMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error) {
	id, err := p.meetingConfigs.insert(ctx, &cfg)
	if err != nil {
		p.log.Errorw("failed to insert meeting config", "error", err, "team_id", cfg.TeamID.Hex())
		return nil, err
	}
	cfg.ID = id
	return &cfg, nil
}

// GetMeetingConfig fetches a meeting config by id.
func (p *Mongo) GetMeetingConfig(ctx context.Context, id entities.ID) (*entities.MeetingConfig, error) {
	return p.meetingConfigs.findByID(ctx, id)
}

// ReplaceMeetingConfig overwrites every field of the config with cfg.ID.
func (p *Mongo) ReplaceMeetingConfig(ctx context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error) {
	return p.meetingConfigs.replace(ctx, cfg.ID, &cfg)
}

// CreateMeeting inserts a meeting.
func (p *Mongo) CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	id, err := p.meetings.insert(ctx, &meeting)
	if err != nil {
		p.log.Errorw("failed to insert meeting", "error", err)
		return nil, err
	}
	meeting.ID = id
	return &meeting, nil
}

// GetMeeting fetches a meeting by id.
func (p *Mongo) GetMeeting(ctx context.Context, id entities.ID) (*entities.Meeting, error) {
	return p.meetings.findByID(ctx, id)
}
