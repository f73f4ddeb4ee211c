// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// MeetingType enumerates recurring meeting kinds.
type MeetingType string

const (
	// MeetingDaily is a daily standup.
	MeetingDaily MeetingType = "DAILY"
	// MeetingRetro is a retrospective.
	MeetingRetro MeetingType = "RETRO"
)

// ParseMeetingType accepts exactly DAILY or RETRO.
func ParseMeetingType(s string) (MeetingType, error) {
	switch t := MeetingType(s); t {
	case MeetingDaily, MeetingRetro:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown meeting_type %q", ErrInvalidArgument, s)
	}
}

// MeetingConfig describes how a team's recurring meeting should run.
type MeetingConfig struct {
	ID              ID          `bson:"_id,omitempty"`
	TeamID          ID          `bson:"team_id"`
	DesiredDuration uint32      `bson:"desired_duration"` // seconds
	Name            string      `bson:"meeting_name"`
	Description     string      `bson:"description"`
	Type            MeetingType `bson:"meeting_type"`
}

// Meeting is a single occurrence, optionally tied to a config.
type Meeting struct {
	ID       ID        `bson:"_id,omitempty"`
	ConfigID *ID       `bson:"config_id,omitempty"`
	Duration uint16    `bson:"duration"` // real length in seconds
	DateUTC  time.Time `bson:"date_utc"`
}

// MeetingDate converts t to the form the store keeps: UTC at millisecond
// precision.
func MeetingDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// UserTime is the time a user contributed to a meeting.
type UserTime struct {
	ID        ID     `bson:"_id,omitempty"`
	UserID    ID     `bson:"user_id"`
	MeetingID ID     `bson:"meeting_id"`
	Time      uint16 `bson:"time"` // seconds
}
