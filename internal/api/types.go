// Package api holds the JSON wire types of the HTTP surface. Identifiers
// travel as 24 character hex strings.
package api

import "time"

// User is the wire form of a user.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email string `json:"email"`
}

// RenameRequest is the body of the name-only updates.
type RenameRequest struct {
	Name string `json:"name"`
}

// Team is the wire form of a team.
type Team struct {
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name"`
	Users []string `json:"users"`
}

// MeetingConfig is the wire form of a meeting config.
type MeetingConfig struct {
	ID              string `json:"id,omitempty"`
	TeamID          string `json:"team_id"`
	DesiredDuration uint32 `json:"desired_duration"`
	MeetingName     string `json:"meeting_name"`
	Description     string `json:"description,omitempty"`
	MeetingType     string `json:"meeting_type"`
}

// MeetingRequest is the body of POST /api/meeting. Only config_id starts a
// meeting for that config now; duration and date_utc make it standalone.
type MeetingRequest struct {
	ConfigID *string    `json:"config_id,omitempty"`
	Duration *uint16    `json:"duration,omitempty"`
	DateUTC  *time.Time `json:"date_utc,omitempty"`
}

// Meeting is the wire form of a meeting.
type Meeting struct {
	ID       string    `json:"id,omitempty"`
	ConfigID *string   `json:"config_id,omitempty"`
	Duration uint16    `json:"duration"`
	DateUTC  time.Time `json:"date_utc"`
}

// UserTime is the wire form of a user time record.
type UserTime struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	MeetingID string `json:"meeting_id"`
	Time      uint16 `json:"time"`
}
