// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"

	"smt-backend/internal/api"
	"smt-backend/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToAPIUserList maps a slice of users to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// FromAPIUser builds an entities.User for signup; any id in the body is ignored.
func FromAPIUser(src api.User) entities.User {
	return entities.User{Name: src.Name, Email: src.Email}
}

// FromAPITeam builds an entities.Team from transport DTO.
func FromAPITeam(src api.Team) (entities.Team, error) {
	users, err := entities.ParseIDs(src.Users)
	if err != nil {
		return entities.Team{}, err
	}
	return entities.Team{Name: src.Name, Users: users}, nil
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(team entities.Team) api.Team {
	users := make([]string, 0, len(team.Users))
	for _, id := range team.Users {
		users = append(users, id.Hex())
	}
	return api.Team{
		ID:    team.ID.Hex(),
		Name:  team.Name,
		Users: users,
	}
}

// FromAPIMeetingConfig decodes the team reference and meeting type.
func FromAPIMeetingConfig(src api.MeetingConfig) (entities.MeetingConfig, error) {
	teamID, err := entities.ParseID(src.TeamID)
	if err != nil {
		return entities.MeetingConfig{}, err
	}
	kind, err := entities.ParseMeetingType(src.MeetingType)
	if err != nil {
		return entities.MeetingConfig{}, err
	}
	return entities.MeetingConfig{
		TeamID:          teamID,
		DesiredDuration: src.DesiredDuration,
		Name:            src.MeetingName,
		Description:     src.Description,
		Type:            kind,
	}, nil
}

// ToAPIMeetingConfig maps entities.MeetingConfig to transport model.
func ToAPIMeetingConfig(cfg entities.MeetingConfig) api.MeetingConfig {
	return api.MeetingConfig{
		ID:              cfg.ID.Hex(),
		TeamID:          cfg.TeamID.Hex(),
		DesiredDuration: cfg.DesiredDuration,
		MeetingName:     cfg.Name,
		Description:     cfg.Description,
		MeetingType:     string(cfg.Type),
	}
}

// IsConfigOnly reports whether the request asks to start a meeting for a config.
func IsConfigOnly(src api.MeetingRequest) bool {
	return src.ConfigID != nil && src.Duration == nil && src.DateUTC == nil
}

// FromAPIMeeting builds a standalone meeting; duration and date_utc are required.
func FromAPIMeeting(src api.MeetingRequest) (entities.Meeting, error) {
	if src.Duration == nil || src.DateUTC == nil {
		return entities.Meeting{}, fmt.Errorf("%w: duration and date_utc are required", entities.ErrInvalidArgument)
	}
	configID, err := entities.ParseOptionalID(src.ConfigID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return entities.Meeting{
		ConfigID: configID,
		Duration: *src.Duration,
		DateUTC:  src.DateUTC.UTC(),
	}, nil
}

// ToAPIMeeting maps entities.Meeting to transport model.
func ToAPIMeeting(m entities.Meeting) api.Meeting {
	var configID *string
	if m.ConfigID != nil {
		hex := m.ConfigID.Hex()
		configID = &hex
	}
	return api.Meeting{
		ID:       m.ID.Hex(),
		ConfigID: configID,
		Duration: m.Duration,
		DateUTC:  m.DateUTC.UTC(),
	}
}

// FromAPIUserTime decodes both references of a time record.
func FromAPIUserTime(src api.UserTime) (entities.UserTime, error) {
	userID, err := entities.ParseID(src.UserID)
	if err != nil {
		return entities.UserTime{}, err
	}
	meetingID, err := entities.ParseID(src.MeetingID)
	if err != nil {
		return entities.UserTime{}, err
	}
	return entities.UserTime{UserID: userID, MeetingID: meetingID, Time: src.Time}, nil
}

// ToAPIUserTime maps entities.UserTime to transport model.
func ToAPIUserTime(ut entities.UserTime) api.UserTime {
	return api.UserTime{
		ID:        ut.ID.Hex(),
		UserID:    ut.UserID.Hex(),
		MeetingID: ut.MeetingID.Hex(),
		Time:      ut.Time,
	}
}
