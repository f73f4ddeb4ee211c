package handlers_fiber

import (
	"context"
	"sync"

	"smt-backend/internal/entities"
	"smt-backend/internal/repository"
)

// memRepo is an in-memory store with the same not-found semantics as the mongo one.
type memRepo struct {
	mu        sync.Mutex
	users     map[entities.ID]entities.User
	teams     map[entities.ID]entities.Team
	configs   map[entities.ID]entities.MeetingConfig
	meetings  map[entities.ID]entities.Meeting
	userTimes map[entities.ID]entities.UserTime
	fail      error
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		users:     make(map[entities.ID]entities.User),
		teams:     make(map[entities.ID]entities.Team),
		configs:   make(map[entities.ID]entities.MeetingConfig),
		meetings:  make(map[entities.ID]entities.Meeting),
		userTimes: make(map[entities.ID]entities.UserTime),
	}
}

func (m *memRepo) OnStart(_ context.Context) error { return nil }
func (m *memRepo) OnStop(_ context.Context) error  { return nil }

func (m *memRepo) Exists(_ context.Context, coll entities.Collection, id entities.ID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return false, m.fail
	}
	var ok bool
	switch coll {
	case entities.CollectionUsers:
		_, ok = m.users[id]
	case entities.CollectionTeams:
		_, ok = m.teams[id]
	case entities.CollectionMeetingConfigs:
		_, ok = m.configs[id]
	case entities.CollectionMeetings:
		_, ok = m.meetings[id]
	case entities.CollectionUserTimes:
		_, ok = m.userTimes[id]
	}
	return ok, nil
}

func (m *memRepo) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, entities.ErrEmailTaken
		}
	}
	user.ID = entities.NewID()
	m.users[user.ID] = user
	return &user, nil
}

func (m *memRepo) GetUser(_ context.Context, id entities.ID) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

func (m *memRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (m *memRepo) UpdateUserName(_ context.Context, id entities.ID, name string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	u.Name = name
	m.users[id] = u
	return &u, nil
}

func (m *memRepo) DeleteUser(_ context.Context, id entities.ID) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	delete(m.users, id)
	return &u, nil
}

func (m *memRepo) CreateTeam(_ context.Context, team entities.Team) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	team.ID = entities.NewID()
	m.teams[team.ID] = team
	return &team, nil
}

func (m *memRepo) GetTeam(_ context.Context, id entities.ID) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	return &t, nil
}

func (m *memRepo) UpdateTeamName(_ context.Context, id entities.ID, name string) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	t.Name = name
	m.teams[id] = t
	return &t, nil
}

func (m *memRepo) CreateMeetingConfig(_ context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg.ID = entities.NewID()
	m.configs[cfg.ID] = cfg
	return &cfg, nil
}

func (m *memRepo) GetMeetingConfig(_ context.Context, id entities.ID) (*entities.MeetingConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.configs[id]
	if !ok {
		return nil, entities.ErrMeetingConfigNotFound
	}
	return &cfg, nil
}

func (m *memRepo) ReplaceMeetingConfig(_ context.Context, cfg entities.MeetingConfig) (*entities.MeetingConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[cfg.ID]; !ok {
		return nil, entities.ErrMeetingConfigNotFound
	}
	m.configs[cfg.ID] = cfg
	return &cfg, nil
}

func (m *memRepo) CreateMeeting(_ context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meeting.ID = entities.NewID()
	m.meetings[meeting.ID] = meeting
	return &meeting, nil
}

func (m *memRepo) GetMeeting(_ context.Context, id entities.ID) (*entities.Meeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meeting, ok := m.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return &meeting, nil
}

func (m *memRepo) CreateUserTime(_ context.Context, ut entities.UserTime) (*entities.UserTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ut.ID = entities.NewID()
	m.userTimes[ut.ID] = ut
	return &ut, nil
}

func (m *memRepo) GetUserTime(_ context.Context, id entities.ID) (*entities.UserTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ut, ok := m.userTimes[id]
	if !ok {
		return nil, entities.ErrUserTimeNotFound
	}
	return &ut, nil
}

func (m *memRepo) ReplaceUserTime(_ context.Context, ut entities.UserTime) (*entities.UserTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.userTimes[ut.ID]; !ok {
		return nil, entities.ErrUserTimeNotFound
	}
	m.userTimes[ut.ID] = ut
	return &ut, nil
}

func (m *memRepo) DeleteUserTime(_ context.Context, id entities.ID) (*entities.UserTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ut, ok := m.userTimes[id]
	if !ok {
		return nil, entities.ErrUserTimeNotFound
	}
	delete(m.userTimes, id)
	return &ut, nil
}
