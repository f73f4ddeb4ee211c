package entities

// Collection names a document collection in the store.
type Collection string

const (
	CollectionUsers          Collection = "users"
	CollectionTeams          Collection = "teams"
	CollectionMeetings       Collection = "meetings"
	CollectionMeetingConfigs Collection = "meeting_configs"
	CollectionUserTimes      Collection = "user_times"
)

// NotFoundErr returns the not-found error for documents of c.
func (c Collection) NotFoundErr() error {
	switch c {
	case CollectionUsers:
		return ErrUserNotFound
	case CollectionTeams:
		return ErrTeamNotFound
	case CollectionMeetings:
		return ErrMeetingNotFound
	case CollectionMeetingConfigs:
		return ErrMeetingConfigNotFound
	case CollectionUserTimes:
		return ErrUserTimeNotFound
	default:
		return ErrNotFound
	}
}
