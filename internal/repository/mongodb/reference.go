package mongodb

import (
	"context"
	"fmt"

	"smt-backend/internal/entities"
)

// Exists performs a single point lookup by id in the named collection.
func (p *Mongo) Exists(ctx context.Context, coll entities.Collection, id entities.ID) (bool, error) {
	var (
		ok  bool
		err error
	)
	switch coll {
	case entities.CollectionUsers:
		ok, err = p.users.exists(ctx, id)
	case entities.CollectionTeams:
		ok, err = p.teams.exists(ctx, id)
	case entities.CollectionMeetings:
		ok, err = p.meetings.exists(ctx, id)
	case entities.CollectionMeetingConfigs:
		ok, err = p.meetingConfigs.exists(ctx, id)
	case entities.CollectionUserTimes:
		ok, err = p.userTimes.exists(ctx, id)
	default:
		return false, fmt.Errorf("unknown collection: %s", coll)
	}
	if err != nil {
		p.log.Errorw("reference lookup failed", "error", err, "collection", coll, "id", id.Hex())
		return false, err
	}
	return ok, nil
}
