package mongodb

import (
	"context"

	"smt-backend/internal/entities"
)

// CreateUserTime inserts a time record.
func (p *Mongo) CreateUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error) {
	id, err := p.userTimes.insert(ctx, &ut)
	if err != nil {
		p.log.Errorw("failed to insert user time", "error", err)
		return nil, err
	}
	ut.ID = id
	return &ut, nil
}

// GetUserTime fetches a time record by id.
func (p *Mongo) GetUserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error) {
	return p.userTimes.findByID(ctx, id)
}

// ReplaceUserTime overwrites user, meeting and time of the record with ut.ID.
func (p *Mongo) ReplaceUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error) {
	return p.userTimes.replace(ctx, ut.ID, &ut)
}

// DeleteUserTime removes a time record and returns it.
func (p *Mongo) DeleteUserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error) {
	ut, err := p.userTimes.remove(ctx, id)
	if err != nil {
		return nil, err
	}
	p.log.Infow("user time deleted", "user_time_id", id.Hex())
	return ut, nil
}
