package mongodb

import (
	"context"

	"smt-backend/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateUser inserts a user; a duplicate email yields ErrEmailTaken.
func (p *Mongo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	id, err := p.users.insert(ctx, &user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrEmailTaken
		}
		p.log.Errorw("failed to insert user", "error", err)
		return nil, err
	}
	user.ID = id

	p.log.Infow("user created", "user_id", id.Hex())
	return &user, nil
}

// GetUser fetches a user by id.
func (p *Mongo) GetUser(ctx context.Context, id entities.ID) (*entities.User, error) {
	return p.users.findByID(ctx, id)
}

// GetUserByEmail fetches a user by exact email.
func (p *Mongo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return p.users.findOne(ctx, bson.M{"email": email})
}

// UpdateUserName renames a user and returns the updated document.
func (p *Mongo) UpdateUserName(ctx context.Context, id entities.ID, name string) (*entities.User, error) {
	u, err := p.users.set(ctx, id, bson.M{"name": name})
	if err != nil {
		return nil, err
	}
	p.log.Infow("user renamed", "user_id", id.Hex())
	return u, nil
}

// DeleteUser removes a user and returns the removed document.
func (p *Mongo) DeleteUser(ctx context.Context, id entities.ID) (*entities.User, error) {
	u, err := p.users.remove(ctx, id)
	if err != nil {
		return nil, err
	}
	p.log.Infow("user deleted", "user_id", id.Hex())
	return u, nil
}
