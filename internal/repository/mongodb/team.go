package mongodb

import (
	"context"

	"smt-backend/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateTeam inserts a team with an already validated member list.
func (p *Mongo) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	id, err := p.teams.insert(ctx, &team)
	if err != nil {
		p.log.Errorw("failed to insert team", "error", err, "team", team.Name)
		return nil, err
	}
	team.ID = id

	p.log.Infow("team created", "team_id", id.Hex(), "members", len(team.Users))
	return &team, nil
}

// GetTeam fetches a team by id.
func (p *Mongo) GetTeam(ctx context.Context, id entities.ID) (*entities.Team, error) {
	return p.teams.findByID(ctx, id)
}

// UpdateTeamName renames a team and returns the updated document.
func (p *Mongo) UpdateTeamName(ctx context.Context, id entities.ID, name string) (*entities.Team, error) {
	return p.teams.set(ctx, id, bson.M{"name": name})
}
