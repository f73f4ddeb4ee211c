// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"strings"

	"smt-backend/internal/entities"

	"golang.org/x/sync/errgroup"
)

// memberFanOut bounds concurrent member lookups so one team cannot hold the whole pool.
const memberFanOut = 4

// CreateTeam creates a team keeping only members that exist, deduplicated in order.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team.Name = strings.TrimSpace(team.Name)
	if err := requireField(team.Name, "name"); err != nil {
		u.log.Errorw("failed to create team: missing name")
		return nil, err
	}

	seen := make(map[entities.ID]struct{}, len(team.Users))
	members := make([]entities.ID, 0, len(team.Users))
	for _, id := range team.Users {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		ok, err := u.repo.Exists(ctx, entities.CollectionUsers, id)
		if err != nil {
			return nil, fmt.Errorf("check team member: %w", err)
		}
		if !ok {
			u.log.Infow("dropping unknown team member", "user_id", id.Hex())
			continue
		}
		members = append(members, id)
	}
	team.Users = members

	return u.repo.CreateTeam(ctx, team)
}

// Team returns team by id.
func (u *Usecase) Team(ctx context.Context, id entities.ID) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetTeam(ctx, id)
}

// RenameTeam changes the team's name.
func (u *Usecase) RenameTeam(ctx context.Context, id entities.ID, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if err := requireField(name, "name"); err != nil {
		return nil, err
	}
	return u.repo.UpdateTeamName(ctx, id, name)
}

// TeamUsers resolves every member of the team. One unresolvable member fails
// the whole call; no partial list is returned.
func (u *Usecase) TeamUsers(ctx context.Context, id entities.ID) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	users := make([]entities.User, len(team.Users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(memberFanOut)
	for i, memberID := range team.Users {
		i, memberID := i, memberID
		g.Go(func() error {
			usr, err := u.repo.GetUser(gctx, memberID)
			if err != nil {
				return fmt.Errorf("team member %s: %w", memberID.Hex(), err)
			}
			users[i] = *usr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Errorw("failed to resolve team members", "team_id", id.Hex(), "error", err)
		return nil, err
	}
	return users, nil
}
