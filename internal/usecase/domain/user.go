// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"strings"

	"smt-backend/internal/entities"
)

// Login resolves a user by email, ignoring surrounding whitespace. No credential is checked.
func (u *Usecase) Login(ctx context.Context, email string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.TrimSpace(email)
	if err := requireField(email, "email"); err != nil {
		return nil, err
	}

	usr, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrNotAuthorized
		}
		return nil, err
	}
	return usr, nil
}

// Signup registers a user unless the email is already taken.
func (u *Usecase) Signup(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if err := requireField(user.Name, "name"); err != nil {
		return nil, err
	}
	if err := requireField(user.Email, "email"); err != nil {
		return nil, err
	}

	_, err := u.repo.GetUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, entities.ErrEmailTaken
	case !errors.Is(err, entities.ErrUserNotFound):
		return nil, err
	}

	// The unique index settles signups racing past the check above.
	created, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user signup", "user_id", created.ID.Hex())
	return created, nil
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, id entities.ID) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUser(ctx, id)
}

// RenameUser changes the user's name.
func (u *Usecase) RenameUser(ctx context.Context, id entities.ID, name string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if err := requireField(name, "name"); err != nil {
		return nil, err
	}
	return u.repo.UpdateUserName(ctx, id, name)
}

// DeleteUser removes a user. Time records pointing at it are left in place.
func (u *Usecase) DeleteUser(ctx context.Context, id entities.ID) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.repo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrAlreadyDeleted
		}
		return nil, err
	}
	return usr, nil
}
