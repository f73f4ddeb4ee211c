// Package domain contains application Usecases orchestrating domain logic by user time.
package domain

import (
	"context"
	"errors"

	"smt-backend/internal/entities"
)

func userTimeRefs(ut entities.UserTime) []reference {
	return []reference{
		ref(entities.CollectionUsers, ut.UserID),
		ref(entities.CollectionMeetings, ut.MeetingID),
	}
}

// CreateUserTime records time for an existing user in an existing meeting.
func (u *Usecase) CreateUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return checkedWrite(ctx, u, userTimeRefs(ut), func(ctx context.Context) (*entities.UserTime, error) {
		return u.repo.CreateUserTime(ctx, ut)
	})
}

// UserTime returns a time record by id.
func (u *Usecase) UserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUserTime(ctx, id)
}

// UpdateUserTime replaces user, meeting and time of the record identified by ut.ID.
func (u *Usecase) UpdateUserTime(ctx context.Context, ut entities.UserTime) (*entities.UserTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return checkedWrite(ctx, u, userTimeRefs(ut), func(ctx context.Context) (*entities.UserTime, error) {
		return u.repo.ReplaceUserTime(ctx, ut)
	})
}

// DeleteUserTime removes a time record; a second delete reports ErrAlreadyDeleted.
func (u *Usecase) DeleteUserTime(ctx context.Context, id entities.ID) (*entities.UserTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ut, err := u.repo.DeleteUserTime(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrUserTimeNotFound) {
			return nil, entities.ErrAlreadyDeleted
		}
		return nil, err
	}
	return ut, nil
}
