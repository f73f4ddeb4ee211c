package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smt-backend/internal/entities"
)

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// reference is a foreign id that must resolve before a dependent write.
type reference struct {
	collection entities.Collection
	id         entities.ID
}

func ref(collection entities.Collection, id entities.ID) reference {
	return reference{collection: collection, id: id}
}

// checkedWrite resolves every reference in order and only then runs write.
// The checks are plain reads, so a concurrent delete can still slip in
// between the last check and the write.
func checkedWrite[T any](
	ctx context.Context,
	u *Usecase,
	refs []reference,
	write func(context.Context) (*T, error),
) (*T, error) {
	for _, r := range refs {
		ok, err := u.repo.Exists(ctx, r.collection, r.id)
		if err != nil {
			return nil, fmt.Errorf("check %s reference: %w", r.collection, err)
		}
		if !ok {
			u.log.Infow("unresolved reference", "collection", r.collection, "id", r.id.Hex())
			return nil, fmt.Errorf("%w: %s", r.collection.NotFoundErr(), r.id.Hex())
		}
	}
	return write(ctx)
}

func requireField(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", entities.ErrInvalidArgument, field)
	}
	return nil
}
