// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"smt-backend/config"
	"smt-backend/internal/repository/mongodb"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	ReferenceInterface
	UserInterface
	TeamInterface
	MeetingConfigInterface
	MeetingInterface
	UserTimeInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "mongo":
		return mongodb.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
