package usecase

import (
	"time"

	"smt-backend/internal/repository"
	"smt-backend/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TeamUsecaseInterface
	MeetingConfigUsecaseInterface
	MeetingUsecaseInterface
	UserTimeUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, timeout)
}
