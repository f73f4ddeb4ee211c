// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"smt-backend/internal/usecase"

	"go.uber.org/zap"
)

// Handler binds HTTP requests to the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
