package service

import (
	"todokeeper/internal/config"
	"todokeeper/internal/logger"
	"todokeeper/internal/store"
)

// Services bundles every application service exposed to the transport layer.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices wires all services to their repositories. cfg must already be
// validated; services treat it as immutable.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
