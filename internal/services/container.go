package services

import (
	"task-list/internal/domain"
	"task-list/internal/logging"
	"task-list/internal/repository"
	"task-list/internal/validation"
)

// NewServiceContainer wires the store and search service over one repository
func NewServiceContainer(repo repository.Repository, directory *domain.Directory, validator *validation.TaskValidator, logger *logging.Logger) *ServiceContainer {
	store := NewTaskStore(repo, directory, WithTaskValidator(validator), WithLogger(logger))
	return &ServiceContainer{
		Directory: directory,
		Store:     store,
		Search:    NewSearchService(store),
	}
}
