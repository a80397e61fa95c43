package services

import (
	"context"

	"task-list/internal/domain"
	"task-list/internal/errors"
	"task-list/internal/logging"
	"task-list/internal/repository"
	"task-list/internal/validation"
)

// taskStoreImpl implements the TaskStore interface
type taskStoreImpl struct {
	repo          repository.Repository
	directory     *domain.Directory
	ids           IDGenerator
	taskValidator *validation.TaskValidator
	logger        *logging.Logger
}

// StoreOption customises a TaskStore
type StoreOption func(*taskStoreImpl)

// WithIDGenerator replaces the default counter
func WithIDGenerator(ids IDGenerator) StoreOption {
	return func(s *taskStoreImpl) { s.ids = ids }
}

// WithTaskValidator replaces the default validator
func WithTaskValidator(v *validation.TaskValidator) StoreOption {
	return func(s *taskStoreImpl) { s.taskValidator = v }
}

// WithLogger sets the logger used for store events
func WithLogger(logger *logging.Logger) StoreOption {
	return func(s *taskStoreImpl) { s.logger = logger.WithComponent("store") }
}

// NewTaskStore creates a new TaskStore over repo
func NewTaskStore(repo repository.Repository, directory *domain.Directory, opts ...StoreOption) TaskStore {
	s := &taskStoreImpl{
		repo:          repo,
		directory:     directory,
		ids:           NewCounterIDs(),
		taskValidator: validation.NewTaskValidator(),
		logger:        logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateDraft reports title problems as validation errors and every
// other field problem as invalid input
func (s *taskStoreImpl) validateDraft(draft domain.Draft) error {
	if err := s.taskValidator.ValidateTitle(draft.Title); err != nil {
		return errors.NewValidationError(fieldMessage(err), err)
	}
	if err := s.taskValidator.ValidateDraft(draft, s.directory); err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, fieldMessage(err))
	}
	return nil
}

func fieldMessage(err error) string {
	if verr, ok := err.(*validation.ValidationError); ok {
		return verr.GetUserFriendlyMessage()
	}
	return err.Error()
}

// Create creates a task from the draft
func (s *taskStoreImpl) Create(ctx context.Context, draft domain.Draft) (*domain.Task, error) {
	if err := s.validateDraft(draft); err != nil {
		s.logger.Debug("task rejected", "error", err.Error())
		return nil, err
	}

	task := draft.Task(s.ids.Next())
	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Debug("task created", "task_id", task.ID, "title", task.Title)
	created := task.Clone()
	return &created, nil
}

// ToggleComplete flips completed and leaves every other field alone
func (s *taskStoreImpl) ToggleComplete(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			s.logger.Warn("toggle of unknown task", "task_id", id)
		}
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Debug("task toggled", "task_id", id, "completed", task.Completed)
	return &task, nil
}

// List returns a snapshot of the collection
func (s *taskStoreImpl) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}
