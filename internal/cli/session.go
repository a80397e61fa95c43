package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"task-list/internal/api"
	"task-list/internal/config"
	"task-list/internal/domain"
	"task-list/internal/logging"
	"task-list/internal/services"
	"task-list/internal/validation"
)

// Session is a ready-to-use API together with what must be released after it
type Session struct {
	API    api.API
	Logger *logging.Logger
	closer func() error
}

// Close releases the repository and the log file
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// SessionBuilder creates a session from the final configuration
type SessionBuilder func(ctx context.Context, cfg *config.Config) (*Session, error)

// NewSession wires logger, repository and services from cfg and seeds the
// sample tasks when configured
func NewSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	logger = logger.WithSession(uuid.NewString())

	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		logger.Close()
		return nil, err
	}

	validator := validation.NewTaskValidatorWithValidator(validation.NewValidatorWithConfig(cfg))
	container := services.NewServiceContainer(repo, domain.DefaultDirectory(), validator, logger)
	session := &Session{
		API:    api.New(container, api.WithDateFormat(cfg.Display.DateFormat)),
		Logger: logger,
		closer: func() error {
			repoErr := repo.Close()
			logErr := logger.Close()
			if repoErr != nil {
				return repoErr
			}
			return logErr
		},
	}

	if cfg.Session.SeedSample {
		if err := session.API.SeedSample(ctx); err != nil {
			session.Close()
			return nil, fmt.Errorf("failed to seed sample tasks: %w", err)
		}
	}

	logger.Info("session started", "backend", cfg.Store.Backend, "seeded", cfg.Session.SeedSample)
	return session, nil
}

func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewFileLogger(cfg.File, cfg.Level)
}
