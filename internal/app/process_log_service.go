package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/rcb/internal/ctxutil"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/ports/secondary"
)

// ProcessLogServiceImpl implements the ProcessLogService interface.
type ProcessLogServiceImpl struct {
	logs secondary.ProcessLogRepository
}

// NewProcessLogService creates a new ProcessLogService with injected dependencies.
func NewProcessLogService(logs secondary.ProcessLogRepository) *ProcessLogServiceImpl {
	return &ProcessLogServiceImpl{logs: logs}
}

// Record appends one reactor reading.
func (s *ProcessLogServiceImpl) Record(ctx context.Context, req primary.RecordProcessLogRequest) (*models.ProcessLog, error) {
	operator := req.Operator
	if operator == "" {
		operator = ctxutil.OperatorFromContext(ctx)
	}

	entry := &models.ProcessLog{
		LoggedAt:     time.Now().UTC(),
		Operator:     operator,
		TolueneValue: req.TolueneValue,
		FeedRate:     req.FeedRate,
		Reactor1Temp: req.Reactor1Temp,
		Reactor2Temp: req.Reactor2Temp,
		Reactor1Hz:   req.Reactor1Hz,
		Reactor2Hz:   req.Reactor2Hz,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record process log: %w", err)
	}
	return entry, nil
}

// List returns readings in the requested window, most recent first.
func (s *ProcessLogServiceImpl) List(ctx context.Context, q primary.ProcessLogQuery) ([]*models.ProcessLog, error) {
	logs, err := s.logs.List(ctx, q.From, q.To, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list process logs: %w", err)
	}
	return logs, nil
}
