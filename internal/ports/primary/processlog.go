package primary

import (
	"context"
	"time"

	"github.com/example/rcb/internal/models"
)

// ProcessLogService is the primary port for reactor shift logging.
type ProcessLogService interface {
	// Record appends one reactor reading.
	Record(ctx context.Context, req RecordProcessLogRequest) (*models.ProcessLog, error)

	// List returns readings in the requested window, most recent first.
	List(ctx context.Context, q ProcessLogQuery) ([]*models.ProcessLog, error)
}

// RecordProcessLogRequest describes one reactor reading.
type RecordProcessLogRequest struct {
	Operator     string
	TolueneValue float64
	FeedRate     float64
	Reactor1Temp float64
	Reactor2Temp float64
	Reactor1Hz   float64
	Reactor2Hz   float64
}

// ProcessLogQuery contains filter options for listing reactor readings.
type ProcessLogQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}
