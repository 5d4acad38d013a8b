package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/rcb/internal/adapters/sqlite"
	"github.com/example/rcb/internal/models"
)

func TestProcessLogAppendAndList(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProcessLogRepository(database)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	first := &models.ProcessLog{
		LoggedAt:     base,
		Operator:     "jsmith",
		TolueneValue: 42.5,
		FeedRate:     310,
		Reactor1Temp: 455.2,
		Reactor2Temp: 461.8,
		Reactor1Hz:   33.1,
		Reactor2Hz:   34.0,
	}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected Append to fill in the id")
	}

	second := &models.ProcessLog{LoggedAt: base.Add(8 * time.Hour), Operator: "mbrown", TolueneValue: 39.0}
	if err := repo.Append(ctx, second); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	logs, err := repo.List(ctx, time.Time{}, time.Time{}, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Operator != "mbrown" {
		t.Errorf("expected most recent first, got %s", logs[0].Operator)
	}
	if logs[1].TolueneValue != 42.5 || logs[1].Reactor2Temp != 461.8 {
		t.Errorf("readings did not survive round trip: %+v", logs[1])
	}

	// Window is [from, to): a to equal to the second reading excludes it.
	logs, err = repo.List(ctx, base, base.Add(8*time.Hour), 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Operator != "jsmith" {
		t.Fatalf("expected only the first reading in window, got %+v", logs)
	}

	logs, err = repo.List(ctx, time.Time{}, time.Time{}, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected limit 1 respected, got %d", len(logs))
	}
}
