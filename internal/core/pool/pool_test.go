package pool

import (
	"testing"

	"github.com/example/rcb/internal/models"
)

func loc(code string, position int, status models.LocationStatus) *models.Location {
	return &models.Location{Code: code, Position: position, Status: status}
}

func TestNextAvailable(t *testing.T) {
	tests := []struct {
		name      string
		locations []*models.Location
		wantCode  string
	}{
		{
			name: "lowest position wins",
			locations: []*models.Location{
				loc("WH-03", 3, models.LocationAvailable),
				loc("WH-01", 1, models.LocationAvailable),
				loc("WH-02", 2, models.LocationAvailable),
			},
			wantCode: "WH-01",
		},
		{
			name: "skips occupied",
			locations: []*models.Location{
				loc("WH-01", 1, models.LocationOccupied),
				loc("WH-02", 2, models.LocationAvailable),
			},
			wantCode: "WH-02",
		},
		{
			name: "freed slot reenters at its position",
			locations: []*models.Location{
				loc("WH-01", 1, models.LocationAvailable),
				loc("WH-02", 2, models.LocationOccupied),
				loc("WH-03", 3, models.LocationAvailable),
			},
			wantCode: "WH-01",
		},
		{
			name: "exhausted pool",
			locations: []*models.Location{
				loc("WH-01", 1, models.LocationOccupied),
				loc("WH-02", 2, models.LocationOccupied),
			},
			wantCode: "",
		},
		{
			name:     "empty pool",
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextAvailable(tt.locations)
			if tt.wantCode == "" {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil || got.Code != tt.wantCode {
				t.Errorf("expected %s, got %+v", tt.wantCode, got)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	locations := []*models.Location{
		loc("WH-01", 1, models.LocationOccupied),
		loc("WH-02", 2, models.LocationAvailable),
		loc("WH-03", 3, models.LocationAvailable),
	}

	available, occupied := Summarize(locations)
	if available != 2 || occupied != 1 {
		t.Errorf("expected 2/1, got %d/%d", available, occupied)
	}
	if available+occupied != len(locations) {
		t.Errorf("counts must partition the pool: %d + %d != %d", available, occupied, len(locations))
	}

	available, occupied = Summarize(nil)
	if available != 0 || occupied != 0 {
		t.Errorf("expected 0/0 for empty pool, got %d/%d", available, occupied)
	}
}
