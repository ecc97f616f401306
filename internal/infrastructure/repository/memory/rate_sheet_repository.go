package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
)

type RateSheetRepository struct {
	mu         sync.RWMutex
	sheetsByID map[string]ratesheet.RateSheet
}

func NewRateSheetRepository(sheets []ratesheet.RateSheet) *RateSheetRepository {
	byID := make(map[string]ratesheet.RateSheet, len(sheets))
	for _, sheet := range sheets {
		byID[sheet.ID] = sheet.Clone()
	}
	return &RateSheetRepository{sheetsByID: byID}
}

// Query returns active sheets in candidate order, capped at q.Limit.
func (r *RateSheetRepository) Query(_ context.Context, q ratesheet.Query) ([]ratesheet.RateSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ratesheet.RateSheet, 0)
	for _, sheet := range r.sheetsByID {
		if sheet.ClubID != q.ClubID || sheet.DayType != q.DayType || sheet.TimeSlot != q.TimeSlot {
			continue
		}
		if sheet.Status != ratesheet.StatusActive {
			continue
		}
		out = append(out, sheet.Clone())
	}

	ratesheet.SortCandidates(out)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *RateSheetRepository) Upsert(_ context.Context, sheet ratesheet.RateSheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sheetsByID[sheet.ID] = sheet.Clone()
	return nil
}
