package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
)

type SpecialDateRepository struct {
	mu    sync.RWMutex
	items map[string]calendar.SpecialDate
}

func NewSpecialDateRepository(items []calendar.SpecialDate) *SpecialDateRepository {
	byKey := make(map[string]calendar.SpecialDate, len(items))
	for _, item := range items {
		byKey[specialDateKey(item.ClubID, item.Date)] = item
	}
	return &SpecialDateRepository{items: byKey}
}

func (r *SpecialDateRepository) FindSpecialDate(_ context.Context, clubID, date string) (calendar.SpecialDate, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[specialDateKey(clubID, date)]
	if !ok {
		return calendar.SpecialDate{}, false, nil
	}
	return item, true, nil
}

func (r *SpecialDateRepository) Upsert(_ context.Context, item calendar.SpecialDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[specialDateKey(item.ClubID, item.Date)] = item
	return nil
}

func specialDateKey(clubID, date string) string {
	return clubID + "::" + date
}
