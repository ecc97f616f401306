package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

// BatchQuoteItem is the outcome of one request in a batch. Exactly one of
// Quote and Err is set.
type BatchQuoteItem struct {
	Index int    `json:"index"`
	Quote *Quote `json:"quote,omitempty"`
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

type BatchQuoteResult struct {
	Items        []BatchQuoteItem `json:"items"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	DurationMs   int64            `json:"duration_ms"`
}

// CalculateBookingPrices prices independent requests in parallel. Items keep
// the input order and a failing request does not fail the batch.
func (s *PricingService) CalculateBookingPrices(ctx context.Context, reqs []QuoteRequest) (BatchQuoteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PricingService.CalculateBookingPrices")
	defer span.End()

	start := time.Now()
	result := BatchQuoteResult{Items: make([]BatchQuoteItem, len(reqs))}
	if len(reqs) == 0 {
		return result, nil
	}

	workerCount := min(s.maxWorkers, len(reqs))
	result.WorkerCount = workerCount

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchQuoteResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var workers sync.WaitGroup
	for i, req := range reqs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item := BatchQuoteItem{Index: i}
			quote, err := s.CalculateBookingPrice(ctx, req)
			if err != nil {
				item.Err = err
				item.Error = err.Error()
				failedCount.Add(1)
			} else {
				item.Quote = &quote
				successCount.Add(1)
			}
			result.Items[i] = item
		}); err != nil {
			workers.Done()
			workers.Wait()
			return BatchQuoteResult{}, fmt.Errorf("submit quote to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.DurationMs = time.Since(start).Milliseconds()

	s.logger.InfoContext(ctx, "batch quote completed",
		"requests", len(reqs),
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"workers", workerCount,
	)
	return result, nil
}
