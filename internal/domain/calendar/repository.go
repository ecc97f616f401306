package calendar

import "context"

// Repository describes special-date lookups needed by the classifier.
type Repository interface {
	FindSpecialDate(ctx context.Context, clubID, date string) (SpecialDate, bool, error)
}
