package teampricing

import "context"

// Repository describes team pricing configuration lookups.
type Repository interface {
	GetByClub(ctx context.Context, clubID string) (Config, bool, error)
}
