package stay

import "context"

// Repository describes package lookups.
type Repository interface {
	GetByID(ctx context.Context, packageID string) (Package, bool, error)
}
