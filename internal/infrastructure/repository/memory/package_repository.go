package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
)

type PackageRepository struct {
	mu   sync.RWMutex
	byID map[string]stay.Package
}

func NewPackageRepository(packages []stay.Package) *PackageRepository {
	byID := make(map[string]stay.Package, len(packages))
	for _, pkg := range packages {
		byID[pkg.ID] = clonePackage(pkg)
	}
	return &PackageRepository{byID: byID}
}

func (r *PackageRepository) GetByID(_ context.Context, packageID string) (stay.Package, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pkg, ok := r.byID[packageID]
	if !ok {
		return stay.Package{}, false, nil
	}
	return clonePackage(pkg), true, nil
}

func clonePackage(pkg stay.Package) stay.Package {
	copied := pkg
	copied.Pricing.Prices = pkg.Pricing.Prices.Clone()
	return copied
}
