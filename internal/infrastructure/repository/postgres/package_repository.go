package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
)

type PackageRepository struct {
	db *sqlx.DB
}

func NewPackageRepository(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) GetByID(ctx context.Context, packageID string) (stay.Package, bool, error) {
	const query = `
SELECT public_id, club_id, name, status, pricing, caddy_included, cart_included, created_at
FROM stay_packages
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row stayPackageTableModel
	if err := r.db.GetContext(ctx, &row, query, packageID); err != nil {
		if isNotFound(err) {
			return stay.Package{}, false, nil
		}
		return stay.Package{}, false, crerr.Wrapf(err, "get package %s", packageID)
	}

	pkg, err := row.toDomain()
	if err != nil {
		return stay.Package{}, false, err
	}
	return pkg, true, nil
}
