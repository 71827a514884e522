package repo

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/infra"
	"storefront/internal/sqlinline"
)

// LocationRepositoryPG implements domain.LocationRepository using PostgreSQL.
type LocationRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewLocationRepository(sql infra.SQLExecutor) *LocationRepositoryPG {
	return &LocationRepositoryPG{sql: sql}
}

func (r *LocationRepositoryPG) ListActiveKiosks(ctx context.Context) ([]domain.Kiosk, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListActiveKiosks)
	if err != nil {
		return nil, fmt.Errorf("list kiosks: %w", err)
	}
	defer rows.Close()

	items := []domain.Kiosk{}
	for rows.Next() {
		var k domain.Kiosk
		if err := rows.Scan(&k.ID, &k.Name, &k.Campus, &k.Address, &k.IsActive, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kiosk: %w", err)
		}
		items = append(items, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list kiosks: %w", err)
	}
	return items, nil
}

func (r *LocationRepositoryPG) ListActiveCloudKitchens(ctx context.Context) ([]domain.CloudKitchen, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListActiveCloudKitchens)
	if err != nil {
		return nil, fmt.Errorf("list cloud kitchens: %w", err)
	}
	defer rows.Close()

	items := []domain.CloudKitchen{}
	for rows.Next() {
		var k domain.CloudKitchen
		if err := rows.Scan(&k.ID, &k.Name, &k.City, &k.Address, &k.DeliveryRadius, &k.IsActive, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cloud kitchen: %w", err)
		}
		items = append(items, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cloud kitchens: %w", err)
	}
	return items, nil
}

// GetKiosk returns domain.ErrNotFound for unknown ids.
func (r *LocationRepositoryPG) GetKiosk(ctx context.Context, id int64) (*domain.Kiosk, error) {
	var k domain.Kiosk
	err := r.sql.QueryRow(ctx, sqlinline.QSelectKiosk, id).
		Scan(&k.ID, &k.Name, &k.Campus, &k.Address, &k.IsActive, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get kiosk %d: %w", id, err)
	}
	return &k, nil
}

// GetCloudKitchen returns domain.ErrNotFound for unknown ids.
func (r *LocationRepositoryPG) GetCloudKitchen(ctx context.Context, id int64) (*domain.CloudKitchen, error) {
	var k domain.CloudKitchen
	err := r.sql.QueryRow(ctx, sqlinline.QSelectCloudKitchen, id).
		Scan(&k.ID, &k.Name, &k.City, &k.Address, &k.DeliveryRadius, &k.IsActive, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cloud kitchen %d: %w", id, err)
	}
	return &k, nil
}

var _ domain.LocationRepository = (*LocationRepositoryPG)(nil)
