package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/infra"
	"storefront/internal/sqlinline"
)

// DishRepositoryPG implements domain.DishRepository using PostgreSQL.
type DishRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDishRepository creates a new dish repo.
func NewDishRepository(sql infra.SQLExecutor) *DishRepositoryPG {
	return &DishRepositoryPG{sql: sql}
}

// ListAvailable returns every available dish with macros in stored form.
func (r *DishRepositoryPG) ListAvailable(ctx context.Context) ([]domain.RawDish, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListAvailableDishes)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()

	items := []domain.RawDish{}
	for rows.Next() {
		var d domain.RawDish
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Description,
			jsonMacro{&d.Calories}, jsonMacro{&d.Protein}, jsonMacro{&d.Carbs}, jsonMacro{&d.Fats},
			&d.Price, &d.Category,
			&d.IsVegetarian, &d.IsHighProtein, &d.IsLowCalorie,
			&d.ImageURL, &d.Available, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return items, nil
}

// PricesByID returns the unit price of each known dish in ids.
func (r *DishRepositoryPG) PricesByID(ctx context.Context, ids []int64) (map[int64]float64, error) {
	prices := make(map[int64]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}
	rows, err := r.sql.Query(ctx, sqlinline.QSelectDishPrices, ids)
	if err != nil {
		return nil, fmt.Errorf("select dish prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			price float64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("scan dish price: %w", err)
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select dish prices: %w", err)
	}
	return prices, nil
}

// jsonMacro scans a jsonb macro column selected as text.
type jsonMacro struct {
	dst *domain.MacroValue
}

func (j jsonMacro) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j.dst = domain.MacroValue{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), j.dst)
	case []byte:
		return json.Unmarshal(v, j.dst)
	default:
		return j.dst.Scan(src)
	}
}

var _ domain.DishRepository = (*DishRepositoryPG)(nil)
