package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository машины или маршруты: таблицы одинаковой формы (id, name, created_at)
type CatalogRepository struct {
	*base.Repository
	catalog model.Catalog
}

// NewCarRepository репозиторий машин
func NewCarRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{Repository: base.NewRepository(pool), catalog: model.CatalogCars}
}

// NewRouteRepository репозиторий маршрутов
func NewRouteRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{Repository: base.NewRepository(pool), catalog: model.CatalogRoutes}
}

// Catalog какой справочник обслуживает репозиторий
func (r *CatalogRepository) Catalog() model.Catalog {
	return r.catalog
}

// table имя таблицы берётся только из констант model.Catalog
func (r *CatalogRepository) table() string {
	switch r.catalog {
	case model.CatalogRoutes:
		return "routes"
	default:
		return "cars"
	}
}

// List возвращает все записи в порядке добавления
func (r *CatalogRepository) List(ctx context.Context) ([]*model.CatalogEntry, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at FROM %s ORDER BY id`, r.table())

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.catalog, err)
	}
	defer rows.Close()

	var entries []*model.CatalogEntry
	for rows.Next() {
		var e model.CatalogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.catalog, err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.catalog, err)
	}

	return entries, nil
}

// GetOrCreate находит запись по точному имени или создаёт новую
func (r *CatalogRepository) GetOrCreate(ctx context.Context, name string) (*model.CatalogEntry, bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, created_at
	`, r.table())

	var e model.CatalogEntry
	err := r.QueryRow(ctx, query, name).Scan(&e.ID, &e.Name, &e.CreatedAt)
	if err == nil {
		return &e, true, nil
	}
	if !base.IsNotFound(err) {
		return nil, false, fmt.Errorf("create %s entry: %w", r.catalog, err)
	}

	existing, err := r.GetByExactName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("%s entry %q vanished after conflict", r.catalog, name)
	}
	return existing, false, nil
}

// GetByExactName ищет запись по имени с учётом регистра, nil если не найдена
func (r *CatalogRepository) GetByExactName(ctx context.Context, name string) (*model.CatalogEntry, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at FROM %s WHERE name = $1`, r.table())

	var e model.CatalogEntry
	err := r.QueryRow(ctx, query, name).Scan(&e.ID, &e.Name, &e.CreatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s entry by name: %w", r.catalog, err)
	}
	return &e, nil
}

// Delete удаляет запись
func (r *CatalogRepository) Delete(ctx context.Context, entry *model.CatalogEntry) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table())

	if _, err := r.ExecAffected(ctx, query, entry.ID); err != nil {
		return fmt.Errorf("delete %s entry: %w", r.catalog, err)
	}
	return nil
}
