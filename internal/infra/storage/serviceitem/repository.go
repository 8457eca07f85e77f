package serviceitem

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все услуги каталога
func (r *Repository) List(ctx context.Context) ([]domain.ServiceItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "duration_minutes", "notes").
		From("services").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// GetByIDs возвращает услуги по списку ID
// Если хотя бы один ID отсутствует в каталоге, возвращает ErrServiceNotFound:
// бронирование с несуществующей услугой не имеет длительности
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]domain.ServiceItem, error) {
	if len(ids) == 0 {
		return []domain.ServiceItem{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "duration_minutes", "notes").
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := r.scanServices(rows)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]bool, len(services))
	for _, s := range services {
		found[s.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
	}

	return services, nil
}

func (r *Repository) scanServices(rows *sql.Rows) ([]domain.ServiceItem, error) {
	services := make([]domain.ServiceItem, 0)

	for rows.Next() {
		var s domain.ServiceItem
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes, &s.Notes); err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
