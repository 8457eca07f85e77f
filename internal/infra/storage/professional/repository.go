package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий каталога мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех мастеров салона
func (r *Repository) List(ctx context.Context) ([]domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "image_url").
		From("professionals").
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

	professionals := make([]domain.Professional, 0)

	for rows.Next() {
		var p domain.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Specialty, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// GetByID возвращает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "image_url").
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Specialty, &p.ImageURL)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	return &p, nil
}
