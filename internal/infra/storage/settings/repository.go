package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Настройки салона хранятся одной строкой с фиксированным id
const shopSettingsRowID = 1

// Repository репозиторий конфигурации календаря салона
// Настройки и особые даты лежат в двух таблицах и собираются в
// единый domain.ShopSettings при чтении
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает настройки салона вместе со списком особых дат
func (r *Repository) Get(ctx context.Context) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"shop_name",
		"monthly_goal",
		"open_time",
		"close_time",
		"working_days",
		"updated_at",
	).
		From("shop_settings").
		Where(squirrel.Eq{"id": shopSettingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings    domain.ShopSettings
		workingDays pq.Int64Array
		updatedAt   sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ShopName,
		&settings.MonthlyGoal,
		&settings.DefaultHours.Start,
		&settings.DefaultHours.End,
		&workingDays,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.WorkingDays = make([]time.Weekday, 0, len(workingDays))
	for _, d := range workingDays {
		settings.WorkingDays = append(settings.WorkingDays, time.Weekday(d))
	}
	settings.UpdatedAt = updatedAt.Time

	specialDays, err := r.getSpecialDays(ctx, executor)
	if err != nil {
		return nil, err
	}
	settings.SpecialDays = specialDays

	return &settings, nil
}

// Update перезаписывает настройки салона и список особых дат
// Особые даты заменяются целиком: так update из формы настроек
// гарантирует не больше одной записи на дату
func (r *Repository) Update(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays := make(pq.Int64Array, 0, len(settings.WorkingDays))
	for _, d := range settings.WorkingDays {
		workingDays = append(workingDays, int64(d))
	}

	query, args, err := psqlbuilder.Update("shop_settings").
		Set("shop_name", settings.ShopName).
		Set("monthly_goal", settings.MonthlyGoal).
		Set("open_time", settings.DefaultHours.Start).
		Set("close_time", settings.DefaultHours.End).
		Set("working_days", workingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": shopSettingsRowID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	settings.UpdatedAt = updatedAt.Time

	if err := r.replaceSpecialDays(ctx, executor, settings.SpecialDays); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpsertSpecialDay создает или заменяет особую дату (last-write-wins по дате)
func (r *Repository) UpsertSpecialDay(ctx context.Context, day domain.SpecialDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var openTime, closeTime *types.TimeString
	if !day.IsClosed && day.Hours != nil {
		openTime = &day.Hours.Start
		closeTime = &day.Hours.End
	}

	query, args, err := psqlbuilder.Insert("special_days").
		Columns("day", "is_closed", "open_time", "close_time").
		Values(day.Date, day.IsClosed, openTime, closeTime).
		Suffix("ON CONFLICT (day) DO UPDATE SET is_closed = EXCLUDED.is_closed, open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteSpecialDay удаляет особую дату
func (r *Repository) DeleteSpecialDay(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"day": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialDayNotFound
	}

	return nil
}

func (r *Repository) getSpecialDays(ctx context.Context, executor dbmetrics.DBExecutor) ([]domain.SpecialDay, error) {
	query, args, err := psqlbuilder.Select("day", "is_closed", "open_time", "close_time").
		From("special_days").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.SpecialDay, 0)

	for rows.Next() {
		var (
			day       domain.SpecialDay
			openTime  types.TimeString
			closeTime types.TimeString
		)

		if err := rows.Scan(&day.Date, &day.IsClosed, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: getSpecialDays - scan row: %v", ErrScanRow, err)
		}

		if !day.IsClosed && !openTime.IsZero() && !closeTime.IsZero() {
			day.Hours = &domain.OperatingHours{Start: openTime, End: closeTime}
		}

		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSpecialDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

func (r *Repository) replaceSpecialDays(ctx context.Context, executor dbmetrics.DBExecutor, days []domain.SpecialDay) error {
	query, args, err := psqlbuilder.Delete("special_days").Where(squirrel.Expr("TRUE")).ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceSpecialDays - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceSpecialDays - execute delete: %v", ErrExecQuery, err)
	}

	for _, day := range days {
		if err := r.UpsertSpecialDay(ctx, day); err != nil {
			return err
		}
	}

	return nil
}
