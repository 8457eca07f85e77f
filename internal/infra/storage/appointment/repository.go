package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"client_name",
	"professional_id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"services",
	"status",
	"final_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := json.Marshal(appt.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeServices, err)
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_name",
			"professional_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"services",
			"status",
			"notes",
		).
		Values(
			appt.ClientName,
			appt.ProfessionalID,
			appt.Date,
			appt.StartTime,
			appt.TotalDurationMinutes(),
			servicesJSON,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// CreateBatch создает несколько записей одной серии (рекуррентное бронирование)
// Ожидает активную транзакцию в контексте: серия либо сохраняется целиком, либо никак
func (r *Repository) CreateBatch(ctx context.Context, appts []*domain.Appointment) ([]*domain.Appointment, error) {
	for _, appt := range appts {
		if _, err := r.Create(ctx, appt); err != nil {
			return nil, err
		}
	}
	return appts, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, дате/периоду, статусу и включению отменённых.
// Для выборки на конкретную дату внутри транзакции добавляет FOR UPDATE,
// чтобы проверка доступности слота и вставка были атомарны
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}

	// Конкретная дата или период
	singleDate := false
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
		singleDate = true
	} else {
		if filter.StartDate != nil {
			selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
		}
		if filter.EndDate != nil {
			selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
		}
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCanceled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCanceled)})
	}

	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	// Блокировка строк дня при проверке доступности внутри транзакции
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Update обновляет перенесённую запись (дата, время, услуги, мастер, заметки)
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := json.Marshal(appt.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Update: %v", ErrEncodeServices, err)
	}

	query, args, err := psqlbuilder.Update("appointments").
		Set("client_name", appt.ClientName).
		Set("professional_id", appt.ProfessionalID).
		Set("appointment_date", appt.Date).
		Set("start_time", appt.StartTime).
		Set("duration_minutes", appt.TotalDurationMinutes()).
		Set("services", servicesJSON).
		Set("notes", appt.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// Complete переводит запись в completed с фиксацией итоговой цены
func (r *Repository) Complete(ctx context.Context, id int64, finalPrice float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("final_price", finalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Complete")
}

// Cancel отменяет запись с указанием причины
// Отменённая запись освобождает свой слот, но остаётся в истории
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCanceled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt            domain.Appointment
		servicesJSON    []byte
		durationMinutes int
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
		cancelledAt     sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ProfessionalID,
		&appt.Date,
		&appt.StartTime,
		&durationMinutes,
		&servicesJSON,
		&appt.Status,
		&appt.FinalPrice,
		&appt.Notes,
		&appt.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(servicesJSON, &appt.Services); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeServices, err)
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		appt.CancelledAt = &t
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
