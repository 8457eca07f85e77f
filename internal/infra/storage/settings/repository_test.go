package settings

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	now := time.Now()
	holiday := time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC)
	shortDay := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM shop_settings WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"shop_name", "monthly_goal", "open_time", "close_time", "working_days", "updated_at",
		}).AddRow("BRB Barbershop", 500000.0, "09:00", "19:00", []byte("{1,2,3,4,5,6}"), now))

	mock.ExpectQuery("SELECT day, is_closed, open_time, close_time FROM special_days ORDER BY day ASC").
		WillReturnRows(sqlmock.NewRows([]string{"day", "is_closed", "open_time", "close_time"}).
			AddRow(holiday, true, nil, nil).
			AddRow(shortDay, false, "10:00", "15:00"))

	settings, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "BRB Barbershop", settings.ShopName)
	assert.Equal(t, 500000.0, settings.MonthlyGoal)
	assert.Equal(t, types.TimeString("09:00"), settings.DefaultHours.Start)
	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	}, settings.WorkingDays)

	require.Len(t, settings.SpecialDays, 2)
	assert.True(t, settings.SpecialDays[0].IsClosed)
	assert.Nil(t, settings.SpecialDays[0].Hours)
	require.NotNil(t, settings.SpecialDays[1].Hours)
	assert.Equal(t, types.TimeString("10:00"), settings.SpecialDays[1].Hours.Start)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM shop_settings").
		WillReturnRows(sqlmock.NewRows([]string{
			"shop_name", "monthly_goal", "open_time", "close_time", "working_days", "updated_at",
		}))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	now := time.Now()

	mock.ExpectQuery("UPDATE shop_settings SET (.+) RETURNING updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	// Особые даты заменяются целиком
	mock.ExpectExec("DELETE FROM special_days").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO special_days (.+) ON CONFLICT \\(day\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), &domain.ShopSettings{
		ShopName:    "BRB Barbershop",
		MonthlyGoal: 500000,
		WorkingDays: []time.Weekday{time.Monday, time.Tuesday},
		DefaultHours: domain.OperatingHours{
			Start: types.TimeString("09:00"),
			End:   types.TimeString("19:00"),
		},
		SpecialDays: []domain.SpecialDay{
			{Date: time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), IsClosed: true},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestRepository_UpsertSpecialDay(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	day := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO special_days \\(day,is_closed,open_time,close_time\\) VALUES \\(\\$1,\\$2,\\$3,\\$4\\) ON CONFLICT \\(day\\) DO UPDATE").
		WithArgs(day, false, "10:00", "15:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSpecialDay(context.Background(), domain.SpecialDay{
		Date: day,
		Hours: &domain.OperatingHours{
			Start: types.TimeString("10:00"),
			End:   types.TimeString("15:00"),
		},
	})
	assert.NoError(t, err)
}

func TestRepository_UpsertSpecialDay_ClosedDropsHours(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	day := time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC)

	// У закрытого дня окно работы не сохраняется
	mock.ExpectExec("INSERT INTO special_days").
		WithArgs(day, true, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSpecialDay(context.Background(), domain.SpecialDay{
		Date:     day,
		IsClosed: true,
		Hours: &domain.OperatingHours{
			Start: types.TimeString("10:00"),
			End:   types.TimeString("15:00"),
		},
	})
	assert.NoError(t, err)
}

func TestRepository_DeleteSpecialDay(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	day := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM special_days WHERE day = \\$1").
		WithArgs(day).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteSpecialDay(context.Background(), day))
}

func TestRepository_DeleteSpecialDay_NotFound(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	mock.ExpectExec("DELETE FROM special_days").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSpecialDay(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrSpecialDayNotFound)
}
