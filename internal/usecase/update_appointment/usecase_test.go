package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	apptRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testAppointment(id int64, day time.Time, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:             id,
		ClientName:     "Иван",
		ProfessionalID: 1,
		Date:           day,
		StartTime:      types.TimeString(start),
		Status:         domain.StatusPending,
		Services: []domain.ServiceItem{
			{ID: 1, Name: "Стрижка", Price: 1500, DurationMinutes: 30},
		},
	}
}

type mockApptRepo struct {
	byID    *domain.Appointment
	byIDErr error
	day     []*domain.Appointment
	updated *domain.Appointment
}

func (m *mockApptRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return m.byID, m.byIDErr
}

func (m *mockApptRepo) GetWithFilter(_ context.Context, _ domain.ScheduleFilter) ([]*domain.Appointment, error) {
	return m.day, nil
}

func (m *mockApptRepo) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.UpdatedAt = time.Now()
	m.updated = appt
	return appt, nil
}

type mockSettingsRepo struct {
	settings *domain.ShopSettings
}

func (m *mockSettingsRepo) Get(_ context.Context) (*domain.ShopSettings, error) {
	return m.settings, nil
}

type mockServiceRepo struct {
	services []domain.ServiceItem
}

func (m *mockServiceRepo) GetByIDs(_ context.Context, _ []int64) ([]domain.ServiceItem, error) {
	return m.services, nil
}

type mockProfessionalRepo struct {
	professional *domain.Professional
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return m.professional, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func fullWeekSettings() *domain.ShopSettings {
	return &domain.ShopSettings{
		WorkingDays: []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		DefaultHours: domain.OperatingHours{
			Start: types.TimeString("09:00"),
			End:   types.TimeString("19:00"),
		},
	}
}

func newTestUseCase(repo *mockApptRepo) *UseCase {
	return NewUseCase(
		repo,
		&mockSettingsRepo{settings: fullWeekSettings()},
		&mockServiceRepo{services: []domain.ServiceItem{
			{ID: 2, Name: "Бритьё", Price: 800, DurationMinutes: 45},
		}},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 2, Name: "Борис"}},
		fakeTxManager{},
		noopLogger{},
	)
}

func TestUseCase_Execute_Reschedule(t *testing.T) {
	appt := testAppointment(1, date(2026, time.March, 10), "10:00")
	repo := &mockApptRepo{byID: appt, day: []*domain.Appointment{appt}}
	uc := newTestUseCase(repo)

	newDate := date(2026, time.March, 12)
	newStart := types.TimeString("14:00")

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		Date:          &newDate,
		StartTime:     &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, newStart, resp.StartTime)
	assert.Equal(t, types.TimeString("14:30"), resp.EndTime)
	require.NotNil(t, repo.updated)
	assert.Equal(t, newDate, repo.updated.Date)
}

func TestUseCase_Execute_SelfOverlapAllowed(t *testing.T) {
	// Сдвиг на 15 минут пересекается со старым временем самой записи:
	// запись исключается из подсчёта и перенос проходит
	appt := testAppointment(1, date(2026, time.March, 10), "10:00")
	repo := &mockApptRepo{byID: appt, day: []*domain.Appointment{appt}}
	uc := newTestUseCase(repo)

	newStart := types.TimeString("10:15")
	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		StartTime:     &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, newStart, resp.StartTime)
}

func TestUseCase_Execute_SlotTakenByOther(t *testing.T) {
	appt := testAppointment(1, date(2026, time.March, 10), "10:00")
	other := testAppointment(2, date(2026, time.March, 10), "11:00")
	repo := &mockApptRepo{byID: appt, day: []*domain.Appointment{appt, other}}
	uc := newTestUseCase(repo)

	newStart := types.TimeString("11:15")
	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		StartTime:     &newStart,
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.updated)
}

func TestUseCase_Execute_ChangeServices(t *testing.T) {
	appt := testAppointment(1, date(2026, time.March, 10), "10:00")
	repo := &mockApptRepo{byID: appt, day: []*domain.Appointment{appt}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		ServiceIDs:    []int64{2},
	})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:45"), resp.EndTime)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Бритьё", resp.Services[0].Name)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockApptRepo{byIDErr: apptRepo.ErrAppointmentNotFound}
	uc := newTestUseCase(repo)

	newStart := types.TimeString("10:00")
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 99, StartTime: &newStart})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_NonPending(t *testing.T) {
	appt := testAppointment(1, date(2026, time.March, 10), "10:00")
	appt.Status = domain.StatusCompleted
	repo := &mockApptRepo{byID: appt}
	uc := newTestUseCase(repo)

	newStart := types.TimeString("12:00")
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, StartTime: &newStart})

	assert.ErrorIs(t, err, ErrCannotUpdate)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	repo := &mockApptRepo{}
	uc := newTestUseCase(repo)

	empty := ""
	negative := int64(-1)
	badTime := types.TimeString("99:99")

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero appointment id", req: &Request{}},
		{name: "empty client name", req: &Request{AppointmentID: 1, ClientName: &empty}},
		{name: "negative professional", req: &Request{AppointmentID: 1, ProfessionalID: &negative}},
		{name: "bad start time", req: &Request{AppointmentID: 1, StartTime: &badTime}},
		{name: "empty services list", req: &Request{AppointmentID: 1, ServiceIDs: []int64{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
