package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/serviceitem"
	"github.com/m04kA/BRB-ScheduleService/pkg/ptr"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.ScheduleFilter
}

func (m *mockAppointmentRepo) GetWithFilter(_ context.Context, filter domain.ScheduleFilter) ([]*domain.Appointment, error) {
	m.gotFilter = filter
	return m.appointments, m.err
}

type mockSettingsRepo struct {
	settings *domain.ShopSettings
	err      error
}

func (m *mockSettingsRepo) Get(_ context.Context) (*domain.ShopSettings, error) {
	return m.settings, m.err
}

type mockServiceRepo struct {
	services []domain.ServiceItem
	err      error
}

func (m *mockServiceRepo) GetByIDs(_ context.Context, _ []int64) ([]domain.ServiceItem, error) {
	return m.services, m.err
}

type mockProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return m.professional, m.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(appts *mockAppointmentRepo, settings *mockSettingsRepo, services *mockServiceRepo, professionals *mockProfessionalRepo) *UseCase {
	return NewUseCase(appts, settings, services, professionals, noopLogger{})
}

func defaultMocks() (*mockAppointmentRepo, *mockSettingsRepo, *mockServiceRepo, *mockProfessionalRepo) {
	return &mockAppointmentRepo{},
		&mockSettingsRepo{settings: testSettings()},
		&mockServiceRepo{services: []domain.ServiceItem{
			{ID: 1, Name: "Стрижка", Price: 1500, DurationMinutes: 30},
		}},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 1, Name: "Алексей"}}
}

func TestUseCase_Execute_Success(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	appts.appointments = []*domain.Appointment{
		testAppointment(10, 1, testDate(), "10:00", 30),
	}
	uc := newTestUseCase(appts, settings, services, professionals)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		Date:           testDate(),
		ServiceIDs:     []int64{1},
	})

	require.NoError(t, err)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, 30, resp.DurationMinutes)
	require.NotEmpty(t, resp.Slots)

	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[0].EndTime)

	for _, slot := range resp.Slots {
		taken := domain.TimeInterval{Start: "10:00", End: "10:30"}
		candidate := domain.TimeInterval{Start: slot.StartTime, End: slot.EndTime}
		assert.False(t, candidate.Overlaps(taken), "слот %s пересекается с записью", slot.StartTime)
	}

	// Фильтр выборки: только активные записи мастера на дату
	require.NotNil(t, appts.gotFilter.ProfessionalID)
	assert.Equal(t, int64(1), *appts.gotFilter.ProfessionalID)
	require.NotNil(t, appts.gotFilter.Date)
	assert.False(t, appts.gotFilter.IncludeCanceled)
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	uc := newTestUseCase(appts, settings, services, professionals)

	// Понедельник не входит в рабочие дни
	monday := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		Date:           monday,
		ServiceIDs:     []int64{1},
	})

	require.NoError(t, err)
	assert.False(t, resp.IsOpen)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ProfessionalNotFound(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	professionals.professional = nil
	professionals.err = professionalRepo.ErrProfessionalNotFound
	uc := newTestUseCase(appts, settings, services, professionals)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 99,
		Date:           testDate(),
		ServiceIDs:     []int64{1},
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	services.services = nil
	services.err = serviceRepo.ErrServiceNotFound
	uc := newTestUseCase(appts, settings, services, professionals)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		Date:           testDate(),
		ServiceIDs:     []int64{404},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_AppointmentsRepoError(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	appts.err = errors.New("connection refused")
	uc := newTestUseCase(appts, settings, services, professionals)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		Date:           testDate(),
		ServiceIDs:     []int64{1},
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	uc := newTestUseCase(appts, settings, services, professionals)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero professional", req: &Request{Date: testDate(), ServiceIDs: []int64{1}}},
		{name: "zero date", req: &Request{ProfessionalID: 1, ServiceIDs: []int64{1}}},
		{name: "no services", req: &Request{ProfessionalID: 1, Date: testDate()}},
		{name: "negative service id", req: &Request{ProfessionalID: 1, Date: testDate(), ServiceIDs: []int64{-1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ExcludeAppointment(t *testing.T) {
	appts, settings, services, professionals := defaultMocks()
	appts.appointments = []*domain.Appointment{
		testAppointment(10, 1, testDate(), "09:00", 30),
	}
	uc := newTestUseCase(appts, settings, services, professionals)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:       1,
		Date:                 testDate(),
		ServiceIDs:           []int64{1},
		ExcludeAppointmentID: ptr.Ptr(int64(10)),
	})

	require.NoError(t, err)

	// Исключённая запись не занимает свой слот
	starts := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		starts = append(starts, s.StartTime)
	}
	assert.Contains(t, starts, types.TimeString("09:00"))
}
