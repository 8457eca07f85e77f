package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	apptRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/BRB-ScheduleService/pkg/ptr"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

type mockApptRepo struct {
	appt    *domain.Appointment
	apptErr error
	list    []*domain.Appointment

	cancelledID    int64
	cancelReason   string
	completedID    int64
	completedPrice float64
	gotFilter      domain.ScheduleFilter
}

func (m *mockApptRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return m.appt, m.apptErr
}

func (m *mockApptRepo) GetWithFilter(_ context.Context, filter domain.ScheduleFilter) ([]*domain.Appointment, error) {
	m.gotFilter = filter
	return m.list, nil
}

func (m *mockApptRepo) Complete(_ context.Context, id int64, finalPrice float64) error {
	m.completedID = id
	m.completedPrice = finalPrice
	return nil
}

func (m *mockApptRepo) Cancel(_ context.Context, id int64, reason string) error {
	m.cancelledID = id
	m.cancelReason = reason
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:             id,
		ClientName:     "Иван",
		ProfessionalID: 1,
		Date:           time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		Status:         domain.StatusPending,
		Services: []domain.ServiceItem{
			{ID: 1, Name: "Стрижка", Price: 1500, DurationMinutes: 30},
			{ID: 2, Name: "Бритьё", Price: 800, DurationMinutes: 15},
		},
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &mockApptRepo{appt: testAppointment(1)}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:45", resp.EndTime)
	assert.Equal(t, 45, resp.TotalDurationMinutes)
	assert.Equal(t, 2300.0, resp.TotalPrice)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &mockApptRepo{apptErr: apptRepo.ErrAppointmentNotFound}
	svc := NewService(repo, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &mockApptRepo{appt: testAppointment(1)}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: "Клиент попросил перенести",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "Клиент попросил перенести", repo.cancelReason)
}

func TestService_Cancel_NonPending(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCanceled} {
		appt := testAppointment(1)
		appt.Status = status
		repo := &mockApptRepo{appt: appt}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{CancellationReason: "причина"})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestService_Complete_DefaultPrice(t *testing.T) {
	repo := &mockApptRepo{appt: testAppointment(1)}
	svc := NewService(repo, noopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.completedID)
	// Цена не указана: берётся суммарная цена услуг записи
	assert.Equal(t, 2300.0, repo.completedPrice)
}

func TestService_Complete_ExplicitPrice(t *testing.T) {
	repo := &mockApptRepo{appt: testAppointment(1)}
	svc := NewService(repo, noopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{FinalPrice: ptr.Ptr(2000.0)})

	require.NoError(t, err)
	assert.Equal(t, 2000.0, repo.completedPrice)
}

func TestService_Complete_NegativePrice(t *testing.T) {
	repo := &mockApptRepo{appt: testAppointment(1)}
	svc := NewService(repo, noopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{FinalPrice: ptr.Ptr(-100.0)})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.completedID)
}

func TestService_Complete_NonPending(t *testing.T) {
	appt := testAppointment(1)
	appt.Status = domain.StatusCanceled
	repo := &mockApptRepo{appt: appt}
	svc := NewService(repo, noopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{})
	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestService_GetSchedule(t *testing.T) {
	repo := &mockApptRepo{list: []*domain.Appointment{testAppointment(1), testAppointment(2)}}
	svc := NewService(repo, noopLogger{})

	professionalID := int64(1)
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{
		ProfessionalID: &professionalID,
		Date:           &day,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)

	require.NotNil(t, repo.gotFilter.ProfessionalID)
	assert.Equal(t, int64(1), *repo.gotFilter.ProfessionalID)
	require.NotNil(t, repo.gotFilter.Date)
}

func TestService_GetSchedule_BadStatus(t *testing.T) {
	repo := &mockApptRepo{}
	svc := NewService(repo, noopLogger{})

	status := "archived"
	_, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
