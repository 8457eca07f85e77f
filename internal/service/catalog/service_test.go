package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	"github.com/m04kA/BRB-ScheduleService/pkg/ptr"
)

type mockServiceRepo struct {
	services []domain.ServiceItem
	err      error
}

func (m *mockServiceRepo) List(ctx context.Context) ([]domain.ServiceItem, error) {
	return m.services, m.err
}

type mockProfessionalRepo struct {
	professionals []domain.Professional
	byID          *domain.Professional
	byIDErr       error
	err           error
}

func (m *mockProfessionalRepo) List(ctx context.Context) ([]domain.Professional, error) {
	return m.professionals, m.err
}

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return m.byID, m.byIDErr
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_ListServices(t *testing.T) {
	svcRepo := &mockServiceRepo{
		services: []domain.ServiceItem{
			{ID: 1, Name: "Стрижка", Price: 1500, DurationMinutes: 30},
			{ID: 2, Name: "Бритьё", Price: 800, DurationMinutes: 45, Notes: ptr.Ptr("горячее полотенце")},
		},
	}
	svc := NewService(svcRepo, &mockProfessionalRepo{}, noopLogger{})

	resp, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, int64(1), resp.Services[0].ID)
	assert.Equal(t, "Стрижка", resp.Services[0].Name)
	assert.Equal(t, 1500.0, resp.Services[0].Price)
	assert.Equal(t, 30, resp.Services[0].DurationMinutes)
	require.NotNil(t, resp.Services[1].Notes)
	assert.Equal(t, "горячее полотенце", *resp.Services[1].Notes)
}

func TestService_ListServices_RepoError(t *testing.T) {
	svcRepo := &mockServiceRepo{err: errors.New("connection refused")}
	svc := NewService(svcRepo, &mockProfessionalRepo{}, noopLogger{})

	resp, err := svc.ListServices(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestService_ListProfessionals(t *testing.T) {
	profRepo := &mockProfessionalRepo{
		professionals: []domain.Professional{
			{ID: 1, Name: "Алексей", Specialty: "Барбер"},
			{ID: 2, Name: "Мария", Specialty: "Колорист", ImageURL: ptr.Ptr("https://cdn.example.com/m.jpg")},
		},
	}
	svc := NewService(&mockServiceRepo{}, profRepo, noopLogger{})

	resp, err := svc.ListProfessionals(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Professionals, 2)
	assert.Equal(t, "Алексей", resp.Professionals[0].Name)
	assert.Nil(t, resp.Professionals[0].ImageURL)
	require.NotNil(t, resp.Professionals[1].ImageURL)
	assert.Equal(t, "https://cdn.example.com/m.jpg", *resp.Professionals[1].ImageURL)
}

func TestService_GetProfessional(t *testing.T) {
	profRepo := &mockProfessionalRepo{
		byID: &domain.Professional{ID: 7, Name: "Игорь", Specialty: "Барбер"},
	}
	svc := NewService(&mockServiceRepo{}, profRepo, noopLogger{})

	resp, err := svc.GetProfessional(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Игорь", resp.Name)
	assert.Equal(t, "Барбер", resp.Specialty)
}

func TestService_GetProfessional_NotFound(t *testing.T) {
	profRepo := &mockProfessionalRepo{byIDErr: professionalRepo.ErrProfessionalNotFound}
	svc := NewService(&mockServiceRepo{}, profRepo, noopLogger{})

	resp, err := svc.GetProfessional(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Nil(t, resp)
}

func TestService_GetProfessional_RepoError(t *testing.T) {
	profRepo := &mockProfessionalRepo{byIDErr: errors.New("connection refused")}
	svc := NewService(&mockServiceRepo{}, profRepo, noopLogger{})

	_, err := svc.GetProfessional(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
