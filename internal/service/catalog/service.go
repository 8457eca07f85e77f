package catalog

import (
	"context"
	"errors"
	"fmt"

	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	"github.com/m04kA/BRB-ScheduleService/internal/service/catalog/models"
)

// Service сервис каталога услуг и мастеров
type Service struct {
	serviceRepo      ServiceItemRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceItemRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// ListServices возвращает каталог услуг салона
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching service catalog")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// ListProfessionals возвращает список мастеров салона
func (s *Service) ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error) {
	s.logger.Info("ListProfessionals: fetching professionals")

	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProfessionals: successfully fetched %d professionals", len(professionals))
	return models.FromDomainProfessionalList(professionals), nil
}

// GetProfessional возвращает мастера по ID
func (s *Service) GetProfessional(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetProfessional: fetching professional id=%d", id)

	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetProfessional: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetProfessional: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessional: successfully fetched professional id=%d", id)
	return models.FromDomainProfessional(professional), nil
}
