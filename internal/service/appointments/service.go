package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetSchedule получает расписание с гибкой фильтрацией
//
// Примеры использования:
// - Все записи на дату: указать Date
// - Записи за период: StartDate и EndDate
// - Записи одного мастера: указать ProfessionalID
// - Включая отменённые: IncludeCanceled = true
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := "GetSchedule: fetching appointments"
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format("2006-01-02"))
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCanceled {
		logMsg += ", includeCanceled=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSchedule: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appts, err := s.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись
// Отменить можно только запись в статусе pending, слот при этом освобождается
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", appointmentID)

	// Получаем запись
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	// Отменяем запись
	if err := s.apptRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// Complete завершает запись и фиксирует итоговую цену
// Если цена в запросе не указана, берётся суммарная цена услуг записи
func (s *Service) Complete(ctx context.Context, appointmentID int64, req *models.CompleteAppointmentRequest) error {
	s.logger.Info("Complete: completing appointment id=%d", appointmentID)

	// Получаем запись
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли завершить запись
	if !appt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", appointmentID, appt.Status)
		return ErrCannotComplete
	}

	// Определяем итоговую цену
	finalPrice := appt.TotalPrice()
	if req.FinalPrice != nil {
		if *req.FinalPrice < 0 {
			s.logger.Warn("Complete: negative final price %f for appointment id=%d", *req.FinalPrice, appointmentID)
			return fmt.Errorf("%w: final price must be non-negative", ErrInvalidInput)
		}
		finalPrice = *req.FinalPrice
	}

	// Завершаем запись
	if err := s.apptRepo.Complete(ctx, appointmentID, finalPrice); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found during completion", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%d with final price=%.2f", appointmentID, finalPrice)
	return nil
}
