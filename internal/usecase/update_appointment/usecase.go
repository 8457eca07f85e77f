package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	apptRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/appointment"
	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/serviceitem"
	settingsRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/settings"
)

// UseCase use case для изменения записи (перенос, смена услуг, заметок)
type UseCase struct {
	apptRepo         AppointmentRepository
	settingsRepo     SettingsRepository
	serviceRepo      ServiceItemRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	serviceRepo ServiceItemRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:         apptRepo,
		settingsRepo:     settingsRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case изменения записи
// Новый слот ревалидируется в сериализуемой транзакции, при этом сама
// запись исключается из подсчёта занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. При переносе к другому мастеру проверяем его существование
	if req.ProfessionalID != nil {
		if _, err := uc.professionalRepo.GetByID(ctx, *req.ProfessionalID); err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("UpdateAppointment: professional id=%d not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get professional id=%d: %v", *req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}
	}

	// 3. При смене услуг получаем новый снимок из каталога
	var newServices []domain.ServiceItem
	if req.ServiceIDs != nil {
		services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: some of services %v not found", req.ServiceIDs)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		newServices = services
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем запись
		appt, err := uc.apptRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: repository error for appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 4.2. Изменять можно только запись в статусе pending
		if !appt.CanBeUpdated() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d cannot be updated, status=%s",
				req.AppointmentID, appt.Status)
			return ErrCannotUpdate
		}

		// 4.3. Применяем изменения
		if req.ClientName != nil {
			appt.ClientName = *req.ClientName
		}
		if req.ProfessionalID != nil {
			appt.ProfessionalID = *req.ProfessionalID
		}
		if req.Date != nil {
			appt.Date = *req.Date
		}
		if req.StartTime != nil {
			appt.StartTime = *req.StartTime
		}
		if newServices != nil {
			appt.Services = newServices
		}
		if req.Notes != nil {
			appt.Notes = req.Notes
		}

		// 4.4. Получаем настройки календаря салона
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Warn("UpdateAppointment: shop settings not found")
				return ErrSettingsNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 4.5. Получаем записи мастера на целевую дату с блокировкой (FOR UPDATE)
		dayFilter := domain.ScheduleFilter{
			ProfessionalID:  &appt.ProfessionalID,
			Date:            &appt.Date,
			IncludeCanceled: false,
		}
		dayAppointments, err := uc.apptRepo.GetWithFilter(txCtx, dayFilter)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.6. Ревалидируем слот, исключая саму запись из подсчёта
		if err := validateSlot(settings, dayAppointments, appt); err != nil {
			uc.logger.Warn("UpdateAppointment: slot validation failed for appointment id=%d: %v",
				req.AppointmentID, err)
			return err
		}

		// 4.7. Сохраняем изменения
		result, err = uc.apptRepo.Update(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	// Конвертируем в response
	resp := &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		ProfessionalID:  result.ProfessionalID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.TotalDurationMinutes(),
		Status:          string(result.Status),
		Services:        result.Services,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}
	if end, err := result.StartTime.AddMinutes(result.TotalDurationMinutes()); err == nil {
		resp.EndTime = end
	}

	return resp, nil
}
