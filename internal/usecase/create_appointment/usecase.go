package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/serviceitem"
	settingsRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/settings"
)

// UseCase use case для создания записи, одиночной или повторяющейся серии
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

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, professional=%d, date=%s, time=%s, services=%v",
		req.ClientName, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услуги из каталога, они копируются в запись как снимок
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 4. Собираем параметры повторения
	recurrence := domain.RecurrenceSettings{Type: domain.RecurrenceNone}
	if req.Recurrence != nil {
		recurrence = domain.RecurrenceSettings{
			Type:  domain.RecurrenceType(req.Recurrence.Type),
			Count: req.Recurrence.Count,
		}
	}

	// Переменные для хранения результата
	var persisted []*domain.Appointment
	var skipped int

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем настройки календаря салона
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Warn("CreateAppointment: shop settings not found")
				return ErrSettingsNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 5.2. Собираем первую запись серии
		first := &domain.Appointment{
			ClientName:     req.ClientName,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			Status:         domain.StatusPending,
			Services:       services,
			Notes:          req.Notes,
		}

		// 5.3. Получаем записи мастера на эту дату с блокировкой (FOR UPDATE)
		dayFilter := domain.ScheduleFilter{
			ProfessionalID:  &req.ProfessionalID,
			Date:            &req.Date,
			IncludeCanceled: false,
		}
		dayAppointments, err := uc.apptRepo.GetWithFilter(txCtx, dayFilter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.4. Первая запись валидируется строго: закрытый день, выход за
		// рабочие часы или занятый слот - ошибка, а не пропуск
		if err := validateSlot(settings, dayAppointments, first); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 5.5. Проецируем серию повторений
		toCreate := []*domain.Appointment{first}
		if recurrence.IsRepeating() {
			// Даты серии детерминированы (якорь сдвигается даже при пропуске),
			// поэтому горизонт выборки известен заранее
			horizon := req.Date
			for i := 0; i < recurrence.Count; i++ {
				horizon = recurrence.NextDate(horizon)
			}

			rangeFilter := domain.ScheduleFilter{
				ProfessionalID:  &req.ProfessionalID,
				StartDate:       &req.Date,
				EndDate:         &horizon,
				IncludeCanceled: false,
			}
			existing, err := uc.apptRepo.GetWithFilter(txCtx, rangeFilter)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to get appointments for recurrence: %v", err)
				return fmt.Errorf("%w: failed to get appointments for recurrence: %v", ErrInternal, err)
			}

			toCreate, skipped = projectRecurrence(settings, existing, first, recurrence)
			uc.logger.Info("CreateAppointment: projected recurrence type=%s count=%d: %d to create, %d skipped",
				recurrence.Type, recurrence.Count, len(toCreate), skipped)
		}

		// 5.6. Сохраняем всю серию
		persisted, err = uc.apptRepo.CreateBatch(txCtx, toCreate)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointments: %v", err)
			return fmt.Errorf("%w: failed to create appointments: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created %d appointments, first id=%d",
		len(persisted), persisted[0].ID)

	// Конвертируем в response
	results := make([]AppointmentResult, len(persisted))
	for i, appt := range persisted {
		result := AppointmentResult{
			ID:              appt.ID,
			ClientName:      appt.ClientName,
			ProfessionalID:  appt.ProfessionalID,
			Date:            appt.Date,
			StartTime:       appt.StartTime,
			DurationMinutes: appt.TotalDurationMinutes(),
			Status:          string(appt.Status),
			Services:        appt.Services,
			Notes:           appt.Notes,
			CreatedAt:       appt.CreatedAt,
			UpdatedAt:       appt.UpdatedAt,
		}
		if end, err := appt.StartTime.AddMinutes(appt.TotalDurationMinutes()); err == nil {
			result.EndTime = end
		}
		results[i] = result
	}

	return &Response{
		Appointments: results,
		CreatedCount: len(results),
		SkippedCount: skipped,
	}, nil
}
