package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/serviceitem"
	settingsRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/settings"
)

// UseCase use case для получения доступных слотов записи к мастеру
type UseCase struct {
	apptRepo         AppointmentRepository
	settingsRepo     SettingsRepository
	serviceRepo      ServiceItemRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	serviceRepo ServiceItemRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:         apptRepo,
		settingsRepo:     settingsRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s, services=%v",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услуги из каталога, их суммарная длительность задаёт длину слота
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := 0
	for _, s := range services {
		totalDuration += s.DurationMinutes
	}

	// 4. Получаем настройки календаря салона
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop settings not found")
			return nil, ErrSettingsNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 5. Закрытый день - пустой список слотов, не ошибка
	if !settings.IsOpenOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			ProfessionalID:  req.ProfessionalID,
			IsOpen:          false,
			DurationMinutes: totalDuration,
			Slots:           []Slot{},
		}, nil
	}

	// 6. Получаем записи мастера на эту дату (только активные)
	filter := domain.ScheduleFilter{
		ProfessionalID:  &req.ProfessionalID,
		Date:            &req.Date,
		IncludeCanceled: false,
	}

	appointments, err := uc.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Собираем занятые интервалы и генерируем слоты
	busy := busyIntervals(appointments, req.ProfessionalID, req.Date, req.ExcludeAppointmentID)

	starts, err := generateSlots(settings, busy, req.Date, totalDuration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(starts))
	for i, start := range starts {
		end, err := start.AddMinutes(totalDuration)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}
		slots[i] = Slot{StartTime: start, EndTime: end}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, date=%s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		IsOpen:          true,
		DurationMinutes: totalDuration,
		Slots:           slots,
	}, nil
}
