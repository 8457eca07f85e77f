package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/settings"
	"github.com/m04kA/BRB-ScheduleService/internal/service/settings/models"
)

// Service сервис для работы с настройками салона
type Service struct {
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get получает текущие настройки салона
func (s *Service) Get(ctx context.Context) (*models.ShopSettingsResponse, error) {
	s.logger.Info("Get: fetching shop settings")

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: shop settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched settings for shop=%s", settings.ShopName)
	return models.FromDomainSettings(settings), nil
}

// Update заменяет настройки салона целиком, включая список особых дат.
// Замена настроек и особых дат выполняется в одной транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateShopSettingsRequest) (*models.ShopSettingsResponse, error) {
	s.logger.Info("Update: updating shop settings, shop=%s, workingDays=%v", req.ShopName, req.WorkingDays)

	// 1. Конвертируем request в domain модель
	domainSettings, err := req.ToDomainSettings()
	if err != nil {
		s.logger.Warn("Update: invalid settings payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Валидируем настройки
	if err := s.validateSettings(domainSettings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем в транзакции
	var updated *domain.ShopSettings
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.settingsRepo.Update(txCtx, domainSettings)
		return txErr
	})
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for shop=%s", updated.ShopName)
	return models.FromDomainSettings(updated), nil
}

// UpsertSpecialDay добавляет или заменяет особую дату календаря.
// На одну дату хранится одна запись, повторная загрузка перезаписывает её
func (s *Service) UpsertSpecialDay(ctx context.Context, payload *models.SpecialDayPayload) error {
	s.logger.Info("UpsertSpecialDay: upserting special day date=%s, closed=%v", payload.Date, payload.IsClosed)

	day, err := payload.ToDomainSpecialDay()
	if err != nil {
		s.logger.Warn("UpsertSpecialDay: invalid payload: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if day.Hours != nil {
		if err := s.validateHours(*day.Hours); err != nil {
			s.logger.Warn("UpsertSpecialDay: invalid hours for date=%s: %v", payload.Date, err)
			return err
		}
	}

	if err := s.settingsRepo.UpsertSpecialDay(ctx, *day); err != nil {
		s.logger.Error("UpsertSpecialDay: repository error for date=%s: %v", payload.Date, err)
		return fmt.Errorf("%w: UpsertSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSpecialDay: successfully upserted special day date=%s", payload.Date)
	return nil
}

// DeleteSpecialDay удаляет особую дату, возвращая дате обычное недельное расписание
func (s *Service) DeleteSpecialDay(ctx context.Context, date string) error {
	s.logger.Info("DeleteSpecialDay: deleting special day date=%s", date)

	parsed, err := parseDate(date)
	if err != nil {
		s.logger.Warn("DeleteSpecialDay: invalid date=%s: %v", date, err)
		return fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	if err := s.settingsRepo.DeleteSpecialDay(ctx, parsed); err != nil {
		s.logger.Error("DeleteSpecialDay: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpecialDay: successfully deleted special day date=%s", date)
	return nil
}

// Вспомогательные методы

// validateSettings проверяет корректность настроек салона
func (s *Service) validateSettings(settings *domain.ShopSettings) error {
	if settings.ShopName == "" {
		return fmt.Errorf("%w: shop name is required", ErrInvalidInput)
	}

	if settings.MonthlyGoal < 0 {
		return fmt.Errorf("%w: monthly goal must be non-negative", ErrInvalidInput)
	}

	for _, wd := range settings.WorkingDays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: working day must be in range 0-6, got %d", ErrInvalidInput, wd)
		}
	}

	if err := s.validateHours(settings.DefaultHours); err != nil {
		return err
	}

	for _, sd := range settings.SpecialDays {
		if sd.Hours != nil {
			if err := s.validateHours(*sd.Hours); err != nil {
				return fmt.Errorf("%w for special day %s", err, sd.Date.Format(domain.DateFormat))
			}
		}
	}

	return nil
}

// validateHours проверяет, что окно работы корректно и начало строго раньше конца
func (s *Service) validateHours(hours domain.OperatingHours) error {
	if err := hours.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	if err := hours.End.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time", ErrInvalidInput)
	}
	if !hours.Start.IsBefore(hours.End) {
		return ErrInvalidTimeRange
	}
	return nil
}

func parseDate(date string) (time.Time, error) {
	return time.Parse(domain.DateFormat, date)
}
