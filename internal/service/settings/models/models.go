package models

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Request модели

// OperatingHoursPayload дневное окно работы в формате "HH:MM"
type OperatingHoursPayload struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "19:00"
}

// SpecialDayPayload особая дата календаря
type SpecialDayPayload struct {
	Date     string                 `json:"date"` // "2026-01-07"
	IsClosed bool                   `json:"isClosed"`
	Hours    *OperatingHoursPayload `json:"hours,omitempty"`
}

// UpdateShopSettingsRequest запрос на обновление настроек салона.
// Настройки заменяются целиком, включая список особых дат
type UpdateShopSettingsRequest struct {
	ShopName     string                `json:"shopName"`
	MonthlyGoal  float64               `json:"monthlyGoal"`
	WorkingDays  []int                 `json:"workingDays"` // 0 = воскресенье ... 6 = суббота
	DefaultHours OperatingHoursPayload `json:"defaultHours"`
	SpecialDays  []SpecialDayPayload   `json:"specialDays"`
}

// ToDomainSettings конвертирует request в domain модель
func (r *UpdateShopSettingsRequest) ToDomainSettings() (*domain.ShopSettings, error) {
	workingDays := make([]time.Weekday, len(r.WorkingDays))
	for i, wd := range r.WorkingDays {
		workingDays[i] = time.Weekday(wd)
	}

	specialDays := make([]domain.SpecialDay, len(r.SpecialDays))
	for i, sd := range r.SpecialDays {
		day, err := sd.ToDomainSpecialDay()
		if err != nil {
			return nil, err
		}
		specialDays[i] = *day
	}

	return &domain.ShopSettings{
		ShopName:    r.ShopName,
		MonthlyGoal: r.MonthlyGoal,
		WorkingDays: workingDays,
		DefaultHours: domain.OperatingHours{
			Start: types.TimeString(r.DefaultHours.Start),
			End:   types.TimeString(r.DefaultHours.End),
		},
		SpecialDays: specialDays,
	}, nil
}

// ToDomainSpecialDay конвертирует payload особой даты в domain модель
func (p *SpecialDayPayload) ToDomainSpecialDay() (*domain.SpecialDay, error) {
	date, err := time.Parse(domain.DateFormat, p.Date)
	if err != nil {
		return nil, err
	}

	day := &domain.SpecialDay{
		Date:     date,
		IsClosed: p.IsClosed,
	}

	if p.Hours != nil {
		day.Hours = &domain.OperatingHours{
			Start: types.TimeString(p.Hours.Start),
			End:   types.TimeString(p.Hours.End),
		}
	}

	return day, nil
}

// Response модели

// ShopSettingsResponse ответ с настройками салона
type ShopSettingsResponse struct {
	ShopName     string                `json:"shopName"`
	MonthlyGoal  float64               `json:"monthlyGoal"`
	WorkingDays  []int                 `json:"workingDays"`
	DefaultHours OperatingHoursPayload `json:"defaultHours"`
	SpecialDays  []SpecialDayPayload   `json:"specialDays"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ShopSettings) *ShopSettingsResponse {
	if s == nil {
		return nil
	}

	workingDays := make([]int, len(s.WorkingDays))
	for i, wd := range s.WorkingDays {
		workingDays[i] = int(wd)
	}

	specialDays := make([]SpecialDayPayload, len(s.SpecialDays))
	for i, sd := range s.SpecialDays {
		payload := SpecialDayPayload{
			Date:     sd.Date.Format(domain.DateFormat),
			IsClosed: sd.IsClosed,
		}
		if sd.Hours != nil {
			payload.Hours = &OperatingHoursPayload{
				Start: sd.Hours.Start.String(),
				End:   sd.Hours.End.String(),
			}
		}
		specialDays[i] = payload
	}

	return &ShopSettingsResponse{
		ShopName:    s.ShopName,
		MonthlyGoal: s.MonthlyGoal,
		WorkingDays: workingDays,
		DefaultHours: OperatingHoursPayload{
			Start: s.DefaultHours.Start.String(),
			End:   s.DefaultHours.End.String(),
		},
		SpecialDays: specialDays,
		UpdatedAt:   s.UpdatedAt,
	}
}
