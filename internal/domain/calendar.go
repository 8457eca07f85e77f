package domain

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// OperatingHours дневное окно работы салона (пара минут дня)
type OperatingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// SpecialDay override расписания на одну конкретную дату.
// Если IsClosed = true, Hours игнорируются; если false, Hours (при наличии)
// заменяют дефолтное окно только на эту дату
type SpecialDay struct {
	Date     time.Time // Календарная дата без времени
	IsClosed bool
	Hours    *OperatingHours
}

// ShopSettings конфигурация календаря салона:
// недельный паттерн рабочих дней, дефолтные часы и список особых дат.
// Инвариант: в SpecialDays не больше одной записи на дату (upsert last-write-wins)
type ShopSettings struct {
	ShopName     string
	MonthlyGoal  float64
	WorkingDays  []time.Weekday
	DefaultHours OperatingHours
	SpecialDays  []SpecialDay
	UpdatedAt    time.Time
}

// FindSpecialDay возвращает особую дату для date или nil.
// Сравнение строго по календарному дню (год/месяц/день), без учёта времени,
// чтобы не ловить сдвиг на границе суток
func (s *ShopSettings) FindSpecialDay(date time.Time) *SpecialDay {
	for i := range s.SpecialDays {
		if sameDay(s.SpecialDays[i].Date, date) {
			return &s.SpecialDays[i]
		}
	}
	return nil
}

// IsOpenOn returns true if the shop is open on the given date.
// A special-day entry wins over the weekly pattern
func (s *ShopSettings) IsOpenOn(date time.Time) bool {
	if special := s.FindSpecialDay(date); special != nil {
		return !special.IsClosed
	}

	weekday := date.Weekday()
	for _, wd := range s.WorkingDays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// HoursOn returns the operating hours for the given date.
// Открытая особая дата без своих часов использует дефолтное окно
func (s *ShopSettings) HoursOn(date time.Time) OperatingHours {
	if special := s.FindSpecialDay(date); special != nil && !special.IsClosed && special.Hours != nil {
		return *special.Hours
	}
	return s.DefaultHours
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
