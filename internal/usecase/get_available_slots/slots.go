package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// busyIntervals собирает занятые интервалы мастера на указанную дату
// Учитываются только активные записи (pending и completed), отменённые освобождают слот
// Запись с ID = excludeID пропускается: при переносе запись не должна
// конфликтовать сама с собой
func busyIntervals(
	appointments []*domain.Appointment,
	professionalID int64,
	date time.Time,
	excludeID *int64,
) []domain.TimeInterval {
	intervals := make([]domain.TimeInterval, 0, len(appointments))

	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}
		// Пропускаем неактивные записи
		if !appt.IsActive() {
			continue
		}
		// Пропускаем исключённую (редактируемую) запись
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}

		interval, err := appt.Interval()
		if err != nil {
			// Если не можем вычислить интервал записи, пропускаем её
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals
}

// generateSlots генерирует список доступных слотов на день
// Кандидаты идут от открытия салона с фиксированным шагом domain.SlotStepMinutes,
// длительность каждого кандидата равна суммарной длительности выбранных услуг
//
// Кандидат отбрасывается, если:
// - его конец выходит за время закрытия салона
// - он пересекается с любым занятым интервалом
//
// Пересечение проверяется строго (полуоткрытые интервалы): если запись
// заканчивается ровно там, где начинается кандидат (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Кандидат 11:30-12:00, запись 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Кандидат 11:30-12:00, запись 11:00-11:30 → НЕТ пересечения (граничат)
// - Кандидат 11:30-12:00, запись 12:00-12:30 → НЕТ пересечения (граничат)
func generateSlots(
	settings *domain.ShopSettings,
	busy []domain.TimeInterval,
	date time.Time,
	totalDurationMinutes int,
) ([]types.TimeString, error) {
	// Закрытый день или пустой набор услуг - пустой список, не ошибка
	if !settings.IsOpenOn(date) || totalDurationMinutes <= 0 {
		return []types.TimeString{}, nil
	}

	hours := settings.HoursOn(date)

	slots := make([]types.TimeString, 0)
	current := hours.Start

	for current.IsBefore(hours.End) {
		// Конец кандидата не должен выходить за время закрытия
		slotEnd, err := current.AddMinutes(totalDurationMinutes)
		if err != nil {
			// Кандидат вышел за границу суток, дальше слотов не будет
			break
		}
		if slotEnd.IsAfter(hours.End) {
			break
		}

		candidate := domain.TimeInterval{Start: current, End: slotEnd}

		if !overlapsAny(candidate, busy) {
			slots = append(slots, current)
		}

		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата с любым занятым интервалом
func overlapsAny(candidate domain.TimeInterval, busy []domain.TimeInterval) bool {
	for _, interval := range busy {
		if candidate.Overlaps(interval) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
