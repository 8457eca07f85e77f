package create_appointment

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// projectRecurrence проецирует серию повторяющихся записей от первой записи
//
// Правила проекции:
// - первая запись (уже провалидированная) всегда входит в серию
// - дата каждого следующего кандидата вычисляется от даты ПРЕДЫДУЩЕГО
//   кандидата шагом cadence, независимо от того, был ли он пропущен.
//   Пропуск не сдвигает якорь: серия "каждую неделю" остаётся на своём
//   дне недели, даже если одна из дат выпала на закрытый день
// - кандидат создаётся, если салон открыт, слот укладывается в рабочие
//   часы и не пересекается ни с сохранёнными записями, ни с уже
//   созданными записями этой же серии
// - невалидный кандидат пропускается и считается, без ошибки и без
//   попытки подобрать другое время
//
// Всегда выполняется: len(created) + skipped == recurrence.Count + 1
func projectRecurrence(
	settings *domain.ShopSettings,
	existing []*domain.Appointment,
	first *domain.Appointment,
	recurrence domain.RecurrenceSettings,
) (created []*domain.Appointment, skipped int) {
	created = make([]*domain.Appointment, 0, recurrence.Count+1)
	created = append(created, first)

	duration := first.TotalDurationMinutes()
	date := first.Date

	for i := 0; i < recurrence.Count; i++ {
		date = recurrence.NextDate(date)

		candidate := &domain.Appointment{
			ClientName:     first.ClientName,
			ProfessionalID: first.ProfessionalID,
			Date:           date,
			StartTime:      first.StartTime,
			Status:         domain.StatusPending,
			Services:       first.Services,
			Notes:          first.Notes,
		}

		if !candidateFits(settings, existing, created, candidate, duration) {
			skipped++
			continue
		}

		created = append(created, candidate)
	}

	return created, skipped
}

// candidateFits проверяет, что кандидат серии укладывается в календарь салона
// и не пересекается с занятыми интервалами своей даты
func candidateFits(
	settings *domain.ShopSettings,
	existing []*domain.Appointment,
	created []*domain.Appointment,
	candidate *domain.Appointment,
	durationMinutes int,
) bool {
	if !settings.IsOpenOn(candidate.Date) {
		return false
	}

	hours := settings.HoursOn(candidate.Date)

	end, err := candidate.StartTime.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	if candidate.StartTime.IsBefore(hours.Start) || end.IsAfter(hours.End) {
		return false
	}

	interval := domain.TimeInterval{Start: candidate.StartTime, End: end}

	// Пересечения проверяются и против сохранённых записей,
	// и против уже созданных записей этой же серии
	if overlapsOnDate(interval, candidate.Date, candidate.ProfessionalID, existing) {
		return false
	}
	if overlapsOnDate(interval, candidate.Date, candidate.ProfessionalID, created) {
		return false
	}

	return true
}

// overlapsOnDate проверяет пересечение интервала с активными записями мастера
// на указанную дату. Границы интервалов не считаются пересечением
func overlapsOnDate(
	interval domain.TimeInterval,
	date time.Time,
	professionalID int64,
	appointments []*domain.Appointment,
) bool {
	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}
		if !appt.IsActive() {
			continue
		}

		other, err := appt.Interval()
		if err != nil {
			continue
		}
		if interval.Overlaps(other) {
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
