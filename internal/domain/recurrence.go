package domain

import "time"

// RecurrenceType cadence повторения записи
type RecurrenceType string

const (
	RecurrenceNone       RecurrenceType = "none"
	RecurrenceDaily      RecurrenceType = "daily"
	RecurrenceWeekly     RecurrenceType = "weekly"
	RecurrenceBiweekly   RecurrenceType = "biweekly"
	RecurrenceTwentyDays RecurrenceType = "twenty_days"
	RecurrenceMonthly    RecurrenceType = "monthly"
)

// IsValid returns true for a known recurrence type
func (t RecurrenceType) IsValid() bool {
	switch t {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceTwentyDays, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// RecurrenceSettings параметры повторения: cadence и количество
// дополнительных проекций после первой записи.
// Transient-вход создания записи, не персистится
type RecurrenceSettings struct {
	Type  RecurrenceType
	Count int
}

// IsRepeating returns true if occurrences beyond the first are requested
func (r RecurrenceSettings) IsRepeating() bool {
	return r.Type != RecurrenceNone && r.Type != "" && r.Count > 0
}

// NextDate возвращает дату следующей проекции от from.
// Месячный шаг использует дефолтный rollover time.AddDate без нормализации:
// 31 января + месяц = 2/3 марта, не последний день февраля
func (r RecurrenceSettings) NextDate(from time.Time) time.Time {
	switch r.Type {
	case RecurrenceDaily:
		return from.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return from.AddDate(0, 0, 7)
	case RecurrenceBiweekly:
		return from.AddDate(0, 0, 15)
	case RecurrenceTwentyDays:
		return from.AddDate(0, 0, 20)
	case RecurrenceMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from
	}
}
