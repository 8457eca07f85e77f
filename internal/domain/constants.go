package domain

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг перебора кандидатов начала слота
	SlotStepMinutes = 15
)

// Business validation constants
const (
	MaxRecurrenceCount          = 52 // максимум повторений (год еженедельных)
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих свой интервал времени
// Используется при подсчёте занятости мастера
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusCompleted,
}
