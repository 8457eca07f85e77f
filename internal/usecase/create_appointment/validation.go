package create_appointment

import (
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return validateRecurrence(req.Recurrence)
}

// validateRecurrence валидирует параметры повторения
func validateRecurrence(rec *RecurrenceRequest) error {
	if rec == nil {
		return nil
	}

	recType := domain.RecurrenceType(rec.Type)
	if !recType.IsValid() {
		return fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidRecurrence, rec.Type)
	}

	if recType == domain.RecurrenceNone {
		return nil
	}

	if rec.Count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidRecurrence)
	}

	if rec.Count > domain.MaxRecurrenceCount {
		return fmt.Errorf("%w: count must not exceed %d", ErrInvalidRecurrence, domain.MaxRecurrenceCount)
	}

	return nil
}

// validateSlot проверяет, что слот первой записи укладывается в календарь салона
// и не пересекается с активными записями мастера на эту дату
func validateSlot(
	settings *domain.ShopSettings,
	appointments []*domain.Appointment,
	appt *domain.Appointment,
) error {
	if !settings.IsOpenOn(appt.Date) {
		return ErrShopClosed
	}

	hours := settings.HoursOn(appt.Date)

	end, err := appt.StartTime.AddMinutes(appt.TotalDurationMinutes())
	if err != nil {
		return fmt.Errorf("%w: slot end is out of day range", ErrOutsideOperatingHours)
	}
	if appt.StartTime.IsBefore(hours.Start) || end.IsAfter(hours.End) {
		return ErrOutsideOperatingHours
	}

	interval := domain.TimeInterval{Start: appt.StartTime, End: end}
	if overlapsOnDate(interval, appt.Date, appt.ProfessionalID, appointments) {
		return ErrSlotNotAvailable
	}

	return nil
}
