package update_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.ClientName != nil {
		if *req.ClientName == "" {
			return fmt.Errorf("%w: clientName must not be empty", ErrInvalidInput)
		}
		if len(*req.ClientName) > domain.MaxClientNameLength {
			return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
		}
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	// nil - услуги без изменений, пустой список недопустим
	if req.ServiceIDs != nil && len(req.ServiceIDs) == 0 {
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

	return nil
}

// validateSlot проверяет, что новый слот укладывается в календарь салона
// и не пересекается с активными записями мастера на эту дату.
// Сама редактируемая запись из подсчёта исключается, чтобы перенос
// не конфликтовал с её прежним временем
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

	for _, other := range appointments {
		if other.ID == appt.ID {
			continue
		}
		if other.ProfessionalID != appt.ProfessionalID {
			continue
		}
		if !isSameDay(other.Date, appt.Date) {
			continue
		}
		if !other.IsActive() {
			continue
		}

		otherInterval, err := other.Interval()
		if err != nil {
			continue
		}
		if interval.Overlaps(otherInterval) {
			return ErrSlotNotAvailable
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
